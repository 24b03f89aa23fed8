package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"clauselens/internal/auth"
	"clauselens/internal/handlers"
	"clauselens/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Documents service.DocumentService
	QA        service.QAService
	Tokens    *auth.TokenManager
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	documentsHandler := handlers.NewDocumentsHandler(deps.Documents)
	askHandler := handlers.NewAskHandler(deps.QA)
	editingHandler := handlers.NewEditingHandler(deps.QA)

	r.Get("/healthz", handlers.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(deps.Tokens.Middleware)

		r.Route("/documents", func(r chi.Router) {
			r.Post("/", documentsHandler.Create)
			r.Get("/", documentsHandler.List)
			r.Post("/upload", documentsHandler.Upload)
			r.Get("/{id}", documentsHandler.Get)
			r.Put("/{id}", documentsHandler.Update)
			r.Delete("/{id}", documentsHandler.Delete)
			r.Post("/{id}/reindex", documentsHandler.Reindex)
			r.Get("/{id}/summary", editingHandler.DocumentSummary)
			r.Get("/{id}/suggestions", editingHandler.DocumentSuggestions)
		})

		r.Post("/ask", askHandler.Ask)
		r.Get("/ask/history", askHandler.History)

		r.Route("/edit", func(r chi.Router) {
			r.Post("/rewrite", editingHandler.Rewrite)
			r.Post("/red-flags", editingHandler.RedFlags)
			r.Post("/analyze-clause", editingHandler.AnalyzeClause)
			r.Post("/summarize", editingHandler.Summarize)
			r.Post("/generate", editingHandler.Generate)
			r.Post("/auto-complete", editingHandler.AutoComplete)
			r.Post("/improve-language", editingHandler.ImproveLanguage)
			r.Post("/suggest-alternatives", editingHandler.SuggestAlternatives)
		})
	})

	return r
}
