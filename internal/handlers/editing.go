package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clauselens/internal/auth"
	"clauselens/internal/contextutil"
	"clauselens/internal/service"
)

// EditingHandler handles the generative editing requests.
type EditingHandler struct {
	qa service.QAService
}

// NewEditingHandler creates a new EditingHandler.
func NewEditingHandler(qa service.QAService) *EditingHandler {
	return &EditingHandler{qa: qa}
}

// RewriteRequest is the JSON payload for clause rewriting.
type RewriteRequest struct {
	Clause      string `json:"clause"`
	Instruction string `json:"instruction"`
}

// RedFlagsRequest is the JSON payload for red-flag detection.
type RedFlagsRequest struct {
	Text string `json:"text"`
}

// SummarizeRequest is the JSON payload for summarization.
type SummarizeRequest struct {
	Text string `json:"text"`
}

// GenerateRequest is the JSON payload for document generation.
type GenerateRequest struct {
	DocType string            `json:"doc_type"`
	Details map[string]string `json:"details,omitempty"`
}

// AutoCompleteRequest is the JSON payload for text completion. Context is
// optional surrounding material the continuation should stay consistent with.
type AutoCompleteRequest struct {
	Text    string `json:"text"`
	Context string `json:"context,omitempty"`
}

// ImproveRequest is the JSON payload for language improvement.
type ImproveRequest struct {
	Text string `json:"text"`
}

// AlternativesRequest is the JSON payload for alternative phrasings.
type AlternativesRequest struct {
	Text string `json:"text"`
}

// AnalyzeClauseRequest is the JSON payload for single-clause analysis.
type AnalyzeClauseRequest struct {
	Clause string `json:"clause"`
}

// Rewrite handles POST /edit/rewrite.
func (h *EditingHandler) Rewrite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if _, ok := auth.UserIDFromContext(ctx); !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req RewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.qa.RewriteClause(ctx, req.Clause, req.Instruction)
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"rewritten": out})
}

// RedFlags handles POST /edit/red-flags.
func (h *EditingHandler) RedFlags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if _, ok := auth.UserIDFromContext(ctx); !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req RedFlagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	report, err := h.qa.DetectRedFlags(ctx, req.Text)
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Summarize handles POST /edit/summarize.
func (h *EditingHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if _, ok := auth.UserIDFromContext(ctx); !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.qa.Summarize(ctx, req.Text)
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"summary": out})
}

// Generate handles POST /edit/generate.
func (h *EditingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if _, ok := auth.UserIDFromContext(ctx); !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.qa.GenerateDocument(ctx, req.DocType, req.Details)
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"document": out})
}

// AutoComplete handles POST /edit/auto-complete.
func (h *EditingHandler) AutoComplete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if _, ok := auth.UserIDFromContext(ctx); !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req AutoCompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	completion, err := h.qa.AutoComplete(ctx, req.Text, req.Context)
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"original_text": req.Text,
		"completion":    completion,
		"full_text":     req.Text + completion,
	})
}

// ImproveLanguage handles POST /edit/improve-language.
func (h *EditingHandler) ImproveLanguage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if _, ok := auth.UserIDFromContext(ctx); !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ImproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.qa.ImproveLanguage(ctx, req.Text)
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"original_text": req.Text,
		"improved_text": out,
	})
}

// SuggestAlternatives handles POST /edit/suggest-alternatives.
func (h *EditingHandler) SuggestAlternatives(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if _, ok := auth.UserIDFromContext(ctx); !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req AlternativesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.qa.SuggestAlternatives(ctx, req.Text)
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"original_text": req.Text,
		"alternatives":  out,
	})
}

// AnalyzeClause handles POST /edit/analyze-clause.
func (h *EditingHandler) AnalyzeClause(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if _, ok := auth.UserIDFromContext(ctx); !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req AnalyzeClauseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	analysis, err := h.qa.AnalyzeClause(ctx, req.Clause)
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"clause":   req.Clause,
		"analysis": analysis,
	})
}

// DocumentSummary handles GET /documents/{id}/summary.
func (h *EditingHandler) DocumentSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	out, err := h.qa.DocumentSummary(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"summary": out})
}

// DocumentSuggestions handles GET /documents/{id}/suggestions.
func (h *EditingHandler) DocumentSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	docID := chi.URLParam(r, "id")
	out, err := h.qa.DocumentSuggestions(ctx, userID, docID)
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"doc_id":      docID,
		"suggestions": out,
	})
}
