package handlers

import (
	"encoding/json"
	"net/http"
	"time"
	"unicode/utf8"

	"clauselens/internal/auth"
	"clauselens/internal/contextutil"
	"clauselens/internal/service"
)

// Retrieved snippets can be a whole fallback document; responses carry a
// bounded preview while the full text stays on the generation path.
const sourcePreviewLimit = 300

// AskHandler handles RAG question answering and history requests.
type AskHandler struct {
	qa service.QAService
}

// NewAskHandler creates a new AskHandler.
func NewAskHandler(qa service.QAService) *AskHandler {
	return &AskHandler{qa: qa}
}

// AskRequest is the JSON payload for questions.
type AskRequest struct {
	Question string `json:"question"`
	DocID    string `json:"doc_id,omitempty"`
	TopK     int    `json:"top_k,omitempty"`
}

// SourceResponse is one context snippet behind an answer.
type SourceResponse struct {
	Text  string  `json:"text"`
	Score float32 `json:"score"`
	DocID string  `json:"doc_id"`
	Title string  `json:"title"`
}

// AskResponse is the answer with its ordered sources.
type AskResponse struct {
	Answer  string           `json:"answer"`
	Sources []SourceResponse `json:"sources"`
}

// HistoryEntry is one past QA exchange.
type HistoryEntry struct {
	ID        string           `json:"id"`
	DocID     string           `json:"doc_id,omitempty"`
	Question  string           `json:"question"`
	Answer    string           `json:"answer"`
	Sources   []SourceResponse `json:"sources"`
	CreatedAt time.Time        `json:"created_at"`
}

// Ask handles POST /ask.
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}
	if req.TopK < 0 {
		req.TopK = 0
	}

	result, err := h.qa.Ask(ctx, userID, service.AskInput{
		Question: req.Question,
		DocID:    req.DocID,
		TopK:     req.TopK,
	})
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	sources := make([]SourceResponse, 0, len(result.Sources))
	for _, src := range result.Sources {
		sources = append(sources, SourceResponse{
			Text:  truncate(src.Text, sourcePreviewLimit),
			Score: src.Score,
			DocID: src.DocID,
			Title: src.Title,
		})
	}

	writeJSON(w, http.StatusOK, AskResponse{
		Answer:  result.Answer,
		Sources: sources,
	})
}

// History handles GET /ask/history.
func (h *AskHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	records, err := h.qa.History(ctx, userID, 50)
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, rec := range records {
		sources := make([]SourceResponse, 0, len(rec.Sources))
		for _, src := range rec.Sources {
			sources = append(sources, SourceResponse{
				Text:  truncate(src.Text, sourcePreviewLimit),
				Score: src.Score,
				DocID: src.DocID,
				Title: src.Title,
			})
		}
		entries = append(entries, HistoryEntry{
			ID:        rec.ID,
			DocID:     rec.DocID,
			Question:  rec.Question,
			Answer:    rec.Answer,
			Sources:   sources,
			CreatedAt: rec.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"history": entries})
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	// Back off to a rune boundary so the preview stays valid UTF-8.
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit] + "..."
}
