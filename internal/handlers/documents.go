package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"clauselens/internal/auth"
	"clauselens/internal/contextutil"
	"clauselens/internal/service"
	"clauselens/internal/storage"
)

// Upload size cap. Extraction and chunking are bounded by document size, so
// the cap keeps a single request from holding the pipeline.
const maxUploadBytes = 10 << 20

// DocumentsHandler handles document CRUD and reindexing requests.
type DocumentsHandler struct {
	documents service.DocumentService
}

// NewDocumentsHandler creates a new DocumentsHandler.
func NewDocumentsHandler(documents service.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{documents: documents}
}

// DocumentResponse is the JSON shape of a document.
type DocumentResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WriteResponse is returned from create/upload/update with index status.
type WriteResponse struct {
	Document   DocumentResponse `json:"document"`
	Indexed    bool             `json:"indexed"`
	ChunkCount int              `json:"chunk_count"`
}

// CreateRequest is the JSON payload for document creation.
type CreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateRequest is the JSON payload for document updates.
type UpdateRequest struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

// Create handles POST /documents.
func (h *DocumentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc, status, err := h.documents.Create(ctx, userID, req.Title, req.Content)
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWriteResponse(doc, status))
}

// Upload handles POST /documents/upload (multipart form with a "file" part).
func (h *DocumentsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.WarnContext(ctx, "invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read file")
		return
	}
	if len(data) > maxUploadBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	doc, status, err := h.documents.Upload(ctx, userID, header.Filename, data)
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWriteResponse(doc, status))
}

// Get handles GET /documents/{id}.
func (h *DocumentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	doc, err := h.documents.Get(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusOK, toDocumentResponse(doc, true))
}

// List handles GET /documents. Content is omitted from listings.
func (h *DocumentsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	docs, err := h.documents.List(ctx, userID)
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	responses := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		responses = append(responses, toDocumentResponse(doc, false))
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": responses})
}

// Update handles PUT /documents/{id}.
func (h *DocumentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc, status, err := h.documents.Update(ctx, userID, chi.URLParam(r, "id"), req.Content, req.Title)
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusOK, toWriteResponse(doc, status))
}

// Delete handles DELETE /documents/{id}.
func (h *DocumentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.documents.Delete(ctx, userID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Reindex handles POST /documents/{id}/reindex.
func (h *DocumentsHandler) Reindex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	count, err := h.documents.Reindex(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"status": "reindexed", "chunk_count": count})
}

func toDocumentResponse(doc *storage.Document, includeContent bool) DocumentResponse {
	resp := DocumentResponse{
		ID:        doc.ID,
		Title:     doc.Title,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
	if includeContent {
		resp.Content = doc.Content
	}
	return resp
}

func toWriteResponse(doc *storage.Document, status service.IndexStatus) WriteResponse {
	return WriteResponse{
		Document:   toDocumentResponse(doc, true),
		Indexed:    status.Indexed,
		ChunkCount: status.ChunkCount,
	}
}
