package rag

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_engine.go -package=mocks clauselens/internal/rag Engine,Embedder,Generator,DocumentGetter

import (
	"context"
	"fmt"

	"clauselens/internal/contextutil"
	"clauselens/internal/storage"
	"clauselens/internal/vectorstore"
)

const (
	defaultTopK = 5
	maxTopK     = 20
)

// Embedder turns a query string into a vector.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// Generator produces a grounded answer from context chunks. With no chunks
// it must return its fixed insufficient-context message without a model call.
type Generator interface {
	Answer(ctx context.Context, question string, contextChunks []string) (string, error)
}

// DocumentGetter fetches document rows for the whole-document fallback.
type DocumentGetter interface {
	GetByID(ctx context.Context, id string) (*storage.Document, error)
}

// Engine provides RAG (Retrieval-Augmented Generation) functionality.
type Engine interface {
	// Ask answers a question by retrieving relevant chunks and generating
	// a grounded answer.
	Ask(ctx context.Context, req AskRequest) (AskResponse, error)
	// Retrieve returns the ranked context snippets for a question without
	// generating an answer.
	Retrieve(ctx context.Context, question, docID string, topK int) ([]Source, error)
}

// ragEngine implements the Engine interface.
type ragEngine struct {
	embedder    Embedder
	vectorStore vectorstore.VectorStore
	documents   DocumentGetter
	generator   Generator
}

// NewEngine creates a new RAG engine.
func NewEngine(embedder Embedder, vectorStore vectorstore.VectorStore, documents DocumentGetter, generator Generator) Engine {
	return &ragEngine{
		embedder:    embedder,
		vectorStore: vectorStore,
		documents:   documents,
		generator:   generator,
	}
}

// Retrieve embeds the question and queries the vector index.
//
// Scoped to a document, a failed or empty query falls back to the whole
// current document content as a single synthetic snippet with score 1.0, so
// a non-empty document always yields at least one snippet. Without a
// document scope there is no fallback: a failed cross-document query yields
// an empty list.
func (e *ragEngine) Retrieve(ctx context.Context, question, docID string, topK int) ([]Source, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if topK <= 0 {
		topK = defaultTopK
	}
	if topK > maxTopK {
		topK = maxTopK
	}

	vec, err := e.embedder.EmbedText(ctx, question)
	if err != nil {
		if docID != "" {
			logger.WarnContext(ctx, "failed to embed question, using document fallback", "doc_id", docID, "error", err)
			return e.documentFallback(ctx, docID)
		}
		return nil, fmt.Errorf("failed to embed question: %w", err)
	}

	var ns vectorstore.Namespace
	if docID != "" {
		ns = vectorstore.NamespaceForDocument(docID)
	}

	matches, err := e.vectorStore.Query(ctx, vec, topK, ns, nil)
	if err != nil {
		if docID != "" {
			logger.WarnContext(ctx, "vector query failed, using document fallback", "doc_id", docID, "error", err)
			return e.documentFallback(ctx, docID)
		}
		logger.WarnContext(ctx, "cross-document vector query failed", "error", err)
		return []Source{}, nil
	}

	if len(matches) == 0 && docID != "" {
		// The namespace may never have been written (indexing failed or
		// the document is newly created); answer from the document itself.
		return e.documentFallback(ctx, docID)
	}

	sources := make([]Source, 0, len(matches))
	for _, m := range matches {
		text, _ := m.Meta[vectorstore.MetaText].(string)
		matchDocID, _ := m.Meta[vectorstore.MetaDocID].(string)
		title, _ := m.Meta[vectorstore.MetaTitle].(string)
		chunkIndex := metaInt(m.Meta[vectorstore.MetaChunkIndex])

		sources = append(sources, Source{
			Text:       text,
			Score:      m.Score,
			DocID:      matchDocID,
			Title:      title,
			ChunkIndex: chunkIndex,
		})
	}

	logger.InfoContext(ctx, "retrieval completed", "doc_id", docID, "k", topK, "results", len(sources))
	return sources, nil
}

// Ask answers a question using RAG.
func (e *ragEngine) Ask(ctx context.Context, req AskRequest) (AskResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	sources, err := e.Retrieve(ctx, req.Question, req.DocID, req.TopK)
	if err != nil {
		return AskResponse{}, err
	}

	contextChunks := make([]string, len(sources))
	for i, src := range sources {
		contextChunks[i] = src.Text
	}

	answer, err := e.generator.Answer(ctx, req.Question, contextChunks)
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate answer", "error", err)
		return AskResponse{}, fmt.Errorf("failed to generate answer: %w", err)
	}

	logger.InfoContext(ctx, "RAG query completed", "doc_id", req.DocID, "sources", len(sources), "answer_length", len(answer))
	return AskResponse{
		Answer:  answer,
		Sources: sources,
	}, nil
}

// documentFallback treats the entire document content as one synthetic chunk
// with score 1.0. An empty document yields no sources; a missing document
// propagates storage.ErrNotFound.
func (e *ragEngine) documentFallback(ctx context.Context, docID string) ([]Source, error) {
	doc, err := e.documents.GetByID(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("failed to load document for fallback: %w", err)
	}
	if doc.Content == "" {
		return []Source{}, nil
	}
	return []Source{{
		Text:       doc.Content,
		Score:      1.0,
		DocID:      doc.ID,
		Title:      doc.Title,
		ChunkIndex: -1,
	}}, nil
}

// metaInt coerces the numeric types vector stores hand back for integers.
func metaInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
