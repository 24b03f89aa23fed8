package indexer

import (
	"context"
	"fmt"

	"clauselens/internal/contextutil"
	"clauselens/internal/vectorstore"
)

// Embedder converts texts into fixed-dimension vectors.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Metadata is denormalized onto every stored chunk so retrieval needs no
// joins against the document store.
type Metadata struct {
	Title  string
	UserID string
}

// Pipeline is the write path of the index: document text is chunked,
// embedded and upserted under the document's namespace. It also keeps the
// index consistent with edits and deletions.
type Pipeline struct {
	chunker     *Chunker
	embedder    Embedder
	vectorStore vectorstore.VectorStore
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(chunker *Chunker, embedder Embedder, vectorStore vectorstore.VectorStore) *Pipeline {
	return &Pipeline{
		chunker:     chunker,
		embedder:    embedder,
		vectorStore: vectorStore,
	}
}

// IndexDocument chunks, embeds and stores a document's text under its
// namespace. Returns the number of chunks stored. Empty text indexes
// nothing and is not an error.
func (p *Pipeline) IndexDocument(ctx context.Context, docID, text string, meta Metadata) (int, error) {
	logger := contextutil.LoggerFromContext(ctx)

	chunks, err := p.chunker.Chunk(text)
	if err != nil {
		return 0, fmt.Errorf("failed to chunk document: %w", err)
	}
	if len(chunks) == 0 {
		logger.InfoContext(ctx, "no chunks generated", "doc_id", docID)
		return 0, nil
	}

	embeddings, err := p.embedder.EmbedTexts(ctx, chunks)
	if err != nil {
		return 0, fmt.Errorf("failed to embed chunks: %w", err)
	}
	if len(embeddings) != len(chunks) {
		return 0, fmt.Errorf("embedding count mismatch: expected %d, got %d", len(chunks), len(embeddings))
	}

	records := make([]vectorstore.Record, len(chunks))
	for i, chunk := range chunks {
		records[i] = vectorstore.Record{
			ID:  fmt.Sprintf("chunk_%d", i),
			Vec: embeddings[i],
			Meta: map[string]any{
				vectorstore.MetaDocID:      docID,
				vectorstore.MetaChunkIndex: i,
				vectorstore.MetaText:       chunk,
				vectorstore.MetaTitle:      meta.Title,
				vectorstore.MetaUserID:     meta.UserID,
			},
		}
	}

	ns := vectorstore.NamespaceForDocument(docID)
	if err := p.vectorStore.Upsert(ctx, ns, records); err != nil {
		return 0, fmt.Errorf("failed to store chunks: %w", err)
	}

	logger.InfoContext(ctx, "indexed document", "doc_id", docID, "chunks", len(records))
	return len(records), nil
}

// ReindexDocument rebuilds a document's namespace from scratch: the old
// records are deleted, then the current text is indexed. Chunk boundaries
// are not stable under edits, so a full replace is the only safe update.
func (p *Pipeline) ReindexDocument(ctx context.Context, docID, text string, meta Metadata) (int, error) {
	if err := p.DeindexDocument(ctx, docID); err != nil {
		return 0, fmt.Errorf("failed to clear namespace: %w", err)
	}
	return p.IndexDocument(ctx, docID, text, meta)
}

// DeindexDocument removes every record under the document's namespace.
// Deleting a namespace that was never written is a successful no-op.
func (p *Pipeline) DeindexDocument(ctx context.Context, docID string) error {
	ns := vectorstore.NamespaceForDocument(docID)
	if err := p.vectorStore.DeleteNamespace(ctx, ns); err != nil {
		return fmt.Errorf("failed to delete namespace: %w", err)
	}
	return nil
}
