package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_document_service.go -package=mocks clauselens/internal/service DocumentService,Indexer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"clauselens/internal/contextutil"
	"clauselens/internal/extract"
	"clauselens/internal/indexer"
	"clauselens/internal/storage"
)

// IndexStatus reports how indexing went for a write operation. Indexing is
// best-effort: a failed index never fails the document write, the status
// tells the caller the index is stale and reindex is the repair.
type IndexStatus struct {
	Indexed    bool
	ChunkCount int
}

// Indexer is the ingestion pipeline the service drives.
type Indexer interface {
	IndexDocument(ctx context.Context, docID, text string, meta indexer.Metadata) (int, error)
	ReindexDocument(ctx context.Context, docID, text string, meta indexer.Metadata) (int, error)
	DeindexDocument(ctx context.Context, docID string) error
}

// DocumentService handles the document lifecycle: storage, ownership checks
// and keeping the vector index in step with edits and deletions.
type DocumentService interface {
	Create(ctx context.Context, userID, title, content string) (*storage.Document, IndexStatus, error)
	Upload(ctx context.Context, userID, filename string, data []byte) (*storage.Document, IndexStatus, error)
	Get(ctx context.Context, userID, docID string) (*storage.Document, error)
	List(ctx context.Context, userID string) ([]*storage.Document, error)
	Update(ctx context.Context, userID, docID, content, title string) (*storage.Document, IndexStatus, error)
	Delete(ctx context.Context, userID, docID string) error
	Reindex(ctx context.Context, userID, docID string) (int, error)
}

type documentService struct {
	documents storage.DocumentStore
	pipeline  Indexer
	extractor *extract.Extractor
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(documents storage.DocumentStore, pipeline Indexer, extractor *extract.Extractor) DocumentService {
	return &documentService{
		documents: documents,
		pipeline:  pipeline,
		extractor: extractor,
	}
}

// Create stores a new document and indexes it. The index write is
// best-effort: the document row is the source of truth and the index is a
// rebuildable view, so an index failure is reported, not rolled back.
func (s *documentService) Create(ctx context.Context, userID, title, content string) (*storage.Document, IndexStatus, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if title == "" {
		return nil, IndexStatus{}, &ValidationError{Field: "title", Message: "title is required"}
	}

	doc, err := s.documents.Create(ctx, userID, title, content)
	if err != nil {
		return nil, IndexStatus{}, WrapError(err, "failed to create document")
	}

	status := s.index(ctx, doc)
	logger.InfoContext(ctx, "document created", "doc_id", doc.ID, "indexed", status.Indexed, "chunks", status.ChunkCount)
	return doc, status, nil
}

// Upload extracts text from an uploaded file and creates a document from it.
// The title defaults to the filename without its extension.
func (s *documentService) Upload(ctx context.Context, userID, filename string, data []byte) (*storage.Document, IndexStatus, error) {
	text, err := s.extractor.Extract(filename, data)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			return nil, IndexStatus{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, IndexStatus{}, WrapError(err, "failed to extract text")
	}

	title := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if title == "" {
		title = filename
	}

	return s.Create(ctx, userID, title, text)
}

// Get returns a document after checking ownership.
func (s *documentService) Get(ctx context.Context, userID, docID string) (*storage.Document, error) {
	return s.ownedDocument(ctx, userID, docID)
}

// List returns the user's documents, newest first.
func (s *documentService) List(ctx context.Context, userID string) ([]*storage.Document, error) {
	docs, err := s.documents.ListByUser(ctx, userID)
	if err != nil {
		return nil, WrapError(err, "failed to list documents")
	}
	return docs, nil
}

// Update replaces a document's content and rebuilds its namespace. The
// rebuild is a full replace (delete then re-upsert): chunk boundaries shift
// under edits, so incremental patching is never safe.
func (s *documentService) Update(ctx context.Context, userID, docID, content, title string) (*storage.Document, IndexStatus, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if _, err := s.ownedDocument(ctx, userID, docID); err != nil {
		return nil, IndexStatus{}, err
	}

	doc, err := s.documents.Update(ctx, docID, content, title)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, IndexStatus{}, ErrNotFound
		}
		return nil, IndexStatus{}, WrapError(err, "failed to update document")
	}

	status := IndexStatus{}
	count, err := s.pipeline.ReindexDocument(ctx, doc.ID, doc.Content, indexer.Metadata{Title: doc.Title, UserID: doc.UserID})
	if err != nil {
		logger.WarnContext(ctx, "failed to reindex updated document", "doc_id", doc.ID, "error", err)
	} else {
		status = IndexStatus{Indexed: true, ChunkCount: count}
	}

	logger.InfoContext(ctx, "document updated", "doc_id", doc.ID, "indexed", status.Indexed, "chunks", status.ChunkCount)
	return doc, status, nil
}

// Delete removes the document's namespace and then the document row. The
// namespace delete is attempted unconditionally, since deleting a namespace
// that was never written is a successful no-op, and an index failure never
// blocks the row deletion.
func (s *documentService) Delete(ctx context.Context, userID, docID string) error {
	logger := contextutil.LoggerFromContext(ctx)

	if _, err := s.ownedDocument(ctx, userID, docID); err != nil {
		return err
	}

	if err := s.pipeline.DeindexDocument(ctx, docID); err != nil {
		logger.WarnContext(ctx, "failed to deindex document, deleting row anyway", "doc_id", docID, "error", err)
	}

	if err := s.documents.Delete(ctx, docID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return WrapError(err, "failed to delete document")
	}

	logger.InfoContext(ctx, "document deleted", "doc_id", docID)
	return nil
}

// Reindex rebuilds the document's namespace from its current content. It is
// the explicit repair operation for earlier partial failures, so unlike
// create/update its index failure is surfaced to the caller.
func (s *documentService) Reindex(ctx context.Context, userID, docID string) (int, error) {
	doc, err := s.ownedDocument(ctx, userID, docID)
	if err != nil {
		return 0, err
	}

	count, err := s.pipeline.ReindexDocument(ctx, doc.ID, doc.Content, indexer.Metadata{Title: doc.Title, UserID: doc.UserID})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	return count, nil
}

// ownedDocument loads a document and enforces the ownership check.
func (s *documentService) ownedDocument(ctx context.Context, userID, docID string) (*storage.Document, error) {
	doc, err := s.documents.GetByID(ctx, docID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, WrapError(err, "failed to load document")
	}
	if doc.UserID != userID {
		return nil, ErrAccessDenied
	}
	return doc, nil
}

// index performs the best-effort initial index of a document.
func (s *documentService) index(ctx context.Context, doc *storage.Document) IndexStatus {
	logger := contextutil.LoggerFromContext(ctx)

	count, err := s.pipeline.IndexDocument(ctx, doc.ID, doc.Content, indexer.Metadata{Title: doc.Title, UserID: doc.UserID})
	if err != nil {
		logger.WarnContext(ctx, "failed to index document", "doc_id", doc.ID, "error", err)
		return IndexStatus{}
	}
	return IndexStatus{Indexed: true, ChunkCount: count}
}
