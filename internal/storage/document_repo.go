package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_document_store.go -package=mocks clauselens/internal/storage DocumentStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// DocumentStore defines the interface for document storage operations.
type DocumentStore interface {
	// Create inserts a new document and returns it with a generated ID.
	Create(ctx context.Context, userID, title, content string) (*Document, error)
	// GetByID gets a document by its ID. Returns ErrNotFound if missing.
	GetByID(ctx context.Context, id string) (*Document, error)
	// ListByUser lists a user's documents, newest first.
	ListByUser(ctx context.Context, userID string) ([]*Document, error)
	// Update replaces content (and optionally title) of a document.
	Update(ctx context.Context, id, content, title string) (*Document, error)
	// Delete removes a document. Returns ErrNotFound if missing.
	Delete(ctx context.Context, id string) error
}

// DocumentRepo provides methods for document operations.
// It implements the DocumentStore interface.
type DocumentRepo struct {
	db *sql.DB
}

// NewDocumentRepo creates a new DocumentRepo.
func NewDocumentRepo(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

// Create inserts a new document and returns it with a generated ID.
func (r *DocumentRepo) Create(ctx context.Context, userID, title, content string) (*Document, error) {
	doc := &Document{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO documents (id, user_id, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		doc.ID, doc.UserID, doc.Title, doc.Content, doc.CreatedAt.Format(timeLayout), doc.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}

	return doc, nil
}

// GetByID gets a document by its ID. Returns ErrNotFound if missing.
func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*Document, error) {
	var doc Document
	var createdAtStr, updatedAtStr string

	err := r.db.QueryRowContext(ctx,
		"SELECT id, user_id, title, content, created_at, updated_at FROM documents WHERE id = ?",
		id,
	).Scan(&doc.ID, &doc.UserID, &doc.Title, &doc.Content, &createdAtStr, &updatedAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document: %w", err)
	}

	doc.CreatedAt, err = parseTime(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	doc.UpdatedAt, err = parseTime(updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
	}

	return &doc, nil
}

// ListByUser lists a user's documents, newest first.
func (r *DocumentRepo) ListByUser(ctx context.Context, userID string) ([]*Document, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_id, title, content, created_at, updated_at FROM documents WHERE user_id = ? ORDER BY updated_at DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var docs []*Document
	for rows.Next() {
		var doc Document
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&doc.ID, &doc.UserID, &doc.Title, &doc.Content, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc.CreatedAt, err = parseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}
		doc.UpdatedAt, err = parseTime(updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
		}
		docs = append(docs, &doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}

	return docs, nil
}

// Update replaces content (and optionally title) of a document.
// An empty title keeps the existing one.
func (r *DocumentRepo) Update(ctx context.Context, id, content, title string) (*Document, error) {
	updatedAt := time.Now().UTC()

	var res sql.Result
	var err error
	if title != "" {
		res, err = r.db.ExecContext(ctx,
			"UPDATE documents SET content = ?, title = ?, updated_at = ? WHERE id = ?",
			content, title, updatedAt.Format(timeLayout), id,
		)
	} else {
		res, err = r.db.ExecContext(ctx,
			"UPDATE documents SET content = ?, updated_at = ? WHERE id = ?",
			content, updatedAt.Format(timeLayout), id,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes a document. Returns ErrNotFound if missing.
func (r *DocumentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

const timeLayout = "2006-01-02 15:04:05"

// parseTime handles the DATETIME formats SQLite may return.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
