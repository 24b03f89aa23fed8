package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_store.go -package=mocks clauselens/internal/storage ChatStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChatStore defines the interface for QA transcript persistence.
type ChatStore interface {
	// Insert persists a QA exchange and returns it with a generated ID.
	Insert(ctx context.Context, record *ChatRecord) (*ChatRecord, error)
	// ListByUser lists a user's exchanges, newest first, up to limit.
	ListByUser(ctx context.Context, userID string, limit int) ([]*ChatRecord, error)
}

// ChatRepo provides methods for chat transcript operations.
// It implements the ChatStore interface.
type ChatRepo struct {
	db *sql.DB
}

// NewChatRepo creates a new ChatRepo.
func NewChatRepo(db *sql.DB) *ChatRepo {
	return &ChatRepo{db: db}
}

// Insert persists a QA exchange and returns it with a generated ID.
// Sources are stored as a JSON array in retrieval order.
func (r *ChatRepo) Insert(ctx context.Context, record *ChatRecord) (*ChatRecord, error) {
	stored := *record
	stored.ID = uuid.New().String()
	stored.CreatedAt = time.Now().UTC()

	sources := stored.Sources
	if sources == nil {
		sources = []Source{}
	}
	sourcesJSON, err := json.Marshal(sources)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sources: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO chats (id, user_id, doc_id, question, answer, sources, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		stored.ID, stored.UserID, stored.DocID, stored.Question, stored.Answer, string(sourcesJSON), stored.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert chat record: %w", err)
	}

	return &stored, nil
}

// ListByUser lists a user's exchanges, newest first, up to limit.
func (r *ChatRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*ChatRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_id, doc_id, question, answer, sources, created_at FROM chats WHERE user_id = ? ORDER BY created_at DESC LIMIT ?",
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat records: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []*ChatRecord
	for rows.Next() {
		var rec ChatRecord
		var sourcesJSON, createdAtStr string
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.DocID, &rec.Question, &rec.Answer, &sourcesJSON, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan chat record: %w", err)
		}
		if err := json.Unmarshal([]byte(sourcesJSON), &rec.Sources); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sources: %w", err)
		}
		rec.CreatedAt, err = parseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chat records: %w", err)
	}

	return records, nil
}
