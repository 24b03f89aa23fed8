package storage

import "time"

// Document is a stored document row. The content column holds the full
// extracted text; the vector index is a derived view keyed by ID.
type Document struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Source is one retrieved context snippet attached to a QA exchange.
// Order and score are preserved exactly as the retriever produced them.
type Source struct {
	Text  string  `json:"text"`
	Score float32 `json:"score"`
	DocID string  `json:"doc_id"`
	Title string  `json:"title"`
}

// ChatRecord is a persisted question/answer exchange with its sources.
type ChatRecord struct {
	ID        string
	UserID    string
	DocID     string // empty for cross-document questions
	Question  string
	Answer    string
	Sources   []Source
	CreatedAt time.Time
}
