package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks clauselens/internal/vectorstore VectorStore

import "context"

// Namespace identifies the per-document partition of the vector index.
// The zero value means "no namespace" (a query spans every document).
type Namespace struct {
	docID string
}

// NamespaceForDocument returns the namespace holding a document's chunks.
func NamespaceForDocument(docID string) Namespace {
	return Namespace{docID: docID}
}

// IsZero reports whether the namespace is unset.
func (n Namespace) IsZero() bool {
	return n.docID == ""
}

// DocumentID returns the document id the namespace was derived from.
func (n Namespace) DocumentID() string {
	return n.docID
}

// String returns the wire form of the namespace ("doc_" + document id).
// Only the index adapters should need this.
func (n Namespace) String() string {
	if n.docID == "" {
		return ""
	}
	return "doc_" + n.docID
}

// Record is the unit stored in the vector index. ID is unique only within
// its namespace (chunk_0, chunk_1, ...), so every operation carries the
// namespace alongside it.
type Record struct {
	ID   string
	Vec  []float32
	Meta map[string]any
}

// Match is a single similarity-search result.
type Match struct {
	ID    string
	Score float32
	Meta  map[string]any
}

// Metadata keys carried on every stored record.
const (
	MetaDocID      = "doc_id"
	MetaChunkIndex = "chunk_index"
	MetaText       = "text"
	MetaTitle      = "title"
	MetaUserID     = "user_id"
)

// VectorStore defines the namespace-aware similarity index.
//
// Upsert is idempotent by record ID within a namespace. Query returns matches
// in descending score order; a namespace that has never been written to
// yields an empty result, not an error. DeleteNamespace succeeds when the
// namespace does not exist: re-indexing and deletion call it unconditionally
// and must never abort because there was nothing to remove.
type VectorStore interface {
	Upsert(ctx context.Context, ns Namespace, records []Record) error
	// Query searches the index. A zero namespace spans every document.
	// filter restricts matches to records whose metadata equals every
	// given key/value pair; nil means no restriction.
	Query(ctx context.Context, vec []float32, topK int, ns Namespace, filter map[string]any) ([]Match, error)
	DeleteNamespace(ctx context.Context, ns Namespace) error
}
