package rag

// AskRequest is a RAG query. DocID scopes retrieval to one document's
// namespace; empty means search across every indexed document. TopK of zero
// means the default.
type AskRequest struct {
	Question string
	DocID    string
	TopK     int
}

// Source is one context snippet used to ground the answer, in retrieval
// order with its similarity score. Score 1.0 with ChunkIndex -1 marks the
// whole-document fallback.
type Source struct {
	Text       string
	Score      float32
	DocID      string
	Title      string
	ChunkIndex int
}

// AskResponse is the generated answer with the sources that grounded it.
type AskResponse struct {
	Answer  string
	Sources []Source
}
