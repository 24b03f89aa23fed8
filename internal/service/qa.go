package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_qa_service.go -package=mocks clauselens/internal/service QAService,Editor

import (
	"context"
	"errors"

	"clauselens/internal/contextutil"
	"clauselens/internal/llm"
	"clauselens/internal/rag"
	"clauselens/internal/storage"
)

// Editor exposes the generative editing contracts.
type Editor interface {
	RewriteClause(ctx context.Context, clause, instruction string) (string, error)
	DetectRedFlags(ctx context.Context, text string) (*llm.RedFlagReport, error)
	Summarize(ctx context.Context, text string) (string, error)
	GenerateDocument(ctx context.Context, docType string, details map[string]string) (string, error)
	AutoComplete(ctx context.Context, text, background string) (string, error)
	ImproveLanguage(ctx context.Context, text string) (string, error)
	SuggestAlternatives(ctx context.Context, text string) (string, error)
	SuggestImprovements(ctx context.Context, content string) (string, error)
}

// AskInput is a question from a user, optionally scoped to one document.
type AskInput struct {
	Question string
	DocID    string
	TopK     int
}

// AskResult is the answer with its ordered sources.
type AskResult struct {
	Answer  string
	Sources []rag.Source
}

// QAService answers questions over indexed documents and runs the
// generative editing operations.
type QAService interface {
	Ask(ctx context.Context, userID string, input AskInput) (*AskResult, error)
	History(ctx context.Context, userID string, limit int) ([]*storage.ChatRecord, error)
	RewriteClause(ctx context.Context, clause, instruction string) (string, error)
	DetectRedFlags(ctx context.Context, text string) (*llm.RedFlagReport, error)
	AnalyzeClause(ctx context.Context, clause string) (*llm.RedFlagReport, error)
	Summarize(ctx context.Context, text string) (string, error)
	GenerateDocument(ctx context.Context, docType string, details map[string]string) (string, error)
	AutoComplete(ctx context.Context, text, background string) (string, error)
	ImproveLanguage(ctx context.Context, text string) (string, error)
	SuggestAlternatives(ctx context.Context, text string) (string, error)
	DocumentSummary(ctx context.Context, userID, docID string) (string, error)
	DocumentSuggestions(ctx context.Context, userID, docID string) (string, error)
}

type qaService struct {
	engine    rag.Engine
	documents storage.DocumentStore
	chats     storage.ChatStore
	editor    Editor
}

// NewQAService creates a new QAService.
func NewQAService(engine rag.Engine, documents storage.DocumentStore, chats storage.ChatStore, editor Editor) QAService {
	return &qaService{
		engine:    engine,
		documents: documents,
		chats:     chats,
		editor:    editor,
	}
}

// Ask answers a question with RAG. A document-scoped question requires the
// caller to own the document. The exchange is persisted with its sources in
// retrieval order; persistence failure is logged, never propagated.
func (s *qaService) Ask(ctx context.Context, userID string, input AskInput) (*AskResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if input.Question == "" {
		return nil, &ValidationError{Field: "question", Message: "question is required"}
	}

	if input.DocID != "" {
		if _, err := s.ownedDocument(ctx, userID, input.DocID); err != nil {
			return nil, err
		}
	}

	resp, err := s.engine.Ask(ctx, rag.AskRequest{
		Question: input.Question,
		DocID:    input.DocID,
		TopK:     input.TopK,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, WrapError(ErrExternalService, err.Error())
	}

	sources := make([]storage.Source, len(resp.Sources))
	for i, src := range resp.Sources {
		sources[i] = storage.Source{
			Text:  src.Text,
			Score: src.Score,
			DocID: src.DocID,
			Title: src.Title,
		}
	}
	if _, err := s.chats.Insert(ctx, &storage.ChatRecord{
		UserID:   userID,
		DocID:    input.DocID,
		Question: input.Question,
		Answer:   resp.Answer,
		Sources:  sources,
	}); err != nil {
		logger.WarnContext(ctx, "failed to persist chat record", "error", err)
	}

	return &AskResult{
		Answer:  resp.Answer,
		Sources: resp.Sources,
	}, nil
}

// History returns the user's recent QA exchanges.
func (s *qaService) History(ctx context.Context, userID string, limit int) ([]*storage.ChatRecord, error) {
	records, err := s.chats.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, WrapError(err, "failed to list chat history")
	}
	return records, nil
}

// RewriteClause rewrites a clause per the instruction.
func (s *qaService) RewriteClause(ctx context.Context, clause, instruction string) (string, error) {
	if clause == "" {
		return "", &ValidationError{Field: "clause", Message: "clause is required"}
	}
	if instruction == "" {
		return "", &ValidationError{Field: "instruction", Message: "instruction is required"}
	}

	out, err := s.editor.RewriteClause(ctx, clause, instruction)
	if err != nil {
		return "", WrapError(ErrExternalService, err.Error())
	}
	return out, nil
}

// DetectRedFlags analyzes text for risky clauses.
func (s *qaService) DetectRedFlags(ctx context.Context, text string) (*llm.RedFlagReport, error) {
	if text == "" {
		return nil, &ValidationError{Field: "text", Message: "text is required"}
	}

	report, err := s.editor.DetectRedFlags(ctx, text)
	if err != nil {
		return nil, WrapError(ErrExternalService, err.Error())
	}
	return report, nil
}

// Summarize produces a structured summary of the text.
func (s *qaService) Summarize(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", &ValidationError{Field: "text", Message: "text is required"}
	}

	out, err := s.editor.Summarize(ctx, text)
	if err != nil {
		return "", WrapError(ErrExternalService, err.Error())
	}
	return out, nil
}

// GenerateDocument drafts a new document of the given type.
func (s *qaService) GenerateDocument(ctx context.Context, docType string, details map[string]string) (string, error) {
	if docType == "" {
		return "", &ValidationError{Field: "doc_type", Message: "doc_type is required"}
	}

	out, err := s.editor.GenerateDocument(ctx, docType, details)
	if err != nil {
		return "", WrapError(ErrExternalService, err.Error())
	}
	return out, nil
}

// AnalyzeClause runs red-flag detection over a single clause.
func (s *qaService) AnalyzeClause(ctx context.Context, clause string) (*llm.RedFlagReport, error) {
	if clause == "" {
		return nil, &ValidationError{Field: "clause", Message: "clause is required"}
	}

	report, err := s.editor.DetectRedFlags(ctx, clause)
	if err != nil {
		return nil, WrapError(ErrExternalService, err.Error())
	}
	return report, nil
}

// AutoComplete continues a partial piece of text.
func (s *qaService) AutoComplete(ctx context.Context, text, background string) (string, error) {
	if text == "" {
		return "", &ValidationError{Field: "text", Message: "text is required"}
	}

	out, err := s.editor.AutoComplete(ctx, text, background)
	if err != nil {
		return "", WrapError(ErrExternalService, err.Error())
	}
	return out, nil
}

// ImproveLanguage rewrites text for clarity while keeping its meaning.
func (s *qaService) ImproveLanguage(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", &ValidationError{Field: "text", Message: "text is required"}
	}

	out, err := s.editor.ImproveLanguage(ctx, text)
	if err != nil {
		return "", WrapError(ErrExternalService, err.Error())
	}
	return out, nil
}

// SuggestAlternatives produces alternative phrasings of the text.
func (s *qaService) SuggestAlternatives(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", &ValidationError{Field: "text", Message: "text is required"}
	}

	out, err := s.editor.SuggestAlternatives(ctx, text)
	if err != nil {
		return "", WrapError(ErrExternalService, err.Error())
	}
	return out, nil
}

// DocumentSummary summarizes an owned document's stored content.
func (s *qaService) DocumentSummary(ctx context.Context, userID, docID string) (string, error) {
	doc, err := s.ownedDocument(ctx, userID, docID)
	if err != nil {
		return "", err
	}

	out, err := s.editor.Summarize(ctx, doc.Content)
	if err != nil {
		return "", WrapError(ErrExternalService, err.Error())
	}
	return out, nil
}

// DocumentSuggestions reviews an owned document and returns improvement
// suggestions.
func (s *qaService) DocumentSuggestions(ctx context.Context, userID, docID string) (string, error) {
	doc, err := s.ownedDocument(ctx, userID, docID)
	if err != nil {
		return "", err
	}

	out, err := s.editor.SuggestImprovements(ctx, doc.Content)
	if err != nil {
		return "", WrapError(ErrExternalService, err.Error())
	}
	return out, nil
}

// ownedDocument loads a document and enforces that the caller owns it.
func (s *qaService) ownedDocument(ctx context.Context, userID, docID string) (*storage.Document, error) {
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
