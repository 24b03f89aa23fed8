package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"go.uber.org/mock/gomock"

	"clauselens/internal/rag"
	"clauselens/internal/service"
	"clauselens/internal/service/mocks"
	"clauselens/internal/storage"
)

func TestAskHandler_Ask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	qa := mocks.NewMockQAService(ctrl)
	handler := NewAskHandler(qa)

	qa.EXPECT().
		Ask(gomock.Any(), "alice", service.AskInput{Question: "What is the rent?", DocID: "doc1", TopK: 3}).
		Return(&service.AskResult{
			Answer: "The rent is $2000 per month.",
			Sources: []rag.Source{
				{Text: "Rent is $2000.", Score: 0.92, DocID: "doc1", Title: "Lease"},
			},
		}, nil)

	body, _ := json.Marshal(AskRequest{Question: "What is the rent?", DocID: "doc1", TopK: 3})
	req := authed(httptest.NewRequest(http.MethodPost, "/ask", bytes.NewReader(body)), "alice")
	rec := httptest.NewRecorder()
	handler.Ask(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var resp AskResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Answer != "The rent is $2000 per month." {
		t.Errorf("answer = %q", resp.Answer)
	}
	if len(resp.Sources) != 1 || resp.Sources[0].DocID != "doc1" || resp.Sources[0].Score != 0.92 {
		t.Errorf("sources = %+v", resp.Sources)
	}
}

func TestAskHandler_Ask_TruncatesSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	qa := mocks.NewMockQAService(ctrl)
	handler := NewAskHandler(qa)

	long := strings.Repeat("a", sourcePreviewLimit+100)
	qa.EXPECT().
		Ask(gomock.Any(), "alice", gomock.Any()).
		Return(&service.AskResult{
			Answer:  "answer",
			Sources: []rag.Source{{Text: long, Score: 1.0, DocID: "doc1", Title: "Lease"}},
		}, nil)

	body, _ := json.Marshal(AskRequest{Question: "q"})
	req := authed(httptest.NewRequest(http.MethodPost, "/ask", bytes.NewReader(body)), "alice")
	rec := httptest.NewRecorder()
	handler.Ask(rec, req)

	var resp AskResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := strings.Repeat("a", sourcePreviewLimit) + "..."
	if resp.Sources[0].Text != want {
		t.Errorf("source preview length = %d, want %d", len(resp.Sources[0].Text), len(want))
	}
}

func TestAskHandler_Ask_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	qa := mocks.NewMockQAService(ctrl)
	handler := NewAskHandler(qa)

	tests := []struct {
		name       string
		body       string
		userID     string
		setup      func()
		wantStatus int
	}{
		{
			name:       "unauthorized",
			body:       `{"question":"q"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid body",
			body:       "not json",
			userID:     "alice",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty question",
			body:       `{"question":""}`,
			userID:     "alice",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "document not found",
			body:   `{"question":"q","doc_id":"missing"}`,
			userID: "alice",
			setup: func() {
				qa.EXPECT().Ask(gomock.Any(), "alice", gomock.Any()).Return(nil, service.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "foreign document",
			body:   `{"question":"q","doc_id":"doc1"}`,
			userID: "bob",
			setup: func() {
				qa.EXPECT().Ask(gomock.Any(), "bob", gomock.Any()).Return(nil, service.ErrAccessDenied)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "engine failure",
			body:   `{"question":"q"}`,
			userID: "alice",
			setup: func() {
				qa.EXPECT().Ask(gomock.Any(), "alice", gomock.Any()).Return(nil, service.ErrExternalService)
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}
			req := httptest.NewRequest(http.MethodPost, "/ask", bytes.NewReader([]byte(tt.body)))
			if tt.userID != "" {
				req = authed(req, tt.userID)
			}
			rec := httptest.NewRecorder()
			handler.Ask(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestAskHandler_Ask_NegativeTopK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	qa := mocks.NewMockQAService(ctrl)
	handler := NewAskHandler(qa)

	qa.EXPECT().
		Ask(gomock.Any(), "alice", service.AskInput{Question: "q", TopK: 0}).
		Return(&service.AskResult{Answer: "a"}, nil)

	body, _ := json.Marshal(AskRequest{Question: "q", TopK: -5})
	req := authed(httptest.NewRequest(http.MethodPost, "/ask", bytes.NewReader(body)), "alice")
	rec := httptest.NewRecorder()
	handler.Ask(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAskHandler_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	qa := mocks.NewMockQAService(ctrl)
	handler := NewAskHandler(qa)

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	qa.EXPECT().
		History(gomock.Any(), "alice", 50).
		Return([]*storage.ChatRecord{
			{
				ID:       "chat1",
				UserID:   "alice",
				DocID:    "doc1",
				Question: "What is the rent?",
				Answer:   "The rent is $2000.",
				Sources: []storage.Source{
					{Text: "Rent is $2000.", Score: 0.92, DocID: "doc1", Title: "Lease"},
				},
				CreatedAt: created,
			},
		}, nil)

	req := authed(httptest.NewRequest(http.MethodGet, "/ask/history", nil), "alice")
	rec := httptest.NewRecorder()
	handler.History(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		History []HistoryEntry `json:"history"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.History) != 1 {
		t.Fatalf("history = %d entries, want 1", len(resp.History))
	}
	entry := resp.History[0]
	if entry.ID != "chat1" || entry.Question != "What is the rent?" || len(entry.Sources) != 1 {
		t.Errorf("entry = %+v", entry)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"under limit", "short", 10, "short"},
		{"at limit", "exact", 5, "exact"},
		{"ascii cut", "abcdefgh", 4, "abcd..."},
		{"multi-byte rune straddling the limit", "日本語テキスト", 7, "日本..."},
		{"cut lands on a rune boundary", "日本語テキスト", 6, "日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.limit)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) = %q is not valid UTF-8", tt.in, tt.limit, got)
			}
		})
	}
}

func TestAskHandler_History_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewAskHandler(mocks.NewMockQAService(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/ask/history", nil)
	rec := httptest.NewRecorder()
	handler.History(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
