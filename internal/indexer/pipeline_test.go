package indexer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"clauselens/internal/vectorstore"
	"clauselens/internal/vectorstore/mocks"
)

// fakeEmbedder returns a deterministic vector per text.
type fakeEmbedder struct {
	err   error
	calls int
}

func (f *fakeEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(len(texts[i])), 1}
	}
	return vectors, nil
}

func TestPipeline_IndexDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockVectorStore(ctrl)
	pipeline := NewPipeline(NewChunker(100, 20), &fakeEmbedder{}, mockStore)

	ns := vectorstore.NamespaceForDocument("doc1")
	mockStore.EXPECT().
		Upsert(gomock.Any(), ns, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ vectorstore.Namespace, records []vectorstore.Record) error {
			if len(records) == 0 {
				t.Error("Upsert() called with no records")
			}
			for i, rec := range records {
				if want := fmt.Sprintf("chunk_%d", i); rec.ID != want {
					t.Errorf("record %d id = %q, want %q", i, rec.ID, want)
				}
				if got := rec.Meta[vectorstore.MetaDocID]; got != "doc1" {
					t.Errorf("record %d doc_id = %v, want doc1", i, got)
				}
				if got := rec.Meta[vectorstore.MetaChunkIndex]; got != i {
					t.Errorf("record %d chunk_index = %v, want %d", i, got, i)
				}
				if got := rec.Meta[vectorstore.MetaTitle]; got != "Lease" {
					t.Errorf("record %d title = %v, want Lease", i, got)
				}
				if got := rec.Meta[vectorstore.MetaUserID]; got != "alice" {
					t.Errorf("record %d user_id = %v, want alice", i, got)
				}
				if text, _ := rec.Meta[vectorstore.MetaText].(string); text == "" {
					t.Errorf("record %d has empty text", i)
				}
			}
			return nil
		})

	count, err := pipeline.IndexDocument(context.Background(), "doc1", "The tenant shall pay rent monthly.\n\nThe landlord shall maintain the premises.", Metadata{Title: "Lease", UserID: "alice"})
	if err != nil {
		t.Fatalf("IndexDocument() error = %v", err)
	}
	if count == 0 {
		t.Error("IndexDocument() returned 0 chunks")
	}
}

func TestPipeline_IndexDocument_EmptyText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockVectorStore(ctrl)
	embedder := &fakeEmbedder{}
	pipeline := NewPipeline(NewDefaultChunker(), embedder, mockStore)

	// No embedding and no upsert for empty text.
	count, err := pipeline.IndexDocument(context.Background(), "doc1", "   \n  ", Metadata{})
	if err != nil {
		t.Fatalf("IndexDocument() error = %v", err)
	}
	if count != 0 {
		t.Errorf("IndexDocument() count = %d, want 0", count)
	}
	if embedder.calls != 0 {
		t.Errorf("embedder called %d times for empty text, want 0", embedder.calls)
	}
}

func TestPipeline_IndexDocument_EmbedFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockVectorStore(ctrl)
	pipeline := NewPipeline(NewDefaultChunker(), &fakeEmbedder{err: errors.New("provider down")}, mockStore)

	_, err := pipeline.IndexDocument(context.Background(), "doc1", "some content", Metadata{})
	if err == nil {
		t.Error("IndexDocument() should propagate embed failure")
	}
}

func TestPipeline_IndexDocument_UpsertFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockVectorStore(ctrl)
	mockStore.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("index down"))
	pipeline := NewPipeline(NewDefaultChunker(), &fakeEmbedder{}, mockStore)

	_, err := pipeline.IndexDocument(context.Background(), "doc1", "some content", Metadata{})
	if err == nil {
		t.Error("IndexDocument() should propagate upsert failure")
	}
}

func TestPipeline_ReindexDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockVectorStore(ctrl)
	pipeline := NewPipeline(NewDefaultChunker(), &fakeEmbedder{}, mockStore)

	ns := vectorstore.NamespaceForDocument("doc1")
	gomock.InOrder(
		mockStore.EXPECT().DeleteNamespace(gomock.Any(), ns).Return(nil),
		mockStore.EXPECT().Upsert(gomock.Any(), ns, gomock.Any()).Return(nil),
	)

	count, err := pipeline.ReindexDocument(context.Background(), "doc1", "updated content", Metadata{Title: "Lease"})
	if err != nil {
		t.Fatalf("ReindexDocument() error = %v", err)
	}
	if count != 1 {
		t.Errorf("ReindexDocument() count = %d, want 1", count)
	}
}

func TestPipeline_ReindexDocument_DeleteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockVectorStore(ctrl)
	mockStore.EXPECT().DeleteNamespace(gomock.Any(), gomock.Any()).Return(errors.New("index down"))
	pipeline := NewPipeline(NewDefaultChunker(), &fakeEmbedder{}, mockStore)

	// A failed clear must not be followed by a partial write.
	_, err := pipeline.ReindexDocument(context.Background(), "doc1", "content", Metadata{})
	if err == nil {
		t.Error("ReindexDocument() should fail when the clear fails")
	}
}

func TestPipeline_DeindexDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockVectorStore(ctrl)
	mockStore.EXPECT().DeleteNamespace(gomock.Any(), vectorstore.NamespaceForDocument("doc1")).Return(nil)
	pipeline := NewPipeline(NewDefaultChunker(), &fakeEmbedder{}, mockStore)

	if err := pipeline.DeindexDocument(context.Background(), "doc1"); err != nil {
		t.Fatalf("DeindexDocument() error = %v", err)
	}
}
