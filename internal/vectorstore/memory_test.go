package vectorstore

import (
	"context"
	"testing"
)

func TestNamespace(t *testing.T) {
	ns := NamespaceForDocument("abc-123")
	if ns.IsZero() {
		t.Error("NamespaceForDocument() should not be zero")
	}
	if got := ns.DocumentID(); got != "abc-123" {
		t.Errorf("DocumentID() = %q, want %q", got, "abc-123")
	}
	if got := ns.String(); got != "doc_abc-123" {
		t.Errorf("String() = %q, want %q", got, "doc_abc-123")
	}

	var zero Namespace
	if !zero.IsZero() {
		t.Error("zero Namespace should report IsZero")
	}
	if got := zero.String(); got != "" {
		t.Errorf("zero Namespace String() = %q, want empty", got)
	}
}

func TestMemoryStore_UpsertAndQuery(t *testing.T) {
	store := NewMemoryStore(3)
	ctx := context.Background()
	ns := NamespaceForDocument("doc1")

	records := []Record{
		{ID: "chunk_0", Vec: []float32{1, 0, 0}, Meta: map[string]any{MetaText: "first", MetaChunkIndex: 0}},
		{ID: "chunk_1", Vec: []float32{0, 1, 0}, Meta: map[string]any{MetaText: "second", MetaChunkIndex: 1}},
		{ID: "chunk_2", Vec: []float32{0, 0, 1}, Meta: map[string]any{MetaText: "third", MetaChunkIndex: 2}},
	}
	if err := store.Upsert(ctx, ns, records); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	matches, err := store.Query(ctx, []float32{0, 1, 0}, 2, ns, nil)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Query() returned %d matches, want 2", len(matches))
	}
	if matches[0].ID != "chunk_1" {
		t.Errorf("best match = %q, want chunk_1", matches[0].ID)
	}
	if matches[0].Score <= matches[1].Score {
		t.Errorf("matches not in descending score order: %v >= %v expected", matches[0].Score, matches[1].Score)
	}
	if got, _ := matches[0].Meta[MetaText].(string); got != "second" {
		t.Errorf("match meta text = %q, want %q", got, "second")
	}
}

func TestMemoryStore_SelfSimilarity(t *testing.T) {
	store := NewMemoryStore(2)
	ctx := context.Background()
	ns := NamespaceForDocument("doc1")

	vec := []float32{0.6, 0.8} // unit length
	if err := store.Upsert(ctx, ns, []Record{{ID: "chunk_0", Vec: vec}}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	matches, err := store.Query(ctx, vec, 1, ns, nil)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("Query() returned %d matches, want 1", len(matches))
	}
	if diff := matches[0].Score - 1.0; diff > 1e-5 || diff < -1e-5 {
		t.Errorf("self-similarity score = %v, want 1.0", matches[0].Score)
	}
}

func TestMemoryStore_ScoreTiesKeepInsertionOrder(t *testing.T) {
	store := NewMemoryStore(2)
	ctx := context.Background()
	ns := NamespaceForDocument("doc1")

	// Identical vectors score identically against any query.
	records := []Record{
		{ID: "chunk_0", Vec: []float32{1, 0}},
		{ID: "chunk_1", Vec: []float32{1, 0}},
		{ID: "chunk_2", Vec: []float32{1, 0}},
	}
	if err := store.Upsert(ctx, ns, records); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	matches, err := store.Query(ctx, []float32{1, 0}, 3, ns, nil)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	want := []string{"chunk_0", "chunk_1", "chunk_2"}
	for i, id := range want {
		if matches[i].ID != id {
			t.Errorf("matches[%d] = %q, want %q", i, matches[i].ID, id)
		}
	}
}

func TestMemoryStore_UpsertOverwritesByID(t *testing.T) {
	store := NewMemoryStore(2)
	ctx := context.Background()
	ns := NamespaceForDocument("doc1")

	if err := store.Upsert(ctx, ns, []Record{{ID: "chunk_0", Vec: []float32{1, 0}, Meta: map[string]any{MetaText: "old"}}}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := store.Upsert(ctx, ns, []Record{{ID: "chunk_0", Vec: []float32{0, 1}, Meta: map[string]any{MetaText: "new"}}}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	matches, err := store.Query(ctx, []float32{0, 1}, 10, ns, nil)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("Query() returned %d matches, want 1 after overwrite", len(matches))
	}
	if got, _ := matches[0].Meta[MetaText].(string); got != "new" {
		t.Errorf("meta text = %q, want %q", got, "new")
	}
}

func TestMemoryStore_QueryUnknownNamespace(t *testing.T) {
	store := NewMemoryStore(2)

	matches, err := store.Query(context.Background(), []float32{1, 0}, 5, NamespaceForDocument("never-written"), nil)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Query() on unknown namespace returned %d matches, want 0", len(matches))
	}
}

func TestMemoryStore_QueryAcrossNamespaces(t *testing.T) {
	store := NewMemoryStore(2)
	ctx := context.Background()

	if err := store.Upsert(ctx, NamespaceForDocument("doc1"), []Record{{ID: "chunk_0", Vec: []float32{1, 0}, Meta: map[string]any{MetaDocID: "doc1"}}}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := store.Upsert(ctx, NamespaceForDocument("doc2"), []Record{{ID: "chunk_0", Vec: []float32{0, 1}, Meta: map[string]any{MetaDocID: "doc2"}}}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	var zero Namespace
	matches, err := store.Query(ctx, []float32{1, 1}, 10, zero, nil)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("cross-namespace Query() returned %d matches, want 2", len(matches))
	}
}

func TestMemoryStore_QueryWithFilter(t *testing.T) {
	store := NewMemoryStore(2)
	ctx := context.Background()
	ns := NamespaceForDocument("doc1")

	records := []Record{
		{ID: "chunk_0", Vec: []float32{1, 0}, Meta: map[string]any{MetaUserID: "alice"}},
		{ID: "chunk_1", Vec: []float32{1, 0}, Meta: map[string]any{MetaUserID: "bob"}},
	}
	if err := store.Upsert(ctx, ns, records); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	matches, err := store.Query(ctx, []float32{1, 0}, 10, ns, map[string]any{MetaUserID: "bob"})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(matches) != 1 || matches[0].ID != "chunk_1" {
		t.Errorf("filtered Query() = %v, want only chunk_1", matches)
	}
}

func TestMemoryStore_DeleteNamespace(t *testing.T) {
	store := NewMemoryStore(2)
	ctx := context.Background()
	ns := NamespaceForDocument("doc1")

	if err := store.Upsert(ctx, ns, []Record{{ID: "chunk_0", Vec: []float32{1, 0}}}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	if err := store.DeleteNamespace(ctx, ns); err != nil {
		t.Fatalf("DeleteNamespace() error = %v", err)
	}

	matches, err := store.Query(ctx, []float32{1, 0}, 5, ns, nil)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Query() after delete returned %d matches, want 0", len(matches))
	}

	// Deleting again, or deleting a namespace never written, must succeed.
	if err := store.DeleteNamespace(ctx, ns); err != nil {
		t.Errorf("DeleteNamespace() on deleted namespace error = %v", err)
	}
	if err := store.DeleteNamespace(ctx, NamespaceForDocument("never-written")); err != nil {
		t.Errorf("DeleteNamespace() on unknown namespace error = %v", err)
	}
}

func TestMemoryStore_DimensionMismatch(t *testing.T) {
	store := NewMemoryStore(3)

	err := store.Upsert(context.Background(), NamespaceForDocument("doc1"), []Record{{ID: "chunk_0", Vec: []float32{1, 0}}})
	if err == nil {
		t.Error("Upsert() with wrong dimension should fail")
	}
}

func TestMemoryStore_QueryInvalidTopK(t *testing.T) {
	store := NewMemoryStore(2)

	if _, err := store.Query(context.Background(), []float32{1, 0}, 0, Namespace{}, nil); err == nil {
		t.Error("Query() with topK=0 should fail")
	}
}
