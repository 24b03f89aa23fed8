package storage

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestDB(t *testing.T) *DocumentRepo {
	t.Helper()

	tmpDir := t.TempDir()
	db, err := New(tmpDir + "/test.db")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return NewDocumentRepo(db)
}

func TestDocumentRepo_CreateAndGet(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	doc, err := repo.Create(ctx, "alice", "Lease", "The tenant shall pay rent.")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if doc.ID == "" {
		t.Fatal("Create() did not generate an ID")
	}

	got, err := repo.GetByID(ctx, doc.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.UserID != "alice" || got.Title != "Lease" || got.Content != "The tenant shall pay rent." {
		t.Errorf("GetByID() = %+v", got)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not persisted")
	}
}

func TestDocumentRepo_GetByID_NotFound(t *testing.T) {
	repo := newTestDB(t)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestDocumentRepo_ListByUser(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "alice", "First", "a"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := repo.Create(ctx, "alice", "Second", "b"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := repo.Create(ctx, "bob", "Other", "c"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	docs, err := repo.ListByUser(ctx, "alice")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("ListByUser() = %d docs, want 2", len(docs))
	}
	for _, doc := range docs {
		if doc.UserID != "alice" {
			t.Errorf("ListByUser() leaked doc of %q", doc.UserID)
		}
	}

	none, err := repo.ListByUser(ctx, "carol")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("ListByUser() for unknown user = %d docs, want 0", len(none))
	}
}

func TestDocumentRepo_Update(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	doc, err := repo.Create(ctx, "alice", "Lease", "old content")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Make sure updated_at moves even at second resolution.
	time.Sleep(1100 * time.Millisecond)

	updated, err := repo.Update(ctx, doc.ID, "new content", "")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Content != "new content" {
		t.Errorf("Update() content = %q", updated.Content)
	}
	if updated.Title != "Lease" {
		t.Errorf("Update() with empty title changed title to %q", updated.Title)
	}
	if !updated.UpdatedAt.After(doc.UpdatedAt) {
		t.Errorf("Update() did not advance updated_at: %v -> %v", doc.UpdatedAt, updated.UpdatedAt)
	}

	renamed, err := repo.Update(ctx, doc.ID, "newer", "Renamed Lease")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if renamed.Title != "Renamed Lease" {
		t.Errorf("Update() title = %q, want Renamed Lease", renamed.Title)
	}
}

func TestDocumentRepo_Update_NotFound(t *testing.T) {
	repo := newTestDB(t)

	_, err := repo.Update(context.Background(), "missing", "content", "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestDocumentRepo_Delete(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	doc, err := repo.Create(ctx, "alice", "Lease", "content")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(ctx, doc.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByID(ctx, doc.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, doc.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}
}
