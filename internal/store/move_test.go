// ABOUTME: Tests for moving notes between the active, trash, and archive areas.
// ABOUTME: Covers lifecycle stamps, restores, and id conflicts on restore.

package store

import (
	"errors"
	"testing"
	"time"

	"github.com/harper/qn/internal/note"
)

func TestMoveToTrashStampsDeleted(t *testing.T) {
	s := newTestStore(t)
	now := time.Date(2026, 8, 12, 10, 0, 0, 0, time.FixedZone("", 0))
	s.now = fixedClock(now)

	n, err := s.Create("doomed", "body\n", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id, err := s.Move(Active, Trash, n.ID)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if id != n.ID {
		t.Errorf("id changed to %q without a conflict", id)
	}

	if _, err := s.Load(Active, n.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("source still present: %v", err)
	}
	trashed, err := s.Load(Trash, id)
	if err != nil {
		t.Fatalf("Load from trash: %v", err)
	}
	if trashed.DeletedAt != note.Stamp(now) {
		t.Errorf("DeletedAt = %q", trashed.DeletedAt)
	}
	if trashed.ArchivedAt != "" {
		t.Errorf("ArchivedAt = %q, want empty", trashed.ArchivedAt)
	}
}

func TestMoveToArchiveStampsArchived(t *testing.T) {
	s := newTestStore(t)
	now := time.Date(2026, 8, 12, 10, 0, 0, 0, time.FixedZone("", 0))
	s.now = fixedClock(now)

	n, err := s.Create("keeper", "body\n", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id, err := s.Move(Active, Archive, n.ID)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}

	archived, err := s.Load(Archive, id)
	if err != nil {
		t.Fatalf("Load from archive: %v", err)
	}
	if archived.ArchivedAt != note.Stamp(now) {
		t.Errorf("ArchivedAt = %q", archived.ArchivedAt)
	}
	if archived.DeletedAt != "" {
		t.Errorf("DeletedAt = %q, want empty", archived.DeletedAt)
	}
}

func TestRestoreClearsLifecycleStamps(t *testing.T) {
	s := newTestStore(t)
	n, err := s.Create("back soon", "body\n", []string{"keep"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Move(Active, Trash, n.ID); err != nil {
		t.Fatalf("Move to trash: %v", err)
	}
	id, err := s.Move(Trash, Active, n.ID)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	restored, err := s.Load(Active, id)
	if err != nil {
		t.Fatalf("Load restored: %v", err)
	}
	if restored.DeletedAt != "" {
		t.Errorf("DeletedAt = %q, want cleared", restored.DeletedAt)
	}
	if restored.ArchivedAt != "" {
		t.Errorf("ArchivedAt = %q, want cleared", restored.ArchivedAt)
	}
	if restored.Updated != n.Updated {
		t.Errorf("Updated changed: %q vs %q", restored.Updated, n.Updated)
	}
	if restored.Body != "body\n" || len(restored.Tags) != 1 || restored.Tags[0] != "#keep" {
		t.Errorf("content lost: body=%q tags=%v", restored.Body, restored.Tags)
	}
	if _, err := s.Load(Trash, n.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("trash copy still present: %v", err)
	}
}

func TestUnarchiveClearsArchivedStamp(t *testing.T) {
	s := newTestStore(t)
	n, err := s.Create("stowed", "body\n", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Move(Active, Archive, n.ID); err != nil {
		t.Fatalf("Move to archive: %v", err)
	}
	id, err := s.Move(Archive, Active, n.ID)
	if err != nil {
		t.Fatalf("Unarchive: %v", err)
	}
	restored, err := s.Load(Active, id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restored.ArchivedAt != "" {
		t.Errorf("ArchivedAt = %q, want cleared", restored.ArchivedAt)
	}
}

func TestRestoreConflictAssignsFreshId(t *testing.T) {
	s := newTestStore(t)
	n, err := s.Create("original", "body\n", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Move(Active, Trash, n.ID); err != nil {
		t.Fatalf("Move to trash: %v", err)
	}

	// Occupy the old id in the active area before restoring.
	squatter := &note.Note{ID: n.ID, Title: "squatter", Body: "here first\n"}
	if err := s.Write(Active, squatter); err != nil {
		t.Fatalf("Write squatter: %v", err)
	}

	id, err := s.Move(Trash, Active, n.ID)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if id == n.ID {
		t.Fatal("restore reused a taken id")
	}

	kept, err := s.Load(Active, n.ID)
	if err != nil {
		t.Fatalf("Load squatter: %v", err)
	}
	if kept.Title != "squatter" {
		t.Errorf("squatter overwritten, title = %q", kept.Title)
	}
	restored, err := s.Load(Active, id)
	if err != nil {
		t.Fatalf("Load restored: %v", err)
	}
	if restored.Title != "original" || restored.ID != id {
		t.Errorf("restored = %q (%s)", restored.Title, restored.ID)
	}
}

func TestMoveMissingNote(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Move(Active, Trash, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMoveFromBatchDirectory(t *testing.T) {
	s := newTestStore(t)
	batchNote := &note.Note{ID: "legacy1", Title: "old", Body: "b\n"}
	if err := s.writeToDir(s.migratedDir()+"/migration-000000abc", batchNote); err != nil {
		t.Fatalf("writeToDir: %v", err)
	}

	id, err := s.Move(Active, Trash, "legacy1")
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if _, err := s.Load(Trash, id); err != nil {
		t.Fatalf("Load from trash: %v", err)
	}
	if _, err := s.Load(Active, "legacy1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("batch copy still present: %v", err)
	}
}
