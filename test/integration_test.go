// ABOUTME: Integration tests for qn CLI commands.
// ABOUTME: Tests full workflows from new through delete, restore, and archive.

package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var qnBin string

func TestMain(m *testing.M) {
	// Build qn binary
	cmd := exec.Command("go", "build", "-o", "bin/qn", "./cmd/qn")
	cmd.Dir = ".."
	if err := cmd.Run(); err != nil {
		panic(err)
	}

	wd, _ := os.Getwd()
	qnBin = filepath.Join(wd, "..", "bin", "qn")

	os.Exit(m.Run())
}

func TestNewListViewDelete(t *testing.T) {
	dir := t.TempDir()

	// Create a note
	out, err := runQn(dir, "new", "Test Note", "test", "content", "here")
	if err != nil {
		t.Fatalf("new failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Created note") {
		t.Errorf("expected 'Created note' in output: %s", out)
	}
	id := extractID(t, out)

	// List notes
	out, err = runQn(dir, "list")
	if err != nil {
		t.Fatalf("list failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Test Note") {
		t.Errorf("expected 'Test Note' in list: %s", out)
	}
	if !strings.Contains(out, id) {
		t.Errorf("expected id %s in list: %s", id, out)
	}

	// View note
	out, err = runQn(dir, "view", "--plain", id)
	if err != nil {
		t.Fatalf("view failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "test content here") {
		t.Errorf("expected body in view: %s", out)
	}

	// Delete note
	out, err = runQn(dir, "delete", id)
	if err != nil {
		t.Fatalf("delete failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "trash") {
		t.Errorf("expected trash confirmation: %s", out)
	}

	// It should show up in the trash listing, not the active one
	out, _ = runQn(dir, "list")
	if strings.Contains(out, id) {
		t.Errorf("deleted note still listed as active: %s", out)
	}
	out, _ = runQn(dir, "list-deleted")
	if !strings.Contains(out, id) {
		t.Errorf("expected id %s in trash listing: %s", id, out)
	}

	// Restore it
	out, err = runQn(dir, "undelete", id)
	if err != nil {
		t.Fatalf("undelete failed: %v\n%s", err, out)
	}
	out, _ = runQn(dir, "list")
	if !strings.Contains(out, id) {
		t.Errorf("restored note missing from active listing: %s", out)
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	out, err := runQn(dir, "new", "Reference Doc", "keep", "this", "around")
	if err != nil {
		t.Fatalf("new failed: %v\n%s", err, out)
	}
	id := extractID(t, out)

	out, err = runQn(dir, "archive", id)
	if err != nil {
		t.Fatalf("archive failed: %v\n%s", err, out)
	}

	out, _ = runQn(dir, "list-archived")
	if !strings.Contains(out, id) {
		t.Errorf("expected id %s in archive listing: %s", id, out)
	}

	out, err = runQn(dir, "unarchive", id)
	if err != nil {
		t.Fatalf("unarchive failed: %v\n%s", err, out)
	}
	out, _ = runQn(dir, "list")
	if !strings.Contains(out, id) {
		t.Errorf("unarchived note missing from active listing: %s", out)
	}
}

func TestTagOperations(t *testing.T) {
	dir := t.TempDir()

	_, _ = runQn(dir, "new", "Tagged Note", "content", "-t", "work", "-t", "urgent")
	_, _ = runQn(dir, "new", "Plain Note", "no", "tags")

	// List by tag
	out, _ := runQn(dir, "list", "--tag", "work")
	if !strings.Contains(out, "Tagged Note") {
		t.Errorf("expected note in tag filter: %s", out)
	}
	if strings.Contains(out, "Plain Note") {
		t.Errorf("did not expect untagged note in tag filter: %s", out)
	}

	// Tag statistics
	out, _ = runQn(dir, "tags")
	if !strings.Contains(out, "#work") || !strings.Contains(out, "#urgent") {
		t.Errorf("expected normalized tags in stats: %s", out)
	}
}

func TestSearch(t *testing.T) {
	dir := t.TempDir()

	_, _ = runQn(dir, "new", "Go Programming", "learn", "about", "goroutines")
	_, _ = runQn(dir, "new", "Cooking", "how", "to", "make", "pasta")

	out, _ := runQn(dir, "list", "--search", "goroutines")
	if !strings.Contains(out, "Go Programming") {
		t.Errorf("expected 'Go Programming' in search: %s", out)
	}
	if strings.Contains(out, "Cooking") {
		t.Errorf("did not expect 'Cooking' in search: %s", out)
	}
}

func TestAppendAndStats(t *testing.T) {
	dir := t.TempDir()

	out, err := runQn(dir, "new", "Running List")
	if err != nil {
		t.Fatalf("new failed: %v\n%s", err, out)
	}
	id := extractID(t, out)

	out, err = runQn(dir, "add", id, "first entry")
	if err != nil {
		t.Fatalf("add failed: %v\n%s", err, out)
	}
	out, _ = runQn(dir, "view", "--plain", id)
	if !strings.Contains(out, "first entry") {
		t.Errorf("appended text missing from view: %s", out)
	}

	out, err = runQn(dir, "stats")
	if err != nil {
		t.Fatalf("stats failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Active") || !strings.Contains(out, "1") {
		t.Errorf("expected active count in stats: %s", out)
	}

	out, err = runQn(dir, "path")
	if err != nil {
		t.Fatalf("path failed: %v\n%s", err, out)
	}
	if strings.TrimSpace(out) != dir {
		t.Errorf("path = %q, want %q", strings.TrimSpace(out), dir)
	}
}

// extractID pulls the generated id out of "Created note <id> (<title>)".
func extractID(t *testing.T, out string) string {
	t.Helper()
	idx := strings.Index(out, "Created note ")
	if idx < 0 {
		t.Fatalf("no creation confirmation in output: %s", out)
	}
	rest := out[idx+len("Created note "):]
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		t.Fatalf("could not extract id from output: %s", out)
	}
	return fields[0]
}

func runQn(dir string, args ...string) (string, error) {
	cmd := exec.Command(qnBin, args...) //nolint:gosec // Running our own test binary is expected in integration tests
	cmd.Env = append(os.Environ(),
		"QUICK_NOTES_DIR="+dir,
		"QUICK_NOTES_NO_FZF=1",
		"NO_COLOR=1",
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}
