// ABOUTME: Bulk import of foreign note directories and id rekeying.
// ABOUTME: Imports land in migrated/ batches with cross-area id checks.

package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harper/qn/internal/ident"
	"github.com/harper/qn/internal/note"
	"github.com/harper/qn/internal/tags"
)

// IDChange records one note's id before and after a migration.
type IDChange struct {
	From string
	To   string
}

// SkippedFile is a source file a migration could not read.
type SkippedFile struct {
	Name string
	Err  error
}

// MigrateResult reports what a directory import did. Batch is empty
// when the source held no notes.
type MigrateResult struct {
	Batch    string
	BatchDir string
	Changes  []IDChange
	Skipped  []SkippedFile
}

// MigrateDir copies every note file from src into a new batch under
// migrated/, keeping source files untouched. Ids already present in any
// area are re-keyed; missing created/updated stamps are backfilled.
func (s *Store) MigrateDir(src string) (*MigrateResult, error) {
	info, err := os.Stat(src)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("source path not found: %s", src)
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source path is not a directory: %s", src)
	}

	files, err := listDir(src)
	if err != nil {
		return nil, err
	}
	result := &MigrateResult{}
	if len(files) == 0 {
		return result, nil
	}

	base := "migration-" + ident.ShortStamp(s.now().UnixMicro())
	batch := base
	for seq := 2; dirExists(filepath.Join(s.migratedDir(), batch)); seq++ {
		batch = fmt.Sprintf("%s-%d", base, seq)
	}
	batchDir := filepath.Join(s.migratedDir(), batch)
	if err := os.MkdirAll(batchDir, 0o755); err != nil {
		return nil, err
	}
	result.Batch = batch
	result.BatchDir = batchDir

	reserved, err := s.collectIDs()
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		n, err := s.importFile(f)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedFile{
				Name: filepath.Base(f.Path),
				Err:  err,
			})
			continue
		}
		if strings.TrimSpace(n.Created) == "" {
			n.Created = note.Stamp(s.now())
		}
		if strings.TrimSpace(n.Updated) == "" {
			n.Updated = n.Created
		}

		originalID := n.ID
		if _, taken := reserved[n.ID]; taken {
			n.ID = s.gen.Next(reserved, func(candidate string) bool {
				return s.existsInArea(Active, candidate)
			})
			s.log.Debug().
				Str("id", originalID).
				Str("reassigned", n.ID).
				Msg("imported id already in use, reassigned")
		}
		reserved[n.ID] = struct{}{}
		if err := s.writeToDir(batchDir, n); err != nil {
			return result, err
		}
		result.Changes = append(result.Changes, IDChange{From: originalID, To: n.ID})
	}
	return result, nil
}

// importFile reads one foreign note. Files opening with YAML
// frontmatter map their fields onto the header; everything else goes
// through the regular codec, which degrades gracefully on plain
// markdown.
func (s *Store) importFile(e Entry) (*note.Note, error) {
	raw, err := os.ReadFile(e.Path)
	if err != nil {
		return nil, err
	}
	if n, ok := decodeFrontmatter(raw, e.Size, e.ID()); ok {
		return n, nil
	}
	return note.Decode(raw, e.Size, e.ID()), nil
}

func decodeFrontmatter(raw []byte, size int64, id string) (*note.Note, bool) {
	content := string(raw)
	if !strings.HasPrefix(content, "---\n") {
		return nil, false
	}
	parts := strings.SplitN(content, "---\n", 3)
	if len(parts) < 3 {
		return nil, false
	}
	var fm struct {
		Title   string   `yaml:"title"`
		Tags    []string `yaml:"tags"`
		Created string   `yaml:"created"`
		Updated string   `yaml:"updated"`
	}
	if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
		return nil, false
	}
	return &note.Note{
		ID:      id,
		Title:   fm.Title,
		Created: convertStamp(fm.Created),
		Updated: convertStamp(fm.Updated),
		Tags:    tags.NormalizeAll(fm.Tags),
		Body:    strings.TrimPrefix(parts[2], "\n"),
		Size:    size,
	}, true
}

// convertStamp rewrites a frontmatter timestamp into the header format.
// Already-native stamps and unparseable values pass through unchanged.
func convertStamp(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if _, ok := note.ParseStamp(s); ok {
		return s
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return note.Stamp(t)
		}
	}
	return s
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// MigrateIDs renames every active note, including those in migrated
// batches, to a freshly generated id. Ids are computed up front against
// everything on disk, then applied.
func (s *Store) MigrateIDs() ([]IDChange, error) {
	entries, err := s.List(Active)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	reserved, err := s.collectIDs()
	if err != nil {
		return nil, err
	}

	type rename struct {
		from Entry
		to   string
	}
	renames := make([]rename, 0, len(entries))
	for _, e := range entries {
		newID := s.gen.Next(reserved, func(candidate string) bool {
			return s.existsInArea(Active, candidate)
		})
		reserved[newID] = struct{}{}
		renames = append(renames, rename{from: e, to: newID})
	}

	changes := make([]IDChange, 0, len(renames))
	for _, r := range renames {
		newPath := filepath.Join(filepath.Dir(r.from.Path), r.to+".md")
		if err := os.Rename(r.from.Path, newPath); err != nil {
			return changes, fmt.Errorf("rename %s: %w", r.from.ID(), err)
		}
		changes = append(changes, IDChange{From: r.from.ID(), To: r.to})
	}
	return changes, nil
}
