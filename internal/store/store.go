// ABOUTME: File-backed note store with active, trash, and archive areas.
// ABOUTME: Owns id generation, atomic writes, and note resolution.

package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/harper/qn/internal/ident"
	"github.com/harper/qn/internal/note"
)

// ErrNotFound marks a note id missing from the area it was looked up in.
var ErrNotFound = errors.New("not found")

// Area selects one of the three storage directories.
type Area int

const (
	Active Area = iota
	Trash
	Archive
)

func (a Area) String() string {
	switch a {
	case Trash:
		return "trash"
	case Archive:
		return "archive"
	default:
		return "active"
	}
}

// Store owns the notes root and the id generator bound to it. Active
// notes live directly in the root plus any migrated batch directories;
// trash and archive are subdirectories created on first use.
type Store struct {
	root          string
	gen           *ident.Generator
	retentionDays int
	now           func() time.Time
	log           zerolog.Logger
}

// New builds a store rooted at dir. retentionDays bounds how long
// trashed notes are kept; zero keeps them forever.
func New(root string, retentionDays int, log zerolog.Logger) *Store {
	return &Store{
		root:          root,
		gen:           ident.New(),
		retentionDays: retentionDays,
		now:           time.Now,
		log:           log,
	}
}

// Root is the active notes directory.
func (s *Store) Root() string { return s.root }

// EnsureRoot creates the storage root if missing.
func (s *Store) EnsureRoot() error {
	return os.MkdirAll(s.root, 0o755)
}

// EnsureAreas creates every area directory, including trash and archive,
// which are otherwise made lazily on first move.
func (s *Store) EnsureAreas() error {
	for _, area := range []Area{Active, Trash, Archive} {
		if err := os.MkdirAll(s.Dir(area), 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Dir returns the directory backing an area.
func (s *Store) Dir(area Area) string {
	switch area {
	case Trash:
		return filepath.Join(s.root, "trash")
	case Archive:
		return filepath.Join(s.root, "archive")
	default:
		return s.root
	}
}

func (s *Store) notePath(area Area, id string) string {
	return filepath.Join(s.Dir(area), id+".md")
}

func (s *Store) migratedDir() string {
	return filepath.Join(s.root, "migrated")
}

// Entry is one note file with its on-disk size.
type Entry struct {
	Path string
	Size int64
}

// ID derives the note id from the file name.
func (e Entry) ID() string {
	return strings.TrimSuffix(filepath.Base(e.Path), ".md")
}

// List returns the note files in an area. The active area includes
// migrated batch directories. A missing directory lists as empty.
func (s *Store) List(area Area) ([]Entry, error) {
	entries, err := listDir(s.Dir(area))
	if err != nil {
		return nil, err
	}
	if area == Active {
		batches, err := s.batchDirs()
		if err != nil {
			return nil, err
		}
		for _, batch := range batches {
			more, err := listDir(batch)
			if err != nil {
				return nil, err
			}
			entries = append(entries, more...)
		}
	}
	return entries, nil
}

// Count returns how many notes an area holds.
func (s *Store) Count(area Area) (int, error) {
	entries, err := s.List(area)
	return len(entries), err
}

func listDir(dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var entries []Entry
	for _, de := range dirents {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".md") {
			continue
		}
		info, err := de.Info()
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			Path: filepath.Join(dir, de.Name()),
			Size: info.Size(),
		})
	}
	return entries, nil
}

func (s *Store) batchDirs() ([]string, error) {
	dirents, err := os.ReadDir(s.migratedDir())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, de := range dirents {
		if de.IsDir() {
			dirs = append(dirs, filepath.Join(s.migratedDir(), de.Name()))
		}
	}
	return dirs, nil
}

// Path resolves the file backing an id. Active notes are searched in
// the root first, then in migrated batch directories.
func (s *Store) Path(area Area, id string) (string, error) {
	direct := s.notePath(area, id)
	if fileExists(direct) {
		return direct, nil
	}
	if area == Active {
		batches, err := s.batchDirs()
		if err == nil {
			for _, batch := range batches {
				candidate := filepath.Join(batch, id+".md")
				if fileExists(candidate) {
					return candidate, nil
				}
			}
		}
	}
	return "", fmt.Errorf("note %s: %w", id, ErrNotFound)
}

func (s *Store) existsInArea(area Area, id string) bool {
	_, err := s.Path(area, id)
	return err == nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Load reads and decodes one note from an area.
func (s *Store) Load(area Area, id string) (*note.Note, error) {
	path, err := s.Path(area, id)
	if err != nil {
		return nil, err
	}
	return loadPath(path)
}

func loadPath(path string) (*note.Note, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	id := strings.TrimSuffix(filepath.Base(path), ".md")
	return note.Decode(raw, int64(len(raw)), id), nil
}

// Notes loads every note in an area, skipping unreadable files.
func (s *Store) Notes(area Area) ([]*note.Note, error) {
	entries, err := s.List(area)
	if err != nil {
		return nil, err
	}
	notes := make([]*note.Note, 0, len(entries))
	for _, e := range entries {
		n, err := loadPath(e.Path)
		if err != nil {
			s.log.Debug().Str("path", e.Path).Err(err).Msg("skipping unreadable note")
			continue
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// Write encodes and atomically writes a note into an area, creating
// the directory if needed.
func (s *Store) Write(area Area, n *note.Note) error {
	return s.writeToDir(s.Dir(area), n)
}

func (s *Store) writeToDir(dir string, n *note.Note) error {
	data := note.Encode(n)
	if err := atomicWriteFile(filepath.Join(dir, n.ID+".md"), data); err != nil {
		return fmt.Errorf("write note %s: %w", n.ID, err)
	}
	n.Size = int64(len(data))
	return nil
}

// atomicWriteFile writes through a uniquely named temp file in the
// target directory and renames it into place, so concurrent readers
// never observe a partial note.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp := filepath.Join(dir, ".tmp-"+uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Create writes a brand new active note and returns it.
func (s *Store) Create(title, body string, tagList []string) (*note.Note, error) {
	id := s.gen.Next(nil, func(id string) bool {
		return s.existsInArea(Active, id)
	})
	n := note.New(id, title, body, tagList, s.now())
	if err := s.Write(Active, n); err != nil {
		return nil, err
	}
	s.log.Debug().Str("id", id).Msg("created note")
	return n, nil
}

// Append adds one line to an active note's body, refreshes its updated
// stamp, and rewrites it in place.
func (s *Store) Append(id, text string) (*note.Note, error) {
	path, err := s.Path(Active, id)
	if err != nil {
		return nil, err
	}
	n, err := loadPath(path)
	if err != nil {
		return nil, err
	}
	n.AppendLine(text, s.now())
	if err := s.writeToDir(filepath.Dir(path), n); err != nil {
		return nil, err
	}
	return n, nil
}

// Touch re-reads an active note from disk, refreshes its updated stamp,
// and rewrites it normalized. Used after external edits.
func (s *Store) Touch(id string) (*note.Note, error) {
	path, err := s.Path(Active, id)
	if err != nil {
		return nil, err
	}
	n, err := loadPath(path)
	if err != nil {
		return nil, err
	}
	n.Updated = note.Stamp(s.now())
	if err := s.writeToDir(filepath.Dir(path), n); err != nil {
		return nil, err
	}
	return n, nil
}
