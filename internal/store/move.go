// ABOUTME: Cross-area note moves with lifecycle stamps.
// ABOUTME: Destination id conflicts re-key from a cross-area scan.

package store

import (
	"fmt"
	"os"

	"github.com/harper/qn/internal/note"
)

// Move relocates a note between areas, stamping it for the destination:
// trash sets Deleted, archive sets Archived, active clears both. When
// the destination already holds the id, a fresh id is generated against
// every id currently on disk; the final id is returned. The destination
// copy is written before the source is removed, so a failure between
// the two leaves a duplicate rather than a lost note.
func (s *Store) Move(from, to Area, id string) (string, error) {
	srcPath, err := s.Path(from, id)
	if err != nil {
		return "", err
	}
	n, err := loadPath(srcPath)
	if err != nil {
		return "", err
	}

	stamp := note.Stamp(s.now())
	switch to {
	case Trash:
		n.DeletedAt = stamp
		n.ArchivedAt = ""
	case Archive:
		n.ArchivedAt = stamp
		n.DeletedAt = ""
	default:
		n.DeletedAt = ""
		n.ArchivedAt = ""
	}

	if s.existsInArea(to, id) {
		reserved, err := s.collectIDs()
		if err != nil {
			return "", err
		}
		newID := s.gen.Next(reserved, func(candidate string) bool {
			return s.existsInArea(to, candidate)
		})
		s.log.Debug().
			Str("id", id).
			Str("reassigned", newID).
			Str("area", to.String()).
			Msg("id taken in destination, reassigned")
		n.ID = newID
	}

	if err := s.Write(to, n); err != nil {
		return "", err
	}
	if err := os.Remove(srcPath); err != nil {
		return "", fmt.Errorf("remove source for %s: %w", id, err)
	}
	return n.ID, nil
}

// collectIDs scans every area, including migrated batches, and returns
// the set of ids currently on disk.
func (s *Store) collectIDs() (map[string]struct{}, error) {
	ids := make(map[string]struct{})
	for _, area := range []Area{Active, Trash, Archive} {
		entries, err := s.List(area)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			ids[e.ID()] = struct{}{}
		}
	}
	return ids, nil
}
