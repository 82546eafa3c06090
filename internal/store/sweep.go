// ABOUTME: Retention sweep purging expired notes from the trash.
// ABOUTME: Runs before trash listings and delete operations.

package store

import (
	"os"
	"time"

	"github.com/harper/qn/internal/note"
)

// Sweep permanently deletes trashed notes older than the retention
// window and reports how many were purged. The effective timestamp is
// the deletion stamp, falling back to updated. Zero retention keeps
// everything; notes whose stamps cannot be parsed are never purged.
func (s *Store) Sweep() (int, error) {
	if s.retentionDays == 0 {
		return 0, nil
	}
	entries, err := s.List(Trash)
	if err != nil {
		return 0, err
	}
	cutoff := s.now().Add(-time.Duration(s.retentionDays) * 24 * time.Hour)

	purged := 0
	for _, e := range entries {
		n, err := loadPath(e.Path)
		if err != nil {
			continue
		}
		stamp := n.DeletedAt
		if stamp == "" {
			stamp = n.Updated
		}
		ts, ok := note.ParseStamp(stamp)
		if !ok || !ts.Before(cutoff) {
			continue
		}
		if err := os.Remove(e.Path); err != nil {
			s.log.Debug().Str("id", n.ID).Err(err).Msg("could not purge expired note")
			continue
		}
		purged++
		s.log.Debug().Str("id", n.ID).Str("deleted", stamp).Msg("purged expired trash note")
	}
	return purged, nil
}
