// ABOUTME: Tag usage aggregation across a set of notes.
// ABOUTME: Tracks counts plus first-created and last-updated times.

package tags

import (
	"sort"
	"time"
)

// Occurrence is one note's contribution to the tag stats: its tags and
// parsed stamps. Zero times mean the stamp was missing or unreadable.
type Occurrence struct {
	Tags    []string
	Created time.Time
	Updated time.Time
}

// Stat is the aggregate for one tag.
type Stat struct {
	Tag   string
	Count int
	First time.Time
	Last  time.Time
}

// Aggregate folds occurrences into per-tag stats. Pinned tags always
// appear, at zero count if unused. Results are ordered by most recent
// use, then count, then tag name; tags never used sort last.
func Aggregate(occurrences []Occurrence, pinned []string) []Stat {
	byTag := make(map[string]*Stat)
	for _, occ := range occurrences {
		for _, tag := range occ.Tags {
			st := byTag[tag]
			if st == nil {
				st = &Stat{Tag: tag}
				byTag[tag] = st
			}
			st.Count++
			if !occ.Created.IsZero() && (st.First.IsZero() || occ.Created.Before(st.First)) {
				st.First = occ.Created
			}
			if !occ.Updated.IsZero() && occ.Updated.After(st.Last) {
				st.Last = occ.Updated
			}
		}
	}
	for _, tag := range pinned {
		if _, ok := byTag[tag]; !ok {
			byTag[tag] = &Stat{Tag: tag}
		}
	}

	out := make([]Stat, 0, len(byTag))
	for _, st := range byTag {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case !a.Last.IsZero() && !b.Last.IsZero():
			if !a.Last.Equal(b.Last) {
				return a.Last.After(b.Last)
			}
		case !a.Last.IsZero():
			return true
		case !b.Last.IsZero():
			return false
		}
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Tag < b.Tag
	})
	return out
}
