// ABOUTME: Column width planning for the adaptive note listing table.
// ABOUTME: Unifies timestamp widths and shrinks columns to fit the terminal.

package layout

import (
	"strings"
	"unicode/utf8"
)

// ListWidths is the width plan for one listing table. Optional columns
// carry zero width when excluded.
type ListWidths struct {
	ID      int
	Created int
	Updated int
	Moved   int
	Preview int
	Tags    int

	IncludeCreated bool
	IncludeMoved   bool
	IncludeTags    bool
}

// Total is the full row width including " | " separators.
func (w ListWidths) Total() int {
	separators := 2
	created, moved, tagsW := 0, 0, 0
	if w.IncludeCreated {
		separators++
		created = w.Created
	}
	if w.IncludeMoved {
		separators++
		moved = w.Moved
	}
	if w.IncludeTags {
		separators++
		tagsW = w.Tags
	}
	return w.ID + created + w.Updated + moved + w.Preview + tagsW + separators*3
}

// ListColumns carries the plain cell text the table will show, used to
// size each column. Created, Moved, and Tags are nil when the column is
// absent; Moved cells may be empty strings for notes without a stamp.
type ListColumns struct {
	IDs      []string
	Created  []string
	Updated  []string
	Moved    []string
	Previews []string
	Tags     []string

	UpdatedLabel string
	CreatedLabel string
	MovedLabel   string
}

// ComputeListWidths sizes every column to its widest cell or label, with
// all timestamp columns sharing one width, then shrinks the plan to the
// terminal. Shrinking frees space from the preview first, then moved,
// created, tags, updated, and finally the id column, each down to a
// label-derived minimum.
func ComputeListWidths(cols ListColumns, termWidth int) ListWidths {
	w := ListWidths{
		IncludeCreated: cols.Created != nil,
		IncludeMoved:   cols.Moved != nil,
		IncludeTags:    cols.Tags != nil,
	}

	updatedLabelLen := utf8.RuneCountInString(cols.UpdatedLabel)
	createdLabelLen := utf8.RuneCountInString(cols.CreatedLabel)
	movedLabelLen := utf8.RuneCountInString(cols.MovedLabel)

	timestamp := max(maxCellWidth(cols.Updated), updatedLabelLen)
	if w.IncludeCreated {
		timestamp = max(timestamp, maxCellWidth(cols.Created), createdLabelLen)
	}
	if w.IncludeMoved {
		timestamp = max(timestamp, maxCellWidth(cols.Moved), movedLabelLen)
	}

	w.ID = max(maxCellWidth(cols.IDs), len("ID"))
	w.Updated = timestamp
	if w.IncludeCreated {
		w.Created = timestamp
	}
	if w.IncludeMoved {
		w.Moved = timestamp
	}
	w.Preview = max(maxCellWidth(cols.Previews), len("Preview"))
	if w.IncludeTags {
		w.Tags = max(maxCellWidth(cols.Tags), len("Tags"))
	}

	return shrink(w, termWidth, updatedLabelLen, createdLabelLen, movedLabelLen)
}

func maxCellWidth(cells []string) int {
	widest := 0
	for _, cell := range cells {
		if n := utf8.RuneCountInString(cell); n > widest {
			widest = n
		}
	}
	return widest
}

func shrink(w ListWidths, termWidth, minUpdated, minCreated, minMoved int) ListWidths {
	const minPreview, minTags = 4, 4
	minID := len("ID")

	excess := w.Total() - termWidth
	reduce := func(value *int, min int) {
		if excess <= 0 {
			return
		}
		slack := *value - min
		if slack < 0 {
			slack = 0
		}
		if slack > excess {
			slack = excess
		}
		*value -= slack
		excess -= slack
	}

	reduce(&w.Preview, minPreview)
	if w.IncludeMoved {
		reduce(&w.Moved, minMoved)
	}
	if w.IncludeCreated {
		reduce(&w.Created, minCreated)
	}
	if w.IncludeTags {
		reduce(&w.Tags, minTags)
	}
	reduce(&w.Updated, minUpdated)
	reduce(&w.ID, minID)
	return w
}

// Cell pairs a rendered (possibly colored) cell with its visible width.
type Cell struct {
	Display string
	Width   int
}

// PlainCell wraps un-colored text as a cell.
func PlainCell(s string) Cell {
	return Cell{Display: s, Width: DisplayLen(s)}
}

// AssembleListRow joins cells with " | " separators following the width
// plan. Cells for excluded columns are ignored.
func AssembleListRow(w ListWidths, id, created, updated, moved, preview, tags Cell) string {
	var b strings.Builder
	b.WriteString(Pad(id.Display, w.ID, id.Width))
	b.WriteString(" | ")
	if w.IncludeCreated {
		b.WriteString(Pad(created.Display, w.Created, created.Width))
		b.WriteString(" | ")
	}
	b.WriteString(Pad(updated.Display, w.Updated, updated.Width))
	b.WriteString(" | ")
	if w.IncludeMoved {
		b.WriteString(Pad(moved.Display, w.Moved, moved.Width))
		b.WriteString(" | ")
	}
	b.WriteString(Pad(preview.Display, w.Preview, preview.Width))
	if w.IncludeTags {
		b.WriteString(" | ")
		b.WriteString(Pad(tags.Display, w.Tags, tags.Width))
	}
	return b.String()
}
