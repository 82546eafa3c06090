// ABOUTME: List commands for the active, trash, and archive areas.
// ABOUTME: Renders the adaptive table with search, tag filters, and sorting.

package main

import (
	"cmp"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/qn/internal/layout"
	"github.com/harper/qn/internal/note"
	"github.com/harper/qn/internal/store"
	"github.com/harper/qn/internal/tags"
	"github.com/harper/qn/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long:  `List active notes in an adaptive table, optionally filtered by search text or tags.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, store.Active)
	},
}

var listDeletedCmd = &cobra.Command{
	Use:   "list-deleted",
	Short: "List notes in the trash",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, store.Trash)
	},
}

var listArchivedCmd = &cobra.Command{
	Use:   "list-archived",
	Short: "List archived notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, store.Archive)
	},
}

func runList(cmd *cobra.Command, area store.Area) error {
	sortField, _ := cmd.Flags().GetString("sort")
	ascending, _ := cmd.Flags().GetBool("asc")
	if desc, _ := cmd.Flags().GetBool("desc"); desc {
		ascending = false
	}
	search, _ := cmd.Flags().GetString("search")
	relative, _ := cmd.Flags().GetBool("relative")
	tagFilters := tagFilterFlag(cmd)

	if area == store.Trash {
		if _, err := noteStore.Sweep(); err != nil {
			logger.Debug().Err(err).Msg("trash sweep failed")
		}
	}

	notes, err := noteStore.Notes(area)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	if search != "" {
		q := strings.ToLower(search)
		notes = filterNotes(notes, func(n *note.Note) bool {
			return strings.Contains(strings.ToLower(n.Title), q) ||
				strings.Contains(strings.ToLower(n.Body), q)
		})
	}
	if len(tagFilters) > 0 {
		notes = filterNotes(notes, func(n *note.Note) bool {
			return tags.HasAll(n.Tags, tagFilters)
		})
	}

	compare := func(a, b *note.Note) int {
		switch sortField {
		case "created":
			return note.CompareStamps(a.Created, b.Created)
		case "size":
			return cmp.Compare(a.Size, b.Size)
		default:
			return note.CompareStamps(a.Updated, b.Updated)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		c := compare(notes[i], notes[j])
		if ascending {
			return c < 0
		}
		return c > 0
	})

	if len(notes) == 0 {
		switch area {
		case store.Active:
			fmt.Println("No notes yet. Try `qn new ...`.")
		case store.Trash:
			fmt.Println("No deleted notes.")
		case store.Archive:
			fmt.Println("No archived notes.")
		}
		return nil
	}

	now := time.Now()
	lines := buildListLines(notes, area, search, relative, now)
	return ui.Paginate(lines)
}

// buildListLines renders the header, rule, and one row per note.
func buildListLines(notes []*note.Note, area store.Area, search string, relative bool, now time.Time) []string {
	previews := make([]string, len(notes))
	for i, n := range notes {
		previews[i] = n.PreviewForQuery(search)
	}

	cols := layout.ListColumns{
		IDs:          make([]string, len(notes)),
		Updated:      make([]string, len(notes)),
		Previews:     previews,
		UpdatedLabel: ui.TimeLabel("Updated", relative, now),
	}
	for i, n := range notes {
		cols.IDs[i] = n.ID
		if area == store.Active {
			cols.Updated[i] = ui.TableTimestamp(n.Updated, relative, now)
		} else {
			cols.Updated[i] = ui.TableTimestampStrict(n.Updated, relative, now)
		}
	}

	includeMoved := area == store.Trash || area == store.Archive
	if includeMoved {
		cols.Created = make([]string, len(notes))
		cols.Moved = make([]string, len(notes))
		cols.CreatedLabel = ui.TimeLabel("Created", relative, now)
		movedBase := "Deleted"
		if area == store.Archive {
			movedBase = "Archived"
		}
		cols.MovedLabel = ui.TimeLabel(movedBase, relative, now)
		for i, n := range notes {
			cols.Created[i] = ui.TableTimestamp(n.Created, relative, now)
			cols.Moved[i] = ui.TableTimestamp(movedStamp(area, n), relative, now)
		}
	}

	if area == store.Active && anyTagged(notes) {
		cols.Tags = make([]string, len(notes))
		for i, n := range notes {
			cols.Tags[i] = strings.Join(n.Tags, " ")
		}
	}

	widths := layout.ComputeListWidths(cols, ui.TerminalWidth())

	headerTags := layout.Cell{}
	if widths.IncludeTags {
		display, used := ui.FormatTagsClamped([]string{"Tags"}, widths.Tags)
		headerTags = layout.Cell{Display: display, Width: used}
	}
	header := layout.AssembleListRow(widths,
		headerCell("ID", widths.ID),
		headerCell(cols.CreatedLabel, widths.Created),
		headerCell(cols.UpdatedLabel, widths.Updated),
		headerCell(cols.MovedLabel, widths.Moved),
		headerCell("Preview", widths.Preview),
		headerTags,
	)

	lines := make([]string, 0, len(notes)+2)
	lines = append(lines, header)
	lines = append(lines, strings.Repeat("=", layout.DisplayLen(header)))

	for i, n := range notes {
		idPlain := layout.Truncate(n.ID, widths.ID)
		idCell := layout.Cell{Display: ui.FormatID(idPlain), Width: layout.DisplayLen(idPlain)}

		createdCell := layout.Cell{}
		movedCell := layout.Cell{}
		if includeMoved {
			createdCell = stampCell(cols.Created[i], widths.Created)
			movedCell = stampCell(cols.Moved[i], widths.Moved)
		}
		updatedCell := stampCell(cols.Updated[i], widths.Updated)

		previewPlain := layout.Truncate(previews[i], widths.Preview)
		previewCell := layout.Cell{
			Display: ui.HighlightMatches(previewPlain, search),
			Width:   layout.DisplayLen(previewPlain),
		}

		tagsCell := layout.Cell{}
		if widths.IncludeTags {
			display, used := ui.FormatTagsClamped(n.Tags, widths.Tags)
			tagsCell = layout.Cell{Display: display, Width: used}
		}

		lines = append(lines, layout.AssembleListRow(widths,
			idCell, createdCell, updatedCell, movedCell, previewCell, tagsCell))
	}
	return lines
}

func headerCell(label string, width int) layout.Cell {
	truncated := layout.Truncate(label, width)
	return layout.Cell{
		Display: ui.FormatHeaderLabel(truncated),
		Width:   layout.DisplayLen(truncated),
	}
}

func stampCell(formatted string, width int) layout.Cell {
	plain := layout.Truncate(formatted, width)
	return layout.Cell{
		Display: ui.FormatTimestamp(plain),
		Width:   layout.DisplayLen(plain),
	}
}

// movedStamp picks the lifecycle stamp shown in the Deleted/Archived
// column, falling back to the updated stamp for imported files.
func movedStamp(area store.Area, n *note.Note) string {
	switch area {
	case store.Trash:
		if n.DeletedAt != "" {
			return n.DeletedAt
		}
	case store.Archive:
		if n.ArchivedAt != "" {
			return n.ArchivedAt
		}
	}
	return n.Updated
}

func anyTagged(notes []*note.Note) bool {
	for _, n := range notes {
		if len(n.Tags) > 0 {
			return true
		}
	}
	return false
}

func filterNotes(notes []*note.Note, keep func(*note.Note) bool) []*note.Note {
	out := notes[:0]
	for _, n := range notes {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}

// tagFilterFlag collects normalized -t/--tag values, dropping empties.
func tagFilterFlag(cmd *cobra.Command) []string {
	raw, _ := cmd.Flags().GetStringArray("tag")
	var filters []string
	for _, t := range raw {
		if tag := tags.Normalize(t); tag != "" {
			filters = append(filters, tag)
		}
	}
	return filters
}

func addListFlags(c *cobra.Command) {
	c.Flags().String("sort", "updated", "sort field: created|updated|size")
	c.Flags().Bool("asc", false, "sort ascending")
	c.Flags().Bool("desc", false, "sort descending (default)")
	c.Flags().StringP("search", "s", "", "filter notes containing text in title or body")
	c.Flags().BoolP("relative", "r", false, "show relative ages instead of timestamps")
	c.Flags().StringArrayP("tag", "t", nil, "require tag (repeatable)")
}

func init() {
	for _, c := range []*cobra.Command{listCmd, listDeletedCmd, listArchivedCmd} {
		addListFlags(c)
		rootCmd.AddCommand(c)
	}
}
