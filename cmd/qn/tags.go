// ABOUTME: Tags command summarizing tag usage across active notes.
// ABOUTME: Pinned tags always show, at zero count when currently unused.

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/qn/internal/layout"
	"github.com/harper/qn/internal/note"
	"github.com/harper/qn/internal/store"
	"github.com/harper/qn/internal/tags"
	"github.com/harper/qn/internal/ui"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Show tag usage statistics",
	Long: `Summarize tag usage across active notes: how many notes carry each
tag, when the tag was first used, and when it was last touched. Pinned
tags (QUICK_NOTES_PINNED_TAGS) always appear, even at zero count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		relative, _ := cmd.Flags().GetBool("relative")

		notes, err := noteStore.Notes(store.Active)
		if err != nil {
			return fmt.Errorf("failed to list notes: %w", err)
		}
		occs := make([]tags.Occurrence, 0, len(notes))
		for _, n := range notes {
			occ := tags.Occurrence{Tags: n.Tags}
			if t, ok := note.ParseStamp(n.Created); ok {
				occ.Created = t
			}
			if t, ok := note.ParseStamp(n.Updated); ok {
				occ.Updated = t
			}
			occs = append(occs, occ)
		}
		stats := tags.Aggregate(occs, cfg.Pinned())

		if search != "" {
			query := strings.ToLower(search)
			kept := stats[:0]
			for _, st := range stats {
				if strings.Contains(strings.ToLower(st.Tag), query) {
					kept = append(kept, st)
				}
			}
			stats = kept
		}
		if len(stats) == 0 {
			fmt.Println("No tags found.")
			return nil
		}

		now := time.Now()
		headers := []string{
			ui.FormatHeaderLabel("Tag"),
			ui.FormatHeaderLabel("Count"),
			ui.FormatHeaderLabel(ui.TimeLabel("First", relative, now)),
			ui.FormatHeaderLabel(ui.TimeLabel("Last", relative, now)),
		}
		rows := make([][]string, 0, len(stats))
		for _, st := range stats {
			rows = append(rows, tagRow(st, relative, now))
		}
		table := layout.RenderTable(headers, rows)
		return ui.Paginate(strings.Split(table, "\n"))
	},
}

// tagRow renders one stat line. Unused tags are muted across the whole
// row so pinned-but-idle tags recede visually.
func tagRow(st tags.Stat, relative bool, now time.Time) []string {
	first := "n/a"
	if !st.First.IsZero() {
		first = ui.TableTimestamp(note.Stamp(st.First), relative, now)
	}
	last := "n/a"
	if !st.Last.IsZero() {
		last = ui.TableTimestamp(note.Stamp(st.Last), relative, now)
	}
	if st.Count == 0 {
		return []string{
			ui.FormatMuted(st.Tag),
			ui.FormatMuted("0"),
			ui.FormatMuted(first),
			ui.FormatMuted(last),
		}
	}
	row := []string{ui.FormatTag(st.Tag), strconv.Itoa(st.Count)}
	if st.First.IsZero() {
		row = append(row, ui.FormatMuted(first))
	} else {
		row = append(row, ui.FormatTimestamp(first))
	}
	if st.Last.IsZero() {
		row = append(row, ui.FormatMuted(last))
	} else {
		row = append(row, ui.FormatTimestamp(last))
	}
	return row
}

func init() {
	tagsCmd.Flags().StringP("search", "s", "", "only show tags containing this text")
	tagsCmd.Flags().BoolP("relative", "r", false, "show relative times")
	rootCmd.AddCommand(tagsCmd)
}
