// ABOUTME: View command printing full notes with a styled header.
// ABOUTME: Renders markdown bodies unless plain output is requested.

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/qn/internal/note"
	"github.com/harper/qn/internal/store"
	"github.com/harper/qn/internal/tags"
	"github.com/harper/qn/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:     "view <id>...",
	Aliases: []string{"render"},
	Short:   "Print notes with rendered markdown",
	Long: `Print one or more notes with a styled header. Markdown rendering is on
by default; --plain emits the raw body with no color. The "render" alias
is what fzf preview panes invoke.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		render, _ := cmd.Flags().GetBool("render")
		plain, _ := cmd.Flags().GetBool("plain")
		tagFilters := tagFilterFlag(cmd)

		if plain {
			color.NoColor = true
		}

		var errs []error
		printed := 0
		for _, id := range args {
			n, err := noteStore.Load(store.Active, id)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if len(tagFilters) > 0 && !tags.HasAll(n.Tags, tagFilters) {
				errs = append(errs, fmt.Errorf("note %s does not have required tag(s)", id))
				continue
			}
			if printed > 0 {
				fmt.Println()
			}
			printNote(n, render && !plain)
			printed++
		}

		if len(errs) > 0 {
			for _, e := range errs[1:] {
				fmt.Fprintln(os.Stderr, ui.Error(e.Error()))
			}
			return errs[0]
		}
		return nil
	},
}

func printNote(n *note.Note, render bool) {
	header := fmt.Sprintf("===== %s (%s) =====\n%s %s\n%s %s\n\n",
		ui.FormatTitle(n.Title), ui.FormatID(n.ID),
		ui.FormatHeaderLabel("Created:"), ui.FormatTimestamp(n.Created),
		ui.FormatHeaderLabel("Updated:"), ui.FormatTimestamp(n.Updated))

	body := n.Body
	if render && !color.NoColor {
		if rendered, err := ui.RenderMarkdown(n.Body); err == nil {
			body = rendered
		}
	}
	fmt.Print(header + body)
}

func init() {
	viewCmd.Flags().BoolP("render", "r", true, "render the body as markdown")
	viewCmd.Flags().BoolP("plain", "p", false, "raw body, no color or rendering")
	viewCmd.Flags().StringArrayP("tag", "t", nil, "require tag (repeatable)")
	rootCmd.AddCommand(viewCmd)
}
