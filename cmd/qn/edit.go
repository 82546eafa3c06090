// ABOUTME: Edit command opening notes in $EDITOR, with optional fzf picking.
// ABOUTME: Re-stamps and canonicalizes every note the editor touched.

package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/qn/internal/fzf"
	"github.com/harper/qn/internal/store"
	"github.com/harper/qn/internal/tags"
	"github.com/harper/qn/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit [<id>...]",
	Short: "Edit notes in your editor",
	Long: `Open one or more notes in $EDITOR. With no ids, fzf offers an
interactive multi-select over your notes. Edited notes get a fresh
updated stamp and are rewritten in canonical form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tagFilters := tagFilterFlag(cmd)
		ids := args

		if len(ids) == 0 {
			if !fzfEnabled() {
				return errors.New("provide note ids or install fzf for interactive selection")
			}
			entries, err := noteStore.List(store.Active)
			if err != nil {
				return fmt.Errorf("failed to list notes: %w", err)
			}
			paths := make([]string, 0, len(entries))
			for _, e := range entries {
				if len(tagFilters) > 0 {
					n, err := noteStore.Load(store.Active, e.ID())
					if err != nil || !tags.HasAll(n.Tags, tagFilters) {
						continue
					}
				}
				paths = append(paths, e.Path)
			}
			if len(paths) == 0 {
				fmt.Println("No notes to edit.")
				return nil
			}

			selected, err := fzf.WithSimplePreview().Select(paths)
			if err != nil {
				return err
			}
			if len(selected) == 0 {
				fmt.Println("No selection made; nothing opened.")
				return nil
			}
			ids = make([]string, 0, len(selected))
			for _, p := range selected {
				base := filepath.Base(p)
				ids = append(ids, strings.TrimSuffix(base, filepath.Ext(base)))
			}
		}

		var openIDs []string
		var paths []string
		for _, id := range ids {
			path, err := noteStore.Path(store.Active, id)
			if err != nil {
				fmt.Fprintln(os.Stderr, ui.Error(fmt.Sprintf("Note %s not found", id)))
				continue
			}
			if len(tagFilters) > 0 {
				if n, err := noteStore.Load(store.Active, id); err == nil && !tags.HasAll(n.Tags, tagFilters) {
					fmt.Fprintln(os.Stderr, ui.Error(fmt.Sprintf("Note %s does not have required tag(s)", id)))
					continue
				}
			}
			openIDs = append(openIDs, id)
			paths = append(paths, path)
		}
		if len(paths) == 0 {
			return errors.New("no editable notes matched the criteria")
		}

		if err := openEditor(paths); err != nil {
			return err
		}

		for _, id := range openIDs {
			if len(tagFilters) > 0 {
				// The edit may have removed a required tag.
				if n, err := noteStore.Load(store.Active, id); err == nil && !tags.HasAll(n.Tags, tagFilters) {
					fmt.Fprintln(os.Stderr, ui.Error(fmt.Sprintf("Skipped %s (missing tag filter)", id)))
					continue
				}
			}
			n, err := noteStore.Touch(id)
			if err != nil {
				fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
				continue
			}
			fmt.Println(ui.Success(fmt.Sprintf("Updated %s", n.ID)))
		}
		return nil
	},
}

// openEditor launches $EDITOR once with every path as an argument.
func openEditor(paths []string) error {
	editor := exec.Command(cfg.Editor, paths...) //nolint:gosec // Launching $EDITOR is expected CLI behavior
	editor.Stdin = os.Stdin
	editor.Stdout = os.Stdout
	editor.Stderr = os.Stderr
	if err := editor.Run(); err != nil {
		return fmt.Errorf("editor exited with an error: %w", err)
	}
	return nil
}

func init() {
	editCmd.Flags().StringArrayP("tag", "t", nil, "require tag (repeatable)")
	rootCmd.AddCommand(editCmd)
}
