// ABOUTME: Delete commands moving notes into the trash area.
// ABOUTME: Supports explicit ids, interactive fzf selection, and delete-all.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/qn/internal/fzf"
	"github.com/harper/qn/internal/store"
	"github.com/harper/qn/internal/tags"
	"github.com/harper/qn/internal/ui"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [<id>...]",
	Short: "Move notes to the trash",
	Long: `Move notes into the trash area. Trashed notes keep their content and
are purged once they exceed the retention window. With no ids, fzf
offers an interactive multi-select.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		useFzf, _ := cmd.Flags().GetBool("fzf")
		tagFilters := tagFilterFlag(cmd)
		ids := args

		if _, err := noteStore.Sweep(); err != nil {
			return fmt.Errorf("failed to sweep trash: %w", err)
		}

		if len(ids) == 0 {
			if !useFzf && !fzfEnabled() {
				return errors.New("provide ids or install fzf / use --fzf for interactive delete")
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
				fmt.Println("No notes to delete.")
				return nil
			}
			if !fzfEnabled() {
				return errors.New("fzf not available; cannot launch interactive delete")
			}

			selected, err := fzf.WithNotePreview().SelectIDs(paths)
			if err != nil {
				return err
			}
			if len(selected) == 0 {
				fmt.Println("No selection made; nothing deleted.")
				return nil
			}
			ids = selected
		}

		moved := 0
		for _, id := range ids {
			if _, err := noteStore.Path(store.Active, id); err != nil {
				fmt.Printf("Note %s not found\n", id)
				continue
			}
			if len(tagFilters) > 0 {
				if n, err := noteStore.Load(store.Active, id); err == nil && !tags.HasAll(n.Tags, tagFilters) {
					fmt.Printf("Skipped %s (missing tag filter)\n", id)
					continue
				}
			}
			if _, err := noteStore.Move(store.Active, store.Trash, id); err != nil {
				fmt.Fprintln(os.Stderr, ui.Error(fmt.Sprintf("failed to delete %s: %v", id, err)))
				continue
			}
			fmt.Println(ui.Success(fmt.Sprintf("Moved %s to trash", id)))
			moved++
		}
		if moved == 0 {
			fmt.Println("No notes deleted.")
		}
		return nil
	},
}

var deleteAllCmd = &cobra.Command{
	Use:   "delete-all",
	Short: "Move every active note to the trash",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := noteStore.Sweep(); err != nil {
			return fmt.Errorf("failed to sweep trash: %w", err)
		}
		entries, err := noteStore.List(store.Active)
		if err != nil {
			return fmt.Errorf("failed to list notes: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No notes to delete.")
			return nil
		}
		for _, e := range entries {
			if _, err := noteStore.Move(store.Active, store.Trash, e.ID()); err != nil {
				return fmt.Errorf("failed to delete %s: %w", e.ID(), err)
			}
		}
		fmt.Println(ui.Success("Moved all notes to trash."))
		return nil
	},
}

func init() {
	deleteCmd.Flags().Bool("fzf", false, "force interactive selection with fzf")
	deleteCmd.Flags().StringArrayP("tag", "t", nil, "require tag (repeatable)")
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(deleteAllCmd)
}
