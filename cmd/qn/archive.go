// ABOUTME: Archive command moving notes into the archive area.
// ABOUTME: Archived notes are kept indefinitely and never swept.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/qn/internal/fzf"
	"github.com/harper/qn/internal/store"
	"github.com/harper/qn/internal/ui"
)

var archiveCmd = &cobra.Command{
	Use:   "archive [<id>...]",
	Short: "Move notes to the archive",
	Long: `Move notes into the archive area. Unlike the trash, archived notes
are never purged. With no ids, fzf offers an interactive multi-select.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		useFzf, _ := cmd.Flags().GetBool("fzf")
		ids := args

		if len(ids) == 0 {
			if !useFzf && !fzfEnabled() {
				return errors.New("provide ids or install fzf / use --fzf for interactive archive")
			}
			if !fzfEnabled() {
				return errors.New("fzf not available; cannot launch interactive archive")
			}
			entries, err := noteStore.List(store.Active)
			if err != nil {
				return fmt.Errorf("failed to list notes: %w", err)
			}
			if len(entries) == 0 {
				fmt.Println("No notes to archive.")
				return nil
			}
			paths := make([]string, 0, len(entries))
			for _, e := range entries {
				paths = append(paths, e.Path)
			}

			selected, err := fzf.WithSimplePreview().Select(paths)
			if err != nil {
				return err
			}
			if len(selected) == 0 {
				fmt.Println("No selection made; nothing archived.")
				return nil
			}
			ids = make([]string, 0, len(selected))
			for _, p := range selected {
				base := filepath.Base(p)
				ids = append(ids, strings.TrimSuffix(base, filepath.Ext(base)))
			}
		}

		archived := 0
		for _, id := range ids {
			if _, err := noteStore.Path(store.Active, id); err != nil {
				fmt.Printf("Note %s not found\n", id)
				continue
			}
			if _, err := noteStore.Move(store.Active, store.Archive, id); err != nil {
				fmt.Fprintln(os.Stderr, ui.Error(fmt.Sprintf("failed to archive %s: %v", id, err)))
				continue
			}
			fmt.Println(ui.Success(fmt.Sprintf("Archived %s", id)))
			archived++
		}
		if archived == 0 {
			fmt.Println("No notes archived.")
		}
		return nil
	},
}

func init() {
	archiveCmd.Flags().Bool("fzf", false, "force interactive selection with fzf")
	rootCmd.AddCommand(archiveCmd)
}
