// ABOUTME: Undelete command restoring trashed notes back to the active area.
// ABOUTME: Restored notes lose their lifecycle stamps and may be re-keyed.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/qn/internal/store"
	"github.com/harper/qn/internal/ui"
)

var undeleteCmd = &cobra.Command{
	Use:   "undelete <id>...",
	Short: "Restore notes from the trash",
	Long: `Restore trashed notes to the active area. If a restored note's id is
already taken, the note gets a fresh id.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := noteStore.Sweep(); err != nil {
			return fmt.Errorf("failed to sweep trash: %w", err)
		}
		restored := 0
		for _, id := range args {
			newID, err := noteStore.Move(store.Trash, store.Active, id)
			if err != nil {
				fmt.Fprintln(os.Stderr, ui.Error(fmt.Sprintf("failed to restore %s: %v", id, err)))
				continue
			}
			fmt.Println(ui.Success(fmt.Sprintf("Restored %s", newID)))
			restored++
		}
		if restored == 0 {
			fmt.Println("No notes restored.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(undeleteCmd)
}
