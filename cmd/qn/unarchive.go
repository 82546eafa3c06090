// ABOUTME: Unarchive command restoring archived notes to the active area.
// ABOUTME: Mirrors undelete but sources the archive area instead of the trash.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/qn/internal/store"
	"github.com/harper/qn/internal/ui"
)

var unarchiveCmd = &cobra.Command{
	Use:   "unarchive <id>...",
	Short: "Restore notes from the archive",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		restored := 0
		for _, id := range args {
			newID, err := noteStore.Move(store.Archive, store.Active, id)
			if err != nil {
				fmt.Fprintln(os.Stderr, ui.Error(fmt.Sprintf("failed to unarchive %s: %v", id, err)))
				continue
			}
			fmt.Println(ui.Success(fmt.Sprintf("Unarchived %s", newID)))
			restored++
		}
		if restored == 0 {
			fmt.Println("No notes unarchived.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unarchiveCmd)
}
