// ABOUTME: Add command for appending a line of text to an existing note.
// ABOUTME: Refreshes the updated stamp and keeps the body newline-terminated.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/qn/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <id> <text...>",
	Short: "Append text to a note",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		text := strings.Join(args[1:], " ")
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("provide text to append")
		}

		if _, err := noteStore.Append(id, text); err != nil {
			return fmt.Errorf("failed to append to %s: %w", id, err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Appended to %s", id)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
