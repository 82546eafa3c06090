// ABOUTME: New command for creating a note with a title and optional body.
// ABOUTME: Accepts repeated tag flags that are normalized onto the note.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/qn/internal/ui"
)

var newCmd = &cobra.Command{
	Use:   "new <title> [body...]",
	Short: "Create a new note",
	Long:  `Create a note with the given title. Remaining arguments become the body.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tagList, _ := cmd.Flags().GetStringArray("tag")
		title := args[0]
		body := strings.Join(args[1:], " ")

		n, err := noteStore.Create(title, body, tagList)
		if err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Created note %s (%s)", n.ID, n.Title)))
		return nil
	},
}

func init() {
	newCmd.Flags().StringArrayP("tag", "t", nil, "tag to apply (repeatable)")
	rootCmd.AddCommand(newCmd)
}
