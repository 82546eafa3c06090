// ABOUTME: Path command printing the storage root directory.
// ABOUTME: Useful for cd-ing into the notes directory or scripting backups.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the notes directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(noteStore.Root())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
