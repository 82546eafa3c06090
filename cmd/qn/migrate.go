// ABOUTME: Migration commands: import foreign note directories and rekey ids.
// ABOUTME: Imports land in migrated/ batches; source files are left alone.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/qn/internal/ui"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <path>",
	Short: "Import notes from another directory",
	Long: `Copy every note file from the given directory into a new batch under
migrated/. Plain markdown and YAML-frontmatter files are converted to
the native header format; missing stamps are backfilled and colliding
ids are reassigned. Source files are never modified.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := noteStore.MigrateDir(args[0])
		if err != nil {
			return err
		}
		if res.Batch == "" {
			fmt.Printf("No notes to migrate from %s\n", args[0])
			return nil
		}
		for _, sk := range res.Skipped {
			fmt.Fprintln(os.Stderr, ui.Error(fmt.Sprintf("Skipping %s: %v", sk.Name, sk.Err)))
		}
		for _, ch := range res.Changes {
			if ch.From == ch.To {
				fmt.Printf("Migrated %s into migrated/%s\n", ch.From, res.Batch)
			} else {
				fmt.Printf("Migrated %s -> %s into migrated/%s\n", ch.From, ch.To, res.Batch)
			}
		}
		if len(res.Changes) == 0 {
			fmt.Println("No notes migrated.")
			return nil
		}
		fmt.Println(ui.Success(fmt.Sprintf("Imported %d note(s) into %s", len(res.Changes), res.BatchDir)))
		return nil
	},
}

var migrateIDsCmd = &cobra.Command{
	Use:   "migrate-ids",
	Short: "Regenerate the id of every active note",
	RunE: func(cmd *cobra.Command, args []string) error {
		changes, err := noteStore.MigrateIDs()
		if err != nil {
			return err
		}
		if len(changes) == 0 {
			fmt.Println("No notes to migrate.")
			return nil
		}
		for _, ch := range changes {
			fmt.Printf("Migrated %s -> %s\n", ch.From, ch.To)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateIDsCmd)
}
