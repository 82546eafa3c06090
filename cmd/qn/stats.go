// ABOUTME: Stats command reporting note counts per storage area.
// ABOUTME: Also materializes the trash and archive directories.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harper/qn/internal/layout"
	"github.com/harper/qn/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show note counts per area",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := noteStore.EnsureAreas(); err != nil {
			return fmt.Errorf("failed to prepare note areas: %w", err)
		}
		areas := []struct {
			label string
			area  store.Area
		}{
			{"Active", store.Active},
			{"Trash", store.Trash},
			{"Archive", store.Archive},
		}
		rows := make([][]string, 0, len(areas))
		for _, a := range areas {
			count, err := noteStore.Count(a.area)
			if err != nil {
				return fmt.Errorf("failed to count %s notes: %w", a.label, err)
			}
			rows = append(rows, []string{a.label, strconv.Itoa(count)})
		}
		fmt.Println(layout.RenderTable([]string{"Area", "Count"}, rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
