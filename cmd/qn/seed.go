// ABOUTME: Seed command generating filler notes for testing and demos.
// ABOUTME: Bodies are lorem text or a markdown feature sampler.

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/qn/internal/ident"
)

var seedCmd = &cobra.Command{
	Use:   "seed <count>",
	Short: "Generate filler notes",
	Long: `Create the given number of notes with generated bodies. Useful for
trying out list sorting, pagination, and fzf pickers on a realistic
volume of notes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := strconv.Atoi(args[0])
		if err != nil || count < 0 {
			return fmt.Errorf("count must be a number")
		}
		chars, _ := cmd.Flags().GetInt("chars")
		if chars < 0 {
			return fmt.Errorf("chars must be a number")
		}
		markdown, _ := cmd.Flags().GetBool("markdown")
		tagList, _ := cmd.Flags().GetStringArray("tag")

		for i := 0; i < count; i++ {
			title := "Seed note " + ident.ShortStamp(time.Now().UnixMicro())
			body := seedBody(chars, i)
			if markdown {
				body = seedMarkdownBody(i)
			}
			n, err := noteStore.Create(title, body, tagList)
			if err != nil {
				return fmt.Errorf("failed to create seed note: %w", err)
			}
			if (i+1)%50 == 0 || i+1 == count {
				fmt.Printf("Generated %d/%d (last id %s)\n", i+1, count, n.ID)
			}
		}
		return nil
	},
}

// seedBody repeats lorem text until length bytes, tagging each chunk so
// seeded notes stay distinguishable in searches.
func seedBody(length, seed int) string {
	const base = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Proin " +
		"aliquet, mauris nec facilisis rhoncus, nisl justo viverra dui, vitae placerat " +
		"metus erat sit amet nunc. "
	var b strings.Builder
	for n := 0; b.Len() < length; n++ {
		b.WriteString(base)
		fmt.Fprintf(&b, "Seed chunk %d idx %d. ", seed, n)
	}
	return b.String()[:length] + "\n"
}

// seedMarkdownBody exercises the renderer: headings, lists, emphasis,
// code, a blockquote, a rule, a link, and a table.
func seedMarkdownBody(seed int) string {
	return fmt.Sprintf("# Heading %[1]d\n\n"+
		"## Subheading\n\n"+
		"- bullet one\n- bullet two\n- bullet three\n\n"+
		"1. ordered one\n2. ordered two\n\n"+
		"**bold text** and _italic text_ with `inline code`.\n\n"+
		"```go\nfunc example%[1]d() { fmt.Println(\"hello\") }\n```\n\n"+
		"> Blockquote example %[1]d\n\n"+
		"---\n\n"+
		"Link: [example](https://example.com)\n\n"+
		"| Feature | Value |\n"+
		"|---------|-------|\n"+
		"| Seed    | %[1]d |\n"+
		"| Type    | Markdown |\n", seed)
}

func init() {
	seedCmd.Flags().Int("chars", 400, "approximate body length in bytes")
	seedCmd.Flags().StringArrayP("tag", "t", nil, "tag for every generated note (repeatable)")
	seedCmd.Flags().Bool("markdown", false, "generate markdown sampler bodies")
	rootCmd.AddCommand(seedCmd)
}
