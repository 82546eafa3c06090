// ABOUTME: Simple text table rendering with auto-computed column widths.
// ABOUTME: Headers are underlined with a rule matching the header width.

package layout

import "strings"

// RenderTable lays out headers and rows, sizing each column to its
// widest cell by visible length. The header row is followed by an "="
// rule of the same width.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = DisplayLen(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if l := DisplayLen(cell); l > widths[i] {
				widths[i] = l
			}
		}
	}

	formatRow := func(row []string) string {
		parts := make([]string, 0, len(row))
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			parts = append(parts, Pad(cell, widths[i], DisplayLen(cell)))
		}
		return strings.Join(parts, " | ")
	}

	var b strings.Builder
	head := formatRow(headers)
	b.WriteString(head)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", DisplayLen(head)))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(formatRow(row))
	}
	return b.String()
}
