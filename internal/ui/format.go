// ABOUTME: Terminal UI formatting for qn output.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"github.com/harper/qn/internal/layout"
	"github.com/harper/qn/internal/tags"
)

// Catppuccin-flavored palette shared by every command.
var (
	muted     = color.RGB(108, 112, 134).SprintFunc()
	header    = color.RGB(148, 226, 213).Add(color.Bold).SprintFunc()
	stamp     = color.RGB(137, 180, 250).SprintFunc()
	titleSt   = color.RGB(249, 226, 175).Add(color.Bold).SprintFunc()
	highlight = color.RGB(243, 139, 168).SprintFunc()
)

func FormatID(id string) string {
	return muted(id)
}

func FormatMuted(text string) string {
	return muted(text)
}

func FormatHeaderLabel(text string) string {
	return header(text)
}

func FormatTimestamp(ts string) string {
	return stamp(ts)
}

func FormatTitle(title string) string {
	return titleSt(title)
}

func FormatTag(tag string) string {
	r, g, b := tags.Color(tag)
	return color.RGB(int(r), int(g), int(b)).Add(color.Bold).Sprint(tag)
}

// HighlightMatches marks every case-insensitive occurrence of query in text.
// Matched runs keep their original casing.
func HighlightMatches(text, query string) string {
	if query == "" {
		return text
	}
	q := strings.ToLower(query)
	var out strings.Builder
	remaining := text
	for {
		pos := strings.Index(strings.ToLower(remaining), q)
		if pos < 0 {
			break
		}
		end := pos + len(query)
		if end > len(remaining) {
			end = len(remaining)
		}
		out.WriteString(remaining[:pos])
		out.WriteString(highlight(remaining[pos:end]))
		remaining = remaining[end:]
	}
	out.WriteString(remaining)
	return out.String()
}

// FormatTagsClamped renders a space-separated tag list colored per tag,
// clamped to maxWidth display columns. Returns the rendered string and the
// number of columns it occupies.
func FormatTagsClamped(tagList []string, maxWidth int) (string, int) {
	if len(tagList) == 0 || maxWidth <= 0 {
		return "", 0
	}
	var out strings.Builder
	used := 0
	for i, tag := range tagList {
		tagLen := utf8.RuneCountInString(tag)
		sepLen := 0
		if i > 0 {
			sepLen = 1
		}
		if used+sepLen+tagLen <= maxWidth {
			if sepLen == 1 {
				out.WriteString(" ")
			}
			out.WriteString(FormatTag(tag))
			used += sepLen + tagLen
			continue
		}
		remaining := maxWidth - used - sepLen
		if remaining > 0 {
			if sepLen == 1 {
				out.WriteString(" ")
				used++
			}
			clipped := layout.Truncate(tag, remaining)
			out.WriteString(FormatTag(clipped))
			used += utf8.RuneCountInString(clipped)
		}
		break
	}
	return out.String(), used
}

func RenderMarkdown(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		// Fallback to raw content if rendering fails
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
