// ABOUTME: ANSI-aware text measuring, truncation, and padding.
// ABOUTME: Widths count visible scalars, not bytes or escape codes.

package layout

import "strings"

// DisplayLen is the visible length of a string, skipping ANSI color
// sequences (ESC through the terminating 'm').
func DisplayLen(s string) int {
	length := 0
	inEscape := false
	for _, r := range s {
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if r == '\x1b' {
			inEscape = true
			continue
		}
		length++
	}
	return length
}

// Truncate cuts text to maxWidth scalars, appending an ellipsis when
// anything was dropped. Width 1 leaves room for nothing but the ellipsis.
func Truncate(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxWidth {
		return text
	}
	if maxWidth == 1 {
		return "…"
	}
	return string(runes[:maxWidth-1]) + "…"
}

// Pad right-pads a rendered cell to the target width using its known
// visible length, so color codes never skew alignment.
func Pad(display string, target, plainLen int) string {
	if target <= plainLen {
		return display
	}
	return display + strings.Repeat(" ", target-plainLen)
}
