// ABOUTME: Timestamp presentation for list tables and headers.
// ABOUTME: Switches between relative buckets and short absolute stamps.

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/harper/qn/internal/note"
)

// Relative renders how long ago t was. Buckets use 30-day months and
// 365-day years; future times clamp to zero.
func Relative(t, now time.Time) string {
	d := now.Sub(t)
	totalHours := max(int64(d/time.Hour), 0)
	totalDays := max(int64(d/(24*time.Hour)), 0)

	switch {
	case totalDays < 30:
		if totalDays == 0 {
			return fmt.Sprintf("%dh ago", totalHours)
		}
		hours := max(totalHours-totalDays*24, 0)
		if hours > 0 {
			return fmt.Sprintf("%dd %dh ago", totalDays, hours)
		}
		return fmt.Sprintf("%dd ago", totalDays)
	case totalDays < 365:
		months := totalDays / 30
		days := totalDays % 30
		if days > 0 {
			return fmt.Sprintf("%dmo %dd ago", months, days)
		}
		return fmt.Sprintf("%dmo ago", months)
	default:
		years := totalDays / 365
		months := (totalDays % 365) / 30
		if months > 0 {
			return fmt.Sprintf("%dy %dmo ago", years, months)
		}
		return fmt.Sprintf("%dy ago", years)
	}
}

// TableTimestamp formats a stored stamp for a list cell. Unparseable stamps
// degrade to their first two whitespace-separated fields.
func TableTimestamp(ts string, relative bool, now time.Time) string {
	if t, ok := note.ParseStamp(ts); ok {
		if relative {
			return Relative(t, now)
		}
		return t.Format(note.ShortTimeLayout)
	}
	fields := strings.Fields(ts)
	if len(fields) > 2 {
		fields = fields[:2]
	}
	return strings.Join(fields, " ")
}

// TableTimestampStrict is TableTimestamp except unparseable stamps render
// as an empty cell.
func TableTimestampStrict(ts string, relative bool, now time.Time) string {
	t, ok := note.ParseStamp(ts)
	if !ok {
		return ""
	}
	if relative {
		return Relative(t, now)
	}
	return t.Format(note.ShortTimeLayout)
}

// TimeLabel decorates a column label with the local UTC offset when
// absolute stamps are shown.
func TimeLabel(base string, relative bool, now time.Time) string {
	if relative {
		return base
	}
	return fmt.Sprintf("%s (%s)", base, now.Format("-07:00"))
}
