// ABOUTME: Timestamp layouts and comparison for note header stamps.
// ABOUTME: Stamps keep their numeric offset so zones survive round trips.

package note

import (
	"strings"
	"time"
)

// TimeLayout is the primary header stamp form, e.g. "26Aug26 14:03 +02:00".
// legacyTimeLayout covers stamps written by early versions.
const (
	TimeLayout       = "02Jan06 15:04 -07:00"
	legacyTimeLayout = "01/02/2006 03:04 PM -07:00"

	// ShortTimeLayout is the table display form, offset dropped.
	ShortTimeLayout = "02Jan06 15:04"
)

// Stamp renders a time in the header format, keeping its offset.
func Stamp(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseStamp parses a header stamp in either supported layout. The
// returned time carries the stamp's own fixed offset.
func ParseStamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(TimeLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(legacyTimeLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// CompareStamps orders two stamps by instant. Parseable stamps sort
// after unparseable ones; two unparseable stamps compare equal.
func CompareStamps(a, b string) int {
	at, aok := ParseStamp(a)
	bt, bok := ParseStamp(b)
	switch {
	case aok && bok:
		return at.Compare(bt)
	case aok:
		return 1
	case bok:
		return -1
	default:
		return 0
	}
}
