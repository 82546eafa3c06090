// ABOUTME: Tag normalization, matching, and deterministic color hashing.
// ABOUTME: Tags are #-prefixed, trimmed tokens with original case kept.

package tags

import (
	"slices"
	"strings"
)

// Normalize trims a raw tag and guarantees the # prefix. Empty input
// stays empty so callers can drop it.
func Normalize(tag string) string {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}
	return "#" + trimmed
}

// NormalizeAll normalizes a tag list, dropping empties and duplicates.
// The result is sorted so encoded notes are stable.
func NormalizeAll(list []string) []string {
	out := make([]string, 0, len(list))
	for _, tag := range list {
		if normalized := Normalize(tag); normalized != "" {
			out = append(out, normalized)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// SplitList parses a comma-separated tag list, e.g. from an environment
// variable, into normalized tags.
func SplitList(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if normalized := Normalize(part); normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}

// HasAll reports whether every wanted tag is present in have.
func HasAll(have, want []string) bool {
	for _, w := range want {
		if !slices.Contains(have, w) {
			return false
		}
	}
	return true
}

// Hash is a djb2-xor over the tag bytes. It only has to be stable so a
// tag keeps its color across runs.
func Hash(tag string) uint64 {
	h := uint64(5381)
	for _, b := range []byte(tag) {
		h = (h<<5 + h) ^ uint64(b)
	}
	return h
}

// palette holds the RGB values tags are colored with. Picked to stay
// readable on dark terminals.
var palette = [...][3]uint8{
	{137, 180, 250}, {166, 227, 161}, {249, 226, 175}, {245, 194, 231},
	{255, 169, 167}, {148, 226, 213}, {198, 160, 246}, {240, 198, 198},
	{244, 219, 214}, {181, 232, 224}, {135, 176, 249}, {183, 189, 248},
	{201, 203, 255}, {255, 214, 165}, {179, 255, 171}, {255, 201, 210},
	{196, 181, 255}, {186, 225, 255}, {255, 241, 173}, {204, 255, 229},
	{255, 199, 190}, {214, 182, 255}, {255, 214, 235}, {168, 237, 255},
	{238, 231, 220}, {211, 228, 205}, {255, 234, 190}, {214, 200, 255},
	{255, 210, 198}, {204, 246, 221}, {255, 230, 214}, {196, 222, 255},
}

// Color returns the palette RGB for a tag.
func Color(tag string) (r, g, b uint8) {
	c := palette[Hash(tag)%uint64(len(palette))]
	return c[0], c[1], c[2]
}
