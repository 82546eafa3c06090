// ABOUTME: Serialization between notes and the header/body file format.
// ABOUTME: Decode tolerates malformed input; encode normalizes output.

package note

import (
	"fmt"
	"strings"

	"github.com/harper/qn/internal/tags"
)

// headerSeparator splits the header block from the body. The header
// keeps the separator so iterating its lines skips the bare "---".
const headerSeparator = "\n---\n"

// Decode parses raw file contents into a note. It never fails: missing
// or malformed header lines degrade to zero values, and content without
// a separator is treated as all body.
func Decode(raw []byte, size int64, id string) *Note {
	content := string(raw)
	header, body := "", content
	if idx := strings.Index(content, headerSeparator); idx >= 0 {
		header = content[:idx+len(headerSeparator)]
		body = content[idx+len(headerSeparator):]
	}

	n := &Note{ID: id, Body: body, Size: size}
	for _, line := range strings.Split(header, "\n") {
		if val, ok := strings.CutPrefix(line, "Title:"); ok {
			n.Title = strings.TrimSpace(val)
		} else if val, ok := strings.CutPrefix(line, "Created:"); ok {
			n.Created = strings.TrimSpace(val)
		} else if val, ok := strings.CutPrefix(line, "Updated:"); ok {
			n.Updated = strings.TrimSpace(val)
		} else if val, ok := strings.CutPrefix(line, "Deleted:"); ok {
			n.DeletedAt = strings.TrimSpace(val)
		} else if val, ok := strings.CutPrefix(line, "Archived:"); ok {
			n.ArchivedAt = strings.TrimSpace(val)
		} else if val, ok := strings.CutPrefix(line, "Tags:"); ok {
			n.Tags = nil
			for _, part := range strings.Split(val, ",") {
				if tag := tags.Normalize(part); tag != "" {
					n.Tags = append(n.Tags, tag)
				}
			}
		}
	}
	return n
}

// Encode renders a note in the canonical file format: header lines,
// a "---" separator, and the body normalized to one trailing newline.
// Optional stamps are only written when set, and tags are normalized.
func Encode(n *Note) []byte {
	body := strings.TrimRight(n.Body, "\n") + "\n"

	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", n.Title)
	fmt.Fprintf(&b, "Created: %s\n", n.Created)
	fmt.Fprintf(&b, "Updated: %s\n", n.Updated)
	if n.DeletedAt != "" {
		fmt.Fprintf(&b, "Deleted: %s\n", n.DeletedAt)
	}
	if n.ArchivedAt != "" {
		fmt.Fprintf(&b, "Archived: %s\n", n.ArchivedAt)
	}
	if normalized := tags.NormalizeAll(n.Tags); len(normalized) == 0 {
		b.WriteString("Tags:\n")
	} else {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(normalized, ", "))
	}
	b.WriteString("---\n")
	b.WriteString(body)
	return []byte(b.String())
}
