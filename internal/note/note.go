// ABOUTME: Note model for the file-backed quick notes store.
// ABOUTME: Holds header metadata, tags, body, and listing previews.

package note

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/harper/qn/internal/layout"
	"github.com/harper/qn/internal/tags"
)

// previewMax caps listing previews at 100 visible scalars.
const previewMax = 100

// Note is one markdown-backed record. Timestamps stay as the exact
// header strings so a foreign fixed offset survives untouched; DeletedAt
// and ArchivedAt are empty unless the note was moved to that area.
type Note struct {
	ID         string
	Title      string
	Created    string
	Updated    string
	DeletedAt  string
	ArchivedAt string
	Tags       []string
	Body       string
	Size       int64
}

// New builds a fresh active note stamped with now.
func New(id, title, body string, tagList []string, now time.Time) *Note {
	stamp := Stamp(now)
	return &Note{
		ID:      id,
		Title:   title,
		Created: stamp,
		Updated: stamp,
		Tags:    tags.NormalizeAll(tagList),
		Body:    body,
	}
}

// AppendLine adds one trimmed line to the body and refreshes the
// updated stamp.
func (n *Note) AppendLine(text string, now time.Time) {
	if !strings.HasSuffix(n.Body, "\n") {
		n.Body += "\n"
	}
	n.Body += strings.TrimSpace(text) + "\n"
	n.Updated = Stamp(now)
}

// Preview is the single-line listing preview: the first non-empty body
// line, prefixed with the title. Auto-generated "Quick note ..." titles
// are suppressed so the preview is all content.
func (n *Note) Preview() string {
	firstLine := ""
	for _, line := range strings.Split(n.Body, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			firstLine = trimmed
			break
		}
	}
	title := strings.TrimSpace(n.Title)
	includeTitle := !strings.HasPrefix(strings.ToLower(title), "quick note ")

	var text string
	switch {
	case firstLine != "" && includeTitle:
		text = strings.TrimSpace(title + " " + firstLine)
	case firstLine != "":
		text = firstLine
	case title != "":
		text = title
	default:
		text = "[empty]"
	}

	if runes := []rune(text); len(runes) > previewMax {
		text = string(runes[:previewMax]) + "…"
	}
	return text
}

// PreviewForQuery previews a note in search results. Title matches keep
// the normal preview; body matches show a snippet window around the
// first occurrence, whitespace-flattened and edge-marked.
func (n *Note) PreviewForQuery(query string) string {
	if query == "" {
		return n.Preview()
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(n.Title), q) {
		return n.Preview()
	}
	pos := strings.Index(strings.ToLower(n.Body), q)
	if pos < 0 {
		return n.Preview()
	}

	start := pos - 20
	if start < 0 {
		start = 0
	}
	end := pos + len(q) + 80
	if end > len(n.Body) {
		end = len(n.Body)
	}
	for start > 0 && !utf8.RuneStart(n.Body[start]) {
		start--
	}
	for end < len(n.Body) && !utf8.RuneStart(n.Body[end]) {
		end++
	}

	snippet := strings.Join(strings.Fields(n.Body[start:end]), " ")
	if start > 0 {
		snippet = " " + snippet
	}
	if end < len(n.Body) {
		snippet += "…"
	}
	if title := strings.TrimSpace(n.Title); title != "" {
		snippet = strings.TrimSpace(title + " " + snippet)
	}
	return layout.Truncate(snippet, previewMax)
}
