// ABOUTME: Tests for ANSI-aware text helpers and list width planning.
// ABOUTME: Exercises shrink ordering and table rendering shape.

package layout

import (
	"strings"
	"testing"
)

func TestDisplayLenSkipsANSI(t *testing.T) {
	colored := "\x1b[38;2;137;180;250mhello\x1b[0m"
	if got := DisplayLen(colored); got != 5 {
		t.Errorf("DisplayLen(colored) = %d, want 5", got)
	}
	if got := DisplayLen("héllo"); got != 5 {
		t.Errorf("DisplayLen multibyte = %d, want 5", got)
	}
	if got := DisplayLen(""); got != 0 {
		t.Errorf("DisplayLen empty = %d, want 0", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		text  string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
		{"héllo", 3, "hé…"},
	}
	for _, c := range cases {
		if got := Truncate(c.text, c.width); got != c.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", c.text, c.width, got, c.want)
		}
	}
}

func TestPadUsesPlainLength(t *testing.T) {
	colored := "\x1b[31mab\x1b[0m"
	got := Pad(colored, 5, 2)
	if !strings.HasSuffix(got, "   ") {
		t.Errorf("expected 3 trailing spaces, got %q", got)
	}
	if got := Pad("abc", 2, 3); got != "abc" {
		t.Errorf("over-wide cell should not be padded, got %q", got)
	}
}

func activeColumns() ListColumns {
	return ListColumns{
		IDs:          []string{"8mBqRst", "8mBqRsu12"},
		Updated:      []string{"10Aug26 14:03", "11Aug26 09:12"},
		Previews:     []string{"Standup notes next steps", "Groceries milk eggs"},
		Tags:         []string{"#todo", "#todo #meeting"},
		UpdatedLabel: "Updated (+02:00)",
	}
}

func TestComputeListWidthsNatural(t *testing.T) {
	w := ComputeListWidths(activeColumns(), 200)
	if w.ID != 9 {
		t.Errorf("id width = %d, want 9", w.ID)
	}
	// Updated column grows to its label, which is wider than the data.
	if w.Updated != len("Updated (+02:00)") {
		t.Errorf("updated width = %d, want %d", w.Updated, len("Updated (+02:00)"))
	}
	if w.Preview != len("Standup notes next steps") {
		t.Errorf("preview width = %d, want widest preview", w.Preview)
	}
	if !w.IncludeTags || w.Tags != len("#todo #meeting") {
		t.Errorf("tags width = %d (include=%v), want widest tag cell", w.Tags, w.IncludeTags)
	}
	if w.IncludeCreated || w.IncludeMoved {
		t.Error("active listing should not include created/moved columns")
	}
}

func TestComputeListWidthsUnifiesTimestamps(t *testing.T) {
	cols := ListColumns{
		IDs:          []string{"8mBqRst"},
		Updated:      []string{"10Aug26 14:03"},
		Created:      []string{"01Aug26 08:00"},
		Moved:        []string{""},
		Previews:     []string{"hello"},
		UpdatedLabel: "Updated (+02:00)",
		CreatedLabel: "Created (+02:00)",
		MovedLabel:   "Deleted (+02:00)",
	}
	w := ComputeListWidths(cols, 500)
	if w.Updated != w.Created || w.Created != w.Moved {
		t.Errorf("timestamp widths differ: updated=%d created=%d moved=%d", w.Updated, w.Created, w.Moved)
	}
}

func TestShrinkTakesFromPreviewFirst(t *testing.T) {
	cols := activeColumns()
	wide := ComputeListWidths(cols, 500)
	narrow := ComputeListWidths(cols, wide.Total()-5)
	if narrow.Preview != wide.Preview-5 {
		t.Errorf("expected preview to absorb the full deficit, preview went %d -> %d", wide.Preview, narrow.Preview)
	}
	if narrow.ID != wide.ID || narrow.Updated != wide.Updated || narrow.Tags != wide.Tags {
		t.Error("other columns changed before the preview hit its floor")
	}
}

func TestShrinkRespectsFloors(t *testing.T) {
	w := ComputeListWidths(activeColumns(), 10)
	if w.Preview < 4 {
		t.Errorf("preview shrank below its floor: %d", w.Preview)
	}
	if w.Tags < 4 {
		t.Errorf("tags shrank below their floor: %d", w.Tags)
	}
	if w.Updated < len("Updated (+02:00)") {
		t.Errorf("updated shrank below its label: %d", w.Updated)
	}
	if w.ID < 2 {
		t.Errorf("id shrank below its floor: %d", w.ID)
	}
}

func TestShrinkFitsWhenPossible(t *testing.T) {
	cols := activeColumns()
	target := ComputeListWidths(cols, 500).Total() - 8
	w := ComputeListWidths(cols, target)
	if w.Total() > target {
		t.Errorf("row width %d exceeds terminal %d despite available slack", w.Total(), target)
	}
}

func TestAssembleListRowMatchesTotal(t *testing.T) {
	w := ComputeListWidths(activeColumns(), 80)
	row := AssembleListRow(w,
		PlainCell("8mBqRst"),
		Cell{},
		PlainCell("10Aug26 14:03"),
		Cell{},
		PlainCell("Standup"),
		PlainCell("#todo"),
	)
	if got := DisplayLen(row); got != w.Total() {
		t.Errorf("assembled row width %d, want total %d", got, w.Total())
	}
	if !strings.Contains(row, " | ") {
		t.Error("expected column separators in the row")
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"Area", "Count"},
		[][]string{{"Active", "12"}, {"Trash", "3"}},
	)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0] != "Area   | Count" {
		t.Errorf("header row = %q", lines[0])
	}
	if lines[1] != strings.Repeat("=", DisplayLen(lines[0])) {
		t.Errorf("rule = %q, want %d equals signs", lines[1], DisplayLen(lines[0]))
	}
	if lines[2] != "Active | 12   " {
		t.Errorf("first row = %q", lines[2])
	}
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	if out := RenderTable(nil, nil); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}
