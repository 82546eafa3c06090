// ABOUTME: Tests for base62 id generation and ordering guarantees.
// ABOUTME: Uses injected clocks to pin down frozen and rewound cases.

package ident

import (
	"sort"
	"strings"
	"testing"
)

func TestNextWithAdvancingClock(t *testing.T) {
	now := int64(1_700_000_000_000_000)
	g := NewWithClock(func() int64 { now++; return now })

	var ids []string
	for i := 0; i < 5; i++ {
		ids = append(ids, g.Next(nil, nil))
	}
	for i, id := range ids {
		if len(id) != 9 {
			t.Errorf("id %d = %q, want bare 9-char prefix", i, id)
		}
	}
	if !sort.StringsAreSorted(ids) {
		t.Errorf("ids not in lexicographic order: %v", ids)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1] {
			t.Errorf("duplicate id %q", ids[i])
		}
	}
}

func TestNextWithFrozenClock(t *testing.T) {
	g := NewWithClock(func() int64 { return 1_700_000_000_000_000 })

	id1 := g.Next(nil, nil)
	id2 := g.Next(nil, nil)
	id3 := g.Next(nil, nil)

	if len(id1) != 9 {
		t.Fatalf("first id = %q, want bare prefix", id1)
	}
	for _, id := range []string{id2, id3} {
		if !strings.HasPrefix(id, id1) || len(id) <= len(id1) {
			t.Errorf("id %q should extend the frozen prefix %q with a counter suffix", id, id1)
		}
	}
	if !(id1 < id2 && id2 < id3) {
		t.Errorf("frozen-clock ids out of order: %q %q %q", id1, id2, id3)
	}
}

func TestNextWithRewoundClock(t *testing.T) {
	times := []int64{2_000_000, 1_000_000, 1_000_000}
	idx := 0
	g := NewWithClock(func() int64 { v := times[idx]; idx++; return v })

	id1 := g.Next(nil, nil)
	id2 := g.Next(nil, nil)
	id3 := g.Next(nil, nil)
	if !(id1 < id2 && id2 < id3) {
		t.Errorf("rewound-clock ids out of order: %q %q %q", id1, id2, id3)
	}
}

func TestNextSkipsReservedIds(t *testing.T) {
	g := NewWithClock(func() int64 { return 42 })

	first := g.Next(nil, nil)
	reserved := map[string]struct{}{}
	reserved[first] = struct{}{}

	g2 := NewWithClock(func() int64 { return 42 })
	got := g2.Next(reserved, nil)
	if got == first {
		t.Errorf("generator returned a reserved id %q", got)
	}
	if _, ok := reserved[first]; !ok {
		t.Error("reserved set lost its original entry")
	}
}

func TestNextConsultsExists(t *testing.T) {
	g := NewWithClock(func() int64 { return 42 })
	taken := map[string]bool{}

	first := g.Next(nil, nil)
	taken[first] = true

	g2 := NewWithClock(func() int64 { return 42 })
	reserved := map[string]struct{}{}
	got := g2.Next(reserved, func(id string) bool { return taken[id] })
	if got == first {
		t.Errorf("generator returned an id that already exists: %q", got)
	}
	if _, ok := reserved[first]; !ok {
		t.Error("rejected candidate was not added to the reserved set")
	}
}

func TestReservedSetAccumulatesAcrossCalls(t *testing.T) {
	g := NewWithClock(func() int64 { return 7 })
	reserved := map[string]struct{}{}

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		id := g.Next(reserved, nil)
		if seen[id] {
			t.Fatalf("duplicate id %q issued on iteration %d", id, i)
		}
		seen[id] = true
		reserved[id] = struct{}{}
	}
}

func TestEncodeWidthPadding(t *testing.T) {
	if got := encodeWidth(0, 9); got != "000000000" {
		t.Errorf("encodeWidth(0, 9) = %q", got)
	}
	if got := encodeWidth(61, 9); got != "00000000z" {
		t.Errorf("encodeWidth(61, 9) = %q", got)
	}
	if got := encodeWidth(62, 9); got != "000000010" {
		t.Errorf("encodeWidth(62, 9) = %q", got)
	}
}

func TestEncode(t *testing.T) {
	cases := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{10, "A"},
		{35, "Z"},
		{36, "a"},
		{61, "z"},
		{62, "10"},
		{62*62 + 1, "101"},
	}
	for _, c := range cases {
		if got := encode(c.n); got != c.want {
			t.Errorf("encode(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestShortStamp(t *testing.T) {
	if got := ShortStamp(0); got != "000000000" {
		t.Errorf("ShortStamp(0) = %q", got)
	}
	if got := ShortStamp(-5); got != "000000000" {
		t.Errorf("ShortStamp(-5) = %q, want clamp to zero", got)
	}
	if got := ShortStamp(1_700_000_000_000_000); len(got) != 9 {
		t.Errorf("ShortStamp of a current timestamp = %q, want 9 chars", got)
	}
}
