// ABOUTME: Time-ordered base62 note id generation with collision retry.
// ABOUTME: Ids are 9-char microsecond prefixes plus an optional counter.

package ident

import (
	"strings"
	"sync"
	"time"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// tsWidth zero-pads encoded microsecond timestamps so ids generated in
// different eras still sort lexicographically. Nine digits of base62
// cover timestamps far beyond the year 2500.
const tsWidth = 9

// Generator hands out ids that sort strictly after every id it issued
// before, even when the clock is frozen or stepped backwards. Use one
// generator per store; calls serialize on the internal mutex.
type Generator struct {
	mu      sync.Mutex
	now     func() int64
	last    int64
	counter uint64
}

// New builds a generator on the system microsecond clock.
func New() *Generator {
	return &Generator{now: func() int64 { return time.Now().UnixMicro() }}
}

// NewWithClock builds a generator on an injected microsecond clock.
func NewWithClock(now func() int64) *Generator {
	return &Generator{now: now}
}

// Next returns a fresh id absent from both the reserved set and the
// exists check. Rejected candidates are added to reserved, so batch
// callers accumulate claims across calls. When the clock has not moved
// past the last issued timestamp, a base62 counter suffix keeps ids
// unique and still ordered after the previous one.
func (g *Generator) Next(reserved map[string]struct{}, exists func(id string) bool) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if reserved == nil {
		reserved = make(map[string]struct{})
	}

	now := g.now()
	if now > g.last {
		g.last = now
		g.counter = 0
	} else {
		g.counter++
	}

	prefix := encodeWidth(uint64(g.last), tsWidth)
	for {
		id := prefix
		if g.counter > 0 {
			id += encode(g.counter)
		}
		_, taken := reserved[id]
		if !taken && (exists == nil || !exists(id)) {
			return id
		}
		reserved[id] = struct{}{}
		g.counter++
	}
}

// ShortStamp encodes a microsecond timestamp the same way id prefixes
// are encoded. Used for migration batch names.
func ShortStamp(micros int64) string {
	if micros < 0 {
		micros = 0
	}
	return encodeWidth(uint64(micros), tsWidth)
}

func encode(n uint64) string {
	if n == 0 {
		return "0"
	}
	buf := make([]byte, 0, 11)
	for n > 0 {
		buf = append(buf, alphabet[n%62])
		n /= 62
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

func encodeWidth(n uint64, width int) string {
	s := encode(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
