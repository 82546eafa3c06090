// ABOUTME: Interactive note picking through an external fzf process.
// ABOUTME: Builds picker configurations and parses the selection output.

package fzf

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

// Available reports whether fzf can be found on PATH. The result is cached
// for the life of the process.
var Available = sync.OnceValue(func() bool {
	_, err := exec.LookPath("fzf")
	return err == nil
})

// Selector configures a single fzf invocation.
type Selector struct {
	previewCommand string
	multiSelect    bool
	height         string
	layout         string
	previewWindow  string
}

func New() *Selector {
	return &Selector{}
}

// WithNotePreview previews candidates by rendering them through this same
// binary. Color is forced so the preview pane stays styled inside fzf.
func WithNotePreview() *Selector {
	exe, err := os.Executable()
	if err != nil || exe == "" {
		exe = "qn"
	}
	return &Selector{
		previewCommand: fmt.Sprintf("env -u NO_COLOR CLICOLOR_FORCE=1 %s render {} 2>/dev/null", exe),
		multiSelect:    true,
	}
}

// WithSimplePreview previews candidate files with sed.
func WithSimplePreview() *Selector {
	return &Selector{
		previewCommand: "sed -n '1,120p' {}",
		multiSelect:    true,
		height:         "70%",
		layout:         "reverse",
		previewWindow:  "down:wrap",
	}
}

func (s *Selector) MultiSelect(enabled bool) *Selector {
	s.multiSelect = enabled
	return s
}

func (s *Selector) Height(height string) *Selector {
	s.height = height
	return s
}

func (s *Selector) Layout(layout string) *Selector {
	s.layout = layout
	return s
}

// Select pipes candidates into fzf and returns the chosen lines. A
// cancelled picker returns nil with no error.
func (s *Selector) Select(candidates []string) ([]string, error) {
	if !Available() {
		return nil, errors.New("fzf is not installed")
	}

	var args []string
	if s.multiSelect {
		args = append(args, "--multi")
	}
	if s.height != "" {
		args = append(args, "--height", s.height)
	}
	if s.layout != "" {
		args = append(args, "--layout", s.layout)
	}
	if s.previewCommand != "" {
		args = append(args, "--preview", s.previewCommand)
	}
	if s.previewWindow != "" {
		args = append(args, "--preview-window", s.previewWindow)
	}

	cmd := exec.Command("fzf", args...)
	cmd.Stdin = strings.NewReader(strings.Join(candidates, "\n"))
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil || len(out) == 0 {
		// Non-zero exit or empty output means the user cancelled.
		return nil, nil
	}
	return strings.Split(strings.TrimRight(string(out), "\n"), "\n"), nil
}

// SelectIDs runs the picker over the ids of the given note files.
func (s *Selector) SelectIDs(paths []string) ([]string, error) {
	return s.Select(idsFromPaths(paths))
}

func idsFromPaths(paths []string) []string {
	ids := make([]string, 0, len(paths))
	for _, p := range paths {
		base := filepath.Base(p)
		ids = append(ids, strings.TrimSuffix(base, filepath.Ext(base)))
	}
	return ids
}
