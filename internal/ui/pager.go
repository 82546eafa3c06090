// ABOUTME: Terminal measurement and screenful-at-a-time pagination.
// ABOUTME: Respects COLUMNS/ROWS overrides before querying the terminal.

package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const fallbackWidth = 120

func envDim(name string) (int, bool) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// TerminalWidth returns the column budget for list layout.
func TerminalWidth() int {
	if n, ok := envDim("COLUMNS"); ok {
		return n
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}

func terminalRows() (int, bool) {
	if n, ok := envDim("ROWS"); ok {
		return n, true
	}
	if _, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && h > 0 {
		return h, true
	}
	return 0, false
}

// Paginate prints lines one screenful at a time, waiting for Enter between
// pages. Non-terminal output gets everything at once.
func Paginate(lines []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		for _, l := range lines {
			fmt.Println(l)
		}
		return nil
	}
	rows, ok := terminalRows()
	if !ok || rows == 0 {
		for _, l := range lines {
			fmt.Println(l)
		}
		return nil
	}

	page := max(rows-2, 1)
	reader := bufio.NewReader(os.Stdin)
	for idx := 0; idx < len(lines); {
		end := min(idx+page, len(lines))
		for _, l := range lines[idx:end] {
			fmt.Println(l)
		}
		idx = end
		if idx < len(lines) {
			fmt.Print("-- more -- press Enter to continue --")
			if _, err := reader.ReadString('\n'); err != nil {
				return err
			}
		}
	}
	return nil
}
