// ABOUTME: Environment-driven configuration for the notes CLI.
// ABOUTME: Reads QUICK_NOTES_* variables and resolves the storage root.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/harper/qn/internal/tags"
)

const defaultRetentionDays = 30

// Config holds the raw environment values. Retention is kept as a
// string so malformed input can fall back instead of failing startup.
type Config struct {
	Dir           string `env:"QUICK_NOTES_DIR"`
	RetentionDays string `env:"QUICK_NOTES_TRASH_RETENTION_DAYS" env-default:"30"`
	PinnedTags    string `env:"QUICK_NOTES_PINNED_TAGS" env-default:"#todo,#meeting,#scratch"`
	NoFzf         string `env:"QUICK_NOTES_NO_FZF"`
	Editor        string `env:"EDITOR" env-default:"vi"`
}

// Load reads the environment and resolves the storage root, defaulting
// to ~/.quick_notes.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if cfg.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return nil, errors.New("HOME not set; set QUICK_NOTES_DIR explicitly")
		}
		cfg.Dir = filepath.Join(home, ".quick_notes")
	}
	return &cfg, nil
}

// Retention is the trash retention window in days. Zero keeps trashed
// notes forever; negative or malformed values fall back to the default.
func (c *Config) Retention() int {
	days, err := strconv.Atoi(strings.TrimSpace(c.RetentionDays))
	if err != nil || days < 0 {
		return defaultRetentionDays
	}
	return days
}

// Pinned is the normalized pinned tag set shown by the tags command
// even at zero count.
func (c *Config) Pinned() []string {
	return tags.SplitList(c.PinnedTags)
}

// FzfDisabled reports whether interactive fzf selection is suppressed.
func (c *Config) FzfDisabled() bool {
	return c.NoFzf != ""
}
