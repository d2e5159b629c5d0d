// Package config loads the todo configuration file.
package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Id generation strategies.
const (
	IDsSequence = "sequence" // "1", "2", ... handed out by the reducer
	IDsUUID     = "uuid"     // UUIDv7 stamped by the store
)

// Config is the root configuration for todo.
type Config struct {
	IDs   string    `json:"ids"`   // "sequence" (default) or "uuid"
	Seeds []string  `json:"seeds"` // glob patterns of seed files, ** supported
	Log   LogConfig `json:"log"`
	UI    UIConfig  `json:"ui"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `json:"level"` // debug, info, warn, error
	File  string `json:"file"`  // TUI log file (default: $TODO_PATH/todo.log)
}

// UIConfig configures the interactive list.
type UIConfig struct {
	Title                 string `json:"title"`
	Placeholder           string `json:"placeholder"`
	EmptyText             string `json:"empty_text"`
	AllowDeleteIncomplete bool   `json:"allow_delete_incomplete"`
}

// Default returns a config with every default applied.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.IDs {
	case IDsSequence, IDsUUID:
	default:
		return fmt.Errorf("invalid ids %q: want %q or %q", c.IDs, IDsSequence, IDsUUID)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
}
