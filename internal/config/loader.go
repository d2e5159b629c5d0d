package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/tailscale/hujson"
)

var envTemplateRe = regexp.MustCompile(`\$\{\{\s*\.Env\.(\w+)\s*\}\}`)

// Load reads a JSONC config file, expands ${{ .Env.VAR }} templates,
// unmarshals it into Config, applies defaults and validates the result.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variable templates (before standardizing, since templates are in strings)
	expanded := expandEnvTemplates(string(data))

	std, err := hujson.Standardize([]byte(expanded))
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(std, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// expandEnvTemplates replaces ${{ .Env.VAR }} with the env var value.
func expandEnvTemplates(s string) string {
	return envTemplateRe.ReplaceAllStringFunc(s, func(match string) string {
		parts := envTemplateRe.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		return os.Getenv(parts[1])
	})
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.IDs == "" {
		cfg.IDs = IDsSequence
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(TodoPath(), "todo.log")
	}
	if cfg.UI.Title == "" {
		cfg.UI.Title = "Todo List"
	}
	if cfg.UI.Placeholder == "" {
		cfg.UI.Placeholder = "Add a new todo..."
	}
	if cfg.UI.EmptyText == "" {
		cfg.UI.EmptyText = "No tasks yet. Add one!"
	}
}
