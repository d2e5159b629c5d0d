package todofile

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dohr-michael/todo/internal/todo"
)

// SeedEntry is one task in a seed file. Title is accepted as an alias of Text.
type SeedEntry struct {
	ID        todo.ID `json:"id,omitempty" yaml:"id,omitempty"`
	Text      string  `json:"text,omitempty" yaml:"text,omitempty"`
	Title     string  `json:"title,omitempty" yaml:"title,omitempty"`
	Completed bool    `json:"completed,omitempty" yaml:"completed,omitempty"`
}

// Task converts the entry into a task.
func (e SeedEntry) Task() (todo.Task, error) {
	text := e.Text
	if strings.TrimSpace(text) == "" {
		text = e.Title
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return todo.Task{}, fmt.Errorf("%w: empty text (id %q)", ErrInvalidSeed, e.ID)
	}
	return todo.Task{ID: e.ID, Text: text, Completed: e.Completed}, nil
}

// Tasks converts entries into tasks, logging and skipping invalid ones.
func Tasks(entries []SeedEntry) []todo.Task {
	tasks := make([]todo.Task, 0, len(entries))
	for i, e := range entries {
		t, err := e.Task()
		if err != nil {
			slog.Warn("skipping seed entry", "index", i, "error", err)
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks
}

// LoadSeedFile reads the seed entries of a single file.
func LoadSeedFile(path string) ([]SeedEntry, error) {
	var entries []SeedEntry
	if err := decodeFile(path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// LoadSeeds expands the glob patterns (** supported) and reads every matching
// file, in pattern order then lexical order. A file matched twice is read once.
func LoadSeeds(patterns []string) ([]todo.Task, error) {
	var tasks []todo.Task
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			slog.Debug("seed pattern matched nothing", "pattern", pattern)
			continue
		}
		slices.Sort(matches)

		for _, path := range matches {
			if seen[path] {
				continue
			}
			seen[path] = true

			entries, err := LoadSeedFile(path)
			if err != nil {
				return nil, err
			}
			slog.Debug("loaded seed file", "path", path, "entries", len(entries))
			tasks = append(tasks, Tasks(entries)...)
		}
	}
	return tasks, nil
}

// LoadSeedState is LoadSeeds followed by todo.Seed.
func LoadSeedState(patterns []string) (todo.State, error) {
	tasks, err := LoadSeeds(patterns)
	if err != nil {
		return todo.InitialState(), err
	}
	return todo.Seed(tasks), nil
}
