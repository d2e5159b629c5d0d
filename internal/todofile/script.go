package todofile

import (
	"log/slog"

	"github.com/dohr-michael/todo/internal/todo"
)

// Script is a seed list followed by actions to replay against it.
type Script struct {
	Seed    []SeedEntry       `json:"seed,omitempty" yaml:"seed,omitempty"`
	Actions []todo.ActionSpec `json:"actions" yaml:"actions"`
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	var s Script
	if err := decodeFile(path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// HasSeed reports whether the script declares its own seed, even an empty one.
func (s *Script) HasSeed() bool {
	return s.Seed != nil
}

// SeedState builds the initial state declared by the script.
func (s *Script) SeedState() todo.State {
	return todo.Seed(Tasks(s.Seed))
}

// Replay dispatches every action to store and returns the final state.
// Actions that cannot be decoded are logged and skipped.
func (s *Script) Replay(store *todo.Store) todo.State {
	state := store.State()
	for i, spec := range s.Actions {
		action, err := spec.Decode()
		if err != nil {
			slog.Warn("skipping action", "index", i, "kind", spec.Kind, "error", err)
			continue
		}
		state = store.Dispatch(action)
	}
	return state
}
