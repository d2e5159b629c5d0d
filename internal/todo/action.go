package todo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned when an action kind cannot be decoded.
var ErrUnknownAction = errors.New("unknown action")

// Kind names an action on the wire.
type Kind string

const (
	KindAddTask        Kind = "add-task"
	KindDeleteTask     Kind = "delete-task"
	KindToggleComplete Kind = "toggle-complete"
	KindSaveTask       Kind = "save-task"
)

// Action is a request to change the task list.
// The set of actions is closed: AddTask, DeleteTask, ToggleComplete, SaveTask.
type Action interface {
	Kind() Kind
	action()
}

// Position controls where a new task is inserted.
type Position int

const (
	InsertTop    Position = iota // front of the list, rendered first
	InsertBottom                 // end of the list
)

// AddTask creates a new task. An empty ID asks the reducer for the next sequence id.
type AddTask struct {
	Text     string
	ID       ID
	Position Position
}

// DeleteTask removes a task.
type DeleteTask struct {
	ID ID
}

// ToggleComplete flips the completed flag of a task.
type ToggleComplete struct {
	ID ID
}

// SaveTask replaces the text of a task.
type SaveTask struct {
	ID   ID
	Text string
}

func (AddTask) Kind() Kind        { return KindAddTask }
func (DeleteTask) Kind() Kind     { return KindDeleteTask }
func (ToggleComplete) Kind() Kind { return KindToggleComplete }
func (SaveTask) Kind() Kind       { return KindSaveTask }

func (AddTask) action()        {}
func (DeleteTask) action()     {}
func (ToggleComplete) action() {}
func (SaveTask) action()       {}

// ActionSpec is the loosely typed form of an action used by script files.
type ActionSpec struct {
	Kind     Kind   `json:"kind" yaml:"kind"`
	ID       ID     `json:"id,omitempty" yaml:"id,omitempty"`
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
	Position string `json:"position,omitempty" yaml:"position,omitempty"` // "top" (default) or "bottom"
}

// Decode converts a spec into a typed action.
func (s ActionSpec) Decode() (Action, error) {
	switch s.Kind {
	case KindAddTask:
		pos, err := parsePosition(s.Position)
		if err != nil {
			return nil, err
		}
		return AddTask{Text: s.Text, ID: s.ID, Position: pos}, nil
	case KindDeleteTask:
		return DeleteTask{ID: s.ID}, nil
	case KindToggleComplete:
		return ToggleComplete{ID: s.ID}, nil
	case KindSaveTask:
		return SaveTask{ID: s.ID, Text: s.Text}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, s.Kind)
	}
}

func parsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "top":
		return InsertTop, nil
	case "bottom":
		return InsertBottom, nil
	default:
		return InsertTop, fmt.Errorf("invalid position %q", s)
	}
}

// describe returns the id an action targets, for logging.
func describe(a Action) ID {
	switch a := a.(type) {
	case AddTask:
		return a.ID
	case DeleteTask:
		return a.ID
	case ToggleComplete:
		return a.ID
	case SaveTask:
		return a.ID
	}
	return ""
}
