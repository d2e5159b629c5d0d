// Package todo holds the task list state and the transitions that change it.
package todo

// ID identifies a task. It is assigned once on creation and never reused.
type ID string

// Task is a single todo entry.
type Task struct {
	ID        ID     `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// State is an immutable snapshot of the task list.
// The zero value is an empty list.
type State struct {
	tasks []Task
	seq   uint64 // last sequence number handed out
}

// InitialState returns the empty task list.
func InitialState() State {
	return State{}
}

// Tasks returns a copy of the tasks in render order.
func (s State) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s State) Len() int {
	return len(s.tasks)
}

// At returns the task at position i.
func (s State) At(i int) Task {
	return s.tasks[i]
}

// Find returns the task with the given id.
func (s State) Find(id ID) (Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return Task{}, false
}

func (s State) indexOf(id ID) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
