package todo

import (
	"math"
	"strconv"
	"strings"
)

// Apply computes the state that follows s after action a.
// It never mutates s. Actions whose preconditions do not hold, and unknown
// or nil actions, return s unchanged.
func Apply(s State, a Action) State {
	next, _ := reduce(s, a)
	return next
}

// reduce is Apply that also reports whether the state changed.
func reduce(s State, a Action) (State, bool) {
	switch a := a.(type) {
	case AddTask:
		return addTask(s, a)
	case DeleteTask:
		return deleteTask(s, a.ID)
	case ToggleComplete:
		return toggleComplete(s, a.ID)
	case SaveTask:
		return saveTask(s, a.ID, a.Text)
	default:
		return s, false
	}
}

func addTask(s State, a AddTask) (State, bool) {
	text := strings.TrimSpace(a.Text)
	if text == "" {
		return s, false
	}

	seq := s.seq
	id := a.ID
	if id == "" {
		id, seq = s.nextSequenceID()
	} else {
		if s.indexOf(id) >= 0 {
			return s, false
		}
		seq = bump(seq, id)
	}

	task := Task{ID: id, Text: text, Completed: false}
	tasks := make([]Task, 0, len(s.tasks)+1)
	if a.Position == InsertBottom {
		tasks = append(tasks, s.tasks...)
		tasks = append(tasks, task)
	} else {
		tasks = append(tasks, task)
		tasks = append(tasks, s.tasks...)
	}
	return State{tasks: tasks, seq: seq}, true
}

func deleteTask(s State, id ID) (State, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return s, false
	}
	tasks := make([]Task, 0, len(s.tasks)-1)
	tasks = append(tasks, s.tasks[:i]...)
	tasks = append(tasks, s.tasks[i+1:]...)
	return State{tasks: tasks, seq: s.seq}, true
}

func toggleComplete(s State, id ID) (State, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return s, false
	}
	tasks := s.Tasks()
	tasks[i].Completed = !tasks[i].Completed
	return State{tasks: tasks, seq: s.seq}, true
}

func saveTask(s State, id ID, text string) (State, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s, false
	}
	i := s.indexOf(id)
	if i < 0 || s.tasks[i].Text == text {
		return s, false
	}
	tasks := s.Tasks()
	tasks[i].Text = text
	return State{tasks: tasks, seq: s.seq}, true
}

// nextSequenceID returns the next unused sequence id and the advanced counter.
// Ids taken by seeded or explicitly identified tasks are skipped.
func (s State) nextSequenceID() (ID, uint64) {
	seq := s.seq
	for {
		seq++
		id := ID(strconv.FormatUint(seq, 10))
		if s.indexOf(id) < 0 {
			return id, seq
		}
	}
}

// bump raises seq past a numeric id so the counter never hands it out again.
// The largest uint64 is left alone so the counter cannot wrap.
func bump(seq uint64, id ID) uint64 {
	n, err := strconv.ParseUint(string(id), 10, 64)
	if err == nil && n > seq && n < math.MaxUint64 {
		return n
	}
	return seq
}

// Seed builds a state from an initial list of tasks, kept in the given order.
// Tasks with empty text or a duplicate id are dropped; tasks without an id get
// a sequence id.
func Seed(tasks []Task) State {
	s := InitialState()
	for _, t := range tasks {
		s.seq = bump(s.seq, t.ID)
	}
	for _, t := range tasks {
		next, ok := addTask(s, AddTask{Text: t.Text, ID: t.ID, Position: InsertBottom})
		if !ok {
			continue
		}
		if t.Completed {
			next.tasks[len(next.tasks)-1].Completed = true
		}
		s = next
	}
	return s
}
