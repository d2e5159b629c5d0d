package todo

import (
	"log/slog"
	"slices"
	"sync"
)

// Store owns the current task list and applies dispatched actions to it.
// It is the single writer of the state; each dispatch replaces the state
// wholesale.
type Store struct {
	mu     sync.Mutex
	state  State
	ids    IDGenerator
	logger *slog.Logger

	subMu  sync.RWMutex
	subs   []subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func(State)
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDGenerator makes the store stamp new tasks with ids from g instead of
// the built-in sequence.
func WithIDGenerator(g IDGenerator) StoreOption {
	return func(s *Store) { s.ids = g }
}

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

// NewStore creates a store holding initial.
func NewStore(initial State, opts ...StoreOption) *Store {
	s := &Store{
		state:  initial,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies a to the current state and returns the new state.
// Subscribers are notified after the state is swapped, even when a turned
// out to be a no-op.
func (s *Store) Dispatch(a Action) State {
	if add, ok := a.(AddTask); ok && add.ID == "" && s.ids != nil {
		add.ID = s.ids.NewID()
		a = add
	}

	s.mu.Lock()
	next, changed := reduce(s.state, a)
	s.state = next
	s.mu.Unlock()

	if a == nil {
		s.logger.Debug("dispatch", "kind", "<nil>", "changed", changed)
	} else {
		s.logger.Debug("dispatch", "kind", a.Kind(), "id", describe(a), "changed", changed, "tasks", next.Len())
	}

	s.subMu.RLock()
	subs := slices.Clone(s.subs)
	s.subMu.RUnlock()

	for _, sub := range subs {
		sub.fn(next)
	}
	return next
}

// Subscribe registers fn to be called after every dispatch, in registration
// order. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool { return sub.id == id })
		s.subMu.Unlock()
	}
}
