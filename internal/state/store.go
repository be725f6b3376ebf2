package state

import "sync"

// Subscriber receives the post-dispatch snapshot. Subscribers run
// synchronously on the dispatching goroutine, in registration order.
type Subscriber func(State)

// Store serializes all state transitions. The mutex enforces the
// one-action-at-a-time contract; readers get value snapshots and never
// observe a half-applied transition.
type Store struct {
	mu    sync.Mutex
	state State
	subs  []Subscriber
}

// NewStore returns a Store holding the zero State.
func NewStore() *Store {
	return &Store{}
}

// Dispatch applies a through the reducer and notifies subscribers with
// the resulting snapshot.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = reduce(s.state, a)
	snapshot := s.state
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn for post-dispatch snapshots.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
