package vclock

import (
	"sync"

	"github.com/google/uuid"
)

// Subscriber receives every published snapshot.
// Callbacks run synchronously under the store lock; they must not
// block, must not call back into the publishing engine, and must not
// call Subscribe or Unsubscribe on the store (the lock is not
// reentrant). Forward the snapshot to a channel if further work is
// needed.
type Subscriber func(Snapshot)

// StateView is the read-only face of a SnapshotStore handed to
// consumers that must observe but never mutate engine state
type StateView interface {
	Current() Snapshot
	Subscribe(fn Subscriber) string
	Unsubscribe(id string)
}

// SnapshotStore holds the latest snapshot and fans each publication
// out to subscribers in subscription order. Publications are
// serialized by the store lock, so every subscriber observes the same
// snapshot sequence with no interleaving.
type SnapshotStore struct {
	mu      sync.Mutex
	current Snapshot
	order   []string
	subs    map[string]Subscriber
}

// NewSnapshotStore creates a store seeded with an initial snapshot
func NewSnapshotStore(initial Snapshot) *SnapshotStore {
	return &SnapshotStore{
		current: initial,
		subs:    make(map[string]Subscriber),
	}
}

// Current returns the most recently published snapshot
func (s *SnapshotStore) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe registers fn and returns a handle for Unsubscribe.
// The current snapshot is delivered immediately so new subscribers
// never start from a blank state.
func (s *SnapshotStore) Subscribe(fn Subscriber) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.subs[id] = fn
	s.order = append(s.order, id)
	fn(s.current)
	return id
}

// Unsubscribe removes the subscription with the given handle.
// Unknown handles are ignored.
func (s *SnapshotStore) Unsubscribe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subs[id]; !ok {
		return
	}
	delete(s.subs, id)
	for i, sid := range s.order {
		if sid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Publish replaces the current snapshot and notifies subscribers in
// subscription order
func (s *SnapshotStore) Publish(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = snap
	for _, id := range s.order {
		s.subs[id](snap)
	}
}
