package order

import (
	"sync"

	domain "github.com/weihanlim/cupcake-go/internal/domain/order"
)

// Store holds the latest published order snapshot and fans it out to
// subscribers. It mirrors the reference state-flow semantics: a new
// subscriber immediately receives the current value, every publish
// delivers the latest snapshot, and a slow subscriber is conflated to
// the newest value rather than queueing intermediates.
type Store struct {
	mu     sync.RWMutex
	value  domain.Order
	subs   map[int]chan domain.Order
	nextID int
}

// NewStore creates a store seeded with an initial snapshot.
func NewStore(initial domain.Order) *Store {
	return &Store{
		value: initial.Clone(),
		subs:  make(map[int]chan domain.Order),
	}
}

// Get returns the current snapshot.
func (s *Store) Get() domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value.Clone()
}

// Publish replaces the current snapshot and notifies subscribers.
// Callers must only publish fully recomputed snapshots.
func (s *Store) Publish(o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = o.Clone()
	for _, ch := range s.subs {
		send(ch, s.value.Clone())
	}
}

// Subscribe returns a channel that carries the current snapshot
// immediately and each later publish, plus a cancel function. The channel
// is closed on cancel.
func (s *Store) Subscribe() (<-chan domain.Order, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	ch := make(chan domain.Order, 1)
	ch <- s.value.Clone()
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// send delivers latest-wins: if the subscriber has not consumed the
// previous snapshot it is dropped in favor of the new one.
func send(ch chan domain.Order, o domain.Order) {
	for {
		select {
		case ch <- o:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
