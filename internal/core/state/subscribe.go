package state

import "slices"

// Change describes an applied store mutation. Data is set when the
// slice's payload was replaced by a fetch result or a direct write.
type Change struct {
	Slice SliceID
	Data  bool
}

// Listener is called after every applied mutation, outside the store lock.
// Listeners read current state through the store's snapshot methods.
type Listener func(Change)

type subscription struct {
	id int
	fn Listener
}

// Subscribe registers l and returns a function that removes it. Listeners
// are called in registration order.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextListen
	s.nextListen++
	s.listeners = append(s.listeners, subscription{id: id, fn: l})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription) bool {
			return sub.id == id
		})
		s.mu.Unlock()
	}
}

func (s *Store) notify(c Change) {
	s.mu.RLock()
	subs := slices.Clone(s.listeners)
	s.mu.RUnlock()

	for _, sub := range subs {
		sub.fn(c)
	}
}
