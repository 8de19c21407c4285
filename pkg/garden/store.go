package garden

// Store holds the current model and notifies subscribers after every
// dispatched command. It is meant to be driven by a single loop.
type Store struct {
	model Model
	subs  []subscription
	next  int
}

type subscription struct {
	id int
	fn func(Model)
}

// NewStore creates a store seeded with m.
func NewStore(m Model) *Store {
	return &Store{model: m}
}

// Model returns the current state.
func (s *Store) Model() Model { return s.model }

// Dispatch applies msg and notifies subscribers in registration order.
func (s *Store) Dispatch(msg Msg) {
	s.model = Update(s.model, msg)
	s.notify()
}

// Replace swaps in a new model, e.g. after a reset.
func (s *Store) Replace(m Model) {
	s.model = m
	s.notify()
}

// Subscribe registers fn and returns a func that removes it.
func (s *Store) Subscribe(fn func(Model)) (unsubscribe func()) {
	id := s.next
	s.next++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify() {
	for _, sub := range s.subs {
		sub.fn(s.model)
	}
}
