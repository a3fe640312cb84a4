package store

import "slices"

// EventKind identifies the mutation that produced an Event.
type EventKind string

// Event kinds
const (
	EventAdded   EventKind = "added"
	EventUpdated EventKind = "updated"
	EventToggled EventKind = "toggled"
	EventDeleted EventKind = "deleted"
	EventSorted  EventKind = "sorted"
)

// Event describes a mutation of the store. TaskID is zero for EventSorted.
type Event struct {
	Kind   EventKind
	TaskID int64
}

type subscriber struct {
	id int
	fn func(Event)
}

// Subscribe registers fn to be called after every mutation. The returned
// function removes the subscription; calling it more than once is safe.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = slices.Delete(s.subscribers, i, i+1)
				return
			}
		}
	}
}

func (s *Store) notify(ev Event) {
	for _, sub := range slices.Clone(s.subscribers) {
		sub.fn(ev)
	}
}
