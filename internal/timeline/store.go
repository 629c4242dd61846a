package timeline

import (
	"fmt"
	"sort"
)

// DefaultLimit caps a listing when the caller does not ask for one.
const DefaultLimit = 10

// Store holds the event sequence. Events are fixed at construction, so
// reads need no locking.
type Store struct {
	events []Event
}

// NewStore creates a store over the given events.
func NewStore(events []Event) *Store {
	return &Store{events: events}
}

// List returns events newest-first, optionally filtered by type and capped
// at limit. A limit of zero or less falls back to DefaultLimit.
func (s *Store) List(typ EventType, limit int) []Event {
	if limit <= 0 {
		limit = DefaultLimit
	}

	events := make([]Event, 0, len(s.events))
	for _, e := range s.events {
		if typ != "" && e.Type != typ {
			continue
		}
		events = append(events, e)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})

	if len(events) > limit {
		events = events[:limit]
	}
	return events
}

// Get returns the event with the given ID.
func (s *Store) Get(id int) (Event, error) {
	for _, e := range s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return Event{}, fmt.Errorf("timeline: event %d not found", id)
}

// Len reports the number of stored events.
func (s *Store) Len() int {
	return len(s.events)
}
