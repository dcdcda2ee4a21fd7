package bullboard

import (
	"sort"
	"sync"
)

// MemoryStore is an in-memory EventStore. Data does not survive the process.
//
// A single mutex guards the backing map so concurrent appends from multiple
// goroutines never interleave or lose writes, and reads observe a consistent
// snapshot.
type MemoryStore struct {
	mu     sync.Mutex
	events map[string][]Event
}

// NewMemoryStore creates an empty in-memory event store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{events: make(map[string][]Event)}
}

// Append implements EventStore.
func (s *MemoryStore) Append(ledgerID string, events []Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[ledgerID] = append(s.events[ledgerID], events...)
	return nil
}

// Read implements EventStore. The returned slice is a snapshot copy, sorted
// by creation time ascending; ties keep their append order.
func (s *MemoryStore) Read(ledgerID string) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.events[ledgerID]
	if !ok {
		return nil, &LedgerNotFoundError{LedgerID: ledgerID}
	}

	events := make([]Event, len(stored))
	copy(events, stored)
	sort.SliceStable(events, func(i, j int) bool { return events[i].When().Before(events[j].When()) })
	return events, nil
}
