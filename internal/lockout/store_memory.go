package lockout

import (
	"context"
	"sync"
	"time"
)

// InMemoryStore keeps lockout records in process memory. Suitable for tests
// and single-instance deployments.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		records: make(map[string]*Record),
	}
}

func (s *InMemoryStore) Get(_ context.Context, identifier string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[identifier]
	if !ok {
		return nil, nil
	}
	clone := *record
	return &clone, nil
}

func (s *InMemoryStore) RecordFailure(_ context.Context, identifier string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[identifier]
	if !ok {
		record = &Record{Identifier: identifier}
		s.records[identifier] = record
	}
	record.FailureCount++
	record.LastFailureAt = time.Now()

	clone := *record
	return &clone, nil
}

func (s *InMemoryStore) Update(_ context.Context, record *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *record
	s.records[record.Identifier] = &clone
	return nil
}

func (s *InMemoryStore) Clear(_ context.Context, identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, identifier)
	return nil
}
