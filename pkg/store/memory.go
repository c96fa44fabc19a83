package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory store for development and testing.
// It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Save upserts a record under name.
func (s *MemoryStore) Save(ctx context.Context, name, notation string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prev *Record
	if existing, ok := s.records[name]; ok {
		prev = &existing
	}
	rec := updated(prev, name, notation)
	s.records[name] = rec
	return rec, nil
}

// Get returns the record stored under name.
func (s *MemoryStore) Get(ctx context.Context, name string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[name]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// List returns all records sorted by name.
func (s *MemoryStore) List(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Name < recs[j].Name })
	return recs, nil
}

// Delete removes the record stored under name.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[name]; !ok {
		return ErrNotFound
	}
	delete(s.records, name)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error { return nil }
