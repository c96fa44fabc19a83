package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// FileStore is a file-based store for CLI use. Each record is one JSON
// file under the base directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based store.
// If baseDir is empty, defaults to ~/.config/egraph/graphs/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "egraph", "graphs")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create graph dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) recordPath(name string) string {
	return filepath.Join(s.baseDir, name+".json")
}

// Save upserts a record under name, writing it as a JSON file.
func (s *FileStore) Save(ctx context.Context, name, notation string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prev *Record
	if existing, err := s.read(name); err == nil {
		prev = &existing
	}
	rec := updated(prev, name, notation)

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return Record{}, fmt.Errorf("marshal record: %w", err)
	}
	if err := os.WriteFile(s.recordPath(name), data, 0600); err != nil {
		return Record{}, fmt.Errorf("write record file: %w", err)
	}
	return rec, nil
}

// Get returns the record stored under name.
func (s *FileStore) Get(ctx context.Context, name string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(name)
}

func (s *FileStore) read(name string) (Record, error) {
	data, err := os.ReadFile(s.recordPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("read record file: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode record file: %w", err)
	}
	return rec, nil
}

// List returns all records sorted by name.
func (s *FileStore) List(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read graph dir: %w", err)
	}

	var recs []Record
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		rec, err := s.read(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			continue // skip unreadable entries
		}
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Name < recs[j].Name })
	return recs, nil
}

// Delete removes the record stored under name.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.recordPath(name))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// Close is a no-op for the file store.
func (s *FileStore) Close(ctx context.Context) error { return nil }
