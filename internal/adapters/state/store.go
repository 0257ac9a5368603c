// Package state persists product action outcomes across helper runs.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/swiftbuild/helper/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultFilename is the state file used when no path is given.
const DefaultFilename = ".swift-build-state.json"

// Store implements ports.RecordStore using a flat JSON file keyed by
// product and action.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.Record
}

// NewStore creates a RecordStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.Record),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func key(product, action string) string {
	return product + "/" + action
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read state file")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal state file")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal state file")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create state directory")
	}

	//nolint:gosec // path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write state file")
	}

	return nil
}

// Get retrieves the record for a product action.
// Returns nil, nil if not found.
func (s *Store) Get(product, action string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[key(product, action)]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record and persists the file.
func (s *Store) Put(record domain.Record) error {
	s.mu.Lock()
	s.cache[key(record.Product, record.Action)] = record
	s.mu.Unlock()

	return s.save()
}

// All returns every stored record, ordered by product then action.
func (s *Store) All() ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.Record, 0, len(s.cache))
	for _, record := range s.cache {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Product != records[j].Product {
			return records[i].Product < records[j].Product
		}
		return records[i].Action < records[j].Action
	})
	return records, nil
}
