// Package kvstore is a flat JSON-file key-value store. It backs the favorites
// mirror and the credit counters, the pieces of state that must survive
// restarts without the indexed database being available.
package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{path: filepath.Join(dataDir, "store.json")}, nil
}

// Path returns the path to the backing JSON file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]json.RawMessage), nil
		}
		return nil, err
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		// A corrupt file is treated as empty rather than wedging every
		// consumer behind a parse error.
		return make(map[string]json.RawMessage), nil
	}
	return entries, nil
}

func (s *Store) save(entries map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}

// Get unmarshals the value stored under key into v. It returns false when the
// key is absent.
func (s *Store) Get(key string, v interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return false, fmt.Errorf("failed to read store: %w", err)
	}

	raw, ok := entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("failed to decode entry %q: %w", key, err)
	}
	return true, nil
}

func (s *Store) Set(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return fmt.Errorf("failed to read store: %w", err)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode entry %q: %w", key, err)
	}
	entries[key] = raw

	return s.save(entries)
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return fmt.Errorf("failed to read store: %w", err)
	}
	delete(entries, key)
	return s.save(entries)
}

// Update applies fn to the value under key and writes the result back while
// holding the store lock, giving read-modify-write callers the strongest
// atomicity this store can offer.
func (s *Store) Update(key string, v interface{}, fn func(found bool) (interface{}, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return fmt.Errorf("failed to read store: %w", err)
	}

	raw, found := entries[key]
	if found {
		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("failed to decode entry %q: %w", key, err)
		}
	}

	next, err := fn(found)
	if err != nil {
		return err
	}

	out, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode entry %q: %w", key, err)
	}
	entries[key] = out

	return s.save(entries)
}
