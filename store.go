package papertrade

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store is the generic string-keyed persistence gateway the session saves
// its state through. A missing key is not an error: Load reports presence
// separately. Save failures are treated as best-effort by callers.
type Store interface {
	// Load returns the value stored under key, and whether it was present.
	Load(key string) (value string, ok bool, err error)
	// Save stores value under key, replacing any previous value.
	Save(key, value string) error
}

// Keys the session persists its state under. Each is independently loadable
// with a default when absent or malformed.
const (
	KeyWallet    = "wallet"
	KeyStocks    = "stocks"
	KeyPortfolio = "portfolio"
	KeyWatchlist = "watchlist"
	KeyJournal   = "journal"
)

// DirStore persists each key as a flat file in a state directory.
type DirStore struct {
	dir string
}

// NewDirStore creates the state directory if needed and returns a store
// over it.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create state directory %q: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

// Dir returns the state directory path.
func (s *DirStore) Dir() string { return s.dir }

// Load implements Store.
func (s *DirStore) Load(key string) (string, bool, error) {
	content, err := os.ReadFile(filepath.Join(s.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("could not read state %q: %w", key, err)
	}
	return string(content), true, nil
}

// Save implements Store. The value is written to a temporary file first and
// renamed into place, so a crash mid-write never leaves a truncated state
// file behind.
func (s *DirStore) Save(key, value string) error {
	path := filepath.Join(s.dir, key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("could not write state %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("could not replace state %q: %w", key, err)
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

// Load implements Store.
func (s *MemStore) Load(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Save implements Store.
func (s *MemStore) Save(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Snapshot returns a copy of all stored values, for state-comparison tests.
func (s *MemStore) Snapshot() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
