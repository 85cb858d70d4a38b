package monies

import (
	"fmt"
	"os"
	"path/filepath"
)

// Fixed keys of the persistence collaborator. Values are the JSON forms of
// the ledger entities.
const (
	KeyAccounts     = "accounts"
	KeyTransactions = "transactions"
	KeyLoans        = "loans"
	KeyBills        = "recurringBills"
	KeySecurity     = "security"
	KeyOnboarded    = "isOnboarded"
	KeyUsername     = "username"
	KeyPayWeek      = "payWeek"
)

// Store is the persistence collaborator consumed by the ledger. The ledger
// never interprets the storage medium itself, only this get/set contract.
type Store interface {
	// Get returns the raw value stored under key, or ok=false when absent.
	Get(key string) (value []byte, ok bool, err error)
	// Set stores the raw value under key.
	Set(key string, value []byte) error
}

// DirStore persists each key as a JSON file in a directory on disk.
type DirStore struct {
	dir string
}

// OpenDirStore opens (creating if needed) a vault directory as a Store.
func OpenDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create vault directory %q: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

// Dir returns the directory backing this store.
func (s *DirStore) Dir() string { return s.dir }

func (s *DirStore) path(key string) string { return filepath.Join(s.dir, key+".json") }

func (s *DirStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read %q: %w", key, err)
	}
	return data, true, nil
}

func (s *DirStore) Set(key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	return nil
}

// MemStore is an in-memory Store used by tests and as a throwaway backend.
type MemStore struct {
	values map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

func (s *MemStore) Get(key string) ([]byte, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemStore) Set(key string, value []byte) error {
	s.values[key] = value
	return nil
}
