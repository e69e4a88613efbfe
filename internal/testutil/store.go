package testutil

import (
	"errors"
	"sync"
)

// ErrStoreDown is returned by FaultyStore operations switched to fail.
var ErrStoreDown = errors.New("store unavailable")

// FaultyStore is an in-memory key-value provider whose reads and writes can
// be made to fail independently.
type FaultyStore struct {
	mu         sync.Mutex
	data       map[string]string
	failGet    bool
	failSet    bool
	failRemove bool
}

func NewFaultyStore() *FaultyStore {
	return &FaultyStore{data: make(map[string]string)}
}

// Fail toggles failures for reads, writes and removals.
func (s *FaultyStore) Fail(get, set, remove bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failGet, s.failSet, s.failRemove = get, set, remove
}

// Raw writes value directly, bypassing failure injection. Used to seed corrupt data.
func (s *FaultyStore) Raw(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Has reports whether key is present, bypassing failure injection.
func (s *FaultyStore) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok
}

func (s *FaultyStore) Init() error  { return nil }
func (s *FaultyStore) Load() error  { return nil }
func (s *FaultyStore) Close() error { return nil }

func (s *FaultyStore) GetConfigPath() string { return "faulty" }

func (s *FaultyStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet {
		return "", false, ErrStoreDown
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *FaultyStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSet {
		return ErrStoreDown
	}
	s.data[key] = value
	return nil
}

func (s *FaultyStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failRemove {
		return ErrStoreDown
	}
	delete(s.data, key)
	return nil
}
