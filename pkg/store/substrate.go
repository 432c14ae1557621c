package store

import (
	"errors"
	"sort"
	"sync"
)

// ErrKeyNotFound is returned by substrates for reads of absent keys.
var ErrKeyNotFound = errors.New("store: key not found")

// Substrate is the raw key-value port the store writes through. It is
// injected so the persistence core can run against an in-memory fake in
// tests, and so the on-disk engine can be swapped without touching callers.
type Substrate interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
	Erase(key string) error
	Has(key string) bool
	Keys() []string
}

// Memory is a map-backed substrate for tests.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte

	// FailWrites makes every Write return an error, for exercising the
	// degraded paths.
	FailWrites bool
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, nil
}

func (m *Memory) Write(key string, value []byte) error {
	if m.FailWrites {
		return errors.New("store: write refused")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.values[key] = cp
	return nil
}

func (m *Memory) Erase(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.values[key]
	return ok
}

func (m *Memory) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
