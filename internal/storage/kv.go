// Package storage persists the task collection and theme preference in a
// local string-keyed store.
package storage

import (
	"fmt"
	"strings"
)

// KV is a durable string-keyed store. Every Set overwrites the value
// stored under the key.
type KV interface {
	// Get returns the value under key. ok is false if the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set overwrites the value under key.
	Set(key, value string) error
	// Close releases any resources held by the store.
	Close() error
}

// Backend names a KV implementation.
type Backend string

// Supported backends.
const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// ParseBackend parses a backend name.
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case BackendFile, "":
		return BackendFile, nil
	case BackendSQLite:
		return BackendSQLite, nil
	case BackendMemory:
		return BackendMemory, nil
	}
	return "", fmt.Errorf("invalid storage backend %q (want file, sqlite or memory)", s)
}

// MemoryKV is an in-process KV, mostly useful for tests.
type MemoryKV struct {
	values map[string]string
	// Err, if set, is returned by every Get and Set.
	Err error
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get implements KV.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	if m.Err != nil {
		return "", false, m.Err
	}
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements KV.
func (m *MemoryKV) Set(key, value string) error {
	if m.Err != nil {
		return m.Err
	}
	m.values[key] = value
	return nil
}

// Close implements KV.
func (m *MemoryKV) Close() error {
	return nil
}
