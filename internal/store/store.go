// Package store maps named collections to pretty-printed JSON files under
// a single data directory. Every mutation is a full-file rewrite guarded by
// a per-file mutex, so the file on disk is the only source of truth.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type Store struct {
	dir   string
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(dir string) *Store {
	return &Store{
		dir:   dir,
		locks: map[string]*sync.Mutex{},
	}
}

// Dir returns the data directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) locker(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[name]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[name] = lock
	}
	return lock
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load returns the named collection, seeding it on first access. A file
// that exists but does not parse is an error, never silently reseeded.
func Load[T any](s *Store, name string, seed func() T) (T, error) {
	lock := s.locker(name)
	lock.Lock()
	defer lock.Unlock()
	return load(s, name, seed)
}

// Save overwrites the named collection in full.
func Save[T any](s *Store, name string, value T) error {
	lock := s.locker(name)
	lock.Lock()
	defer lock.Unlock()
	return save(s, name, value)
}

// Update runs a read-modify-write cycle under the file lock: load (seeding
// if absent), apply fn to the loaded value, persist. If fn returns an error
// nothing is written and the previous file content stays authoritative.
func Update[T any](s *Store, name string, seed func() T, fn func(*T) error) (T, error) {
	lock := s.locker(name)
	lock.Lock()
	defer lock.Unlock()

	value, err := load(s, name, seed)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := fn(&value); err != nil {
		var zero T
		return zero, err
	}
	if err := save(s, name, value); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

func load[T any](s *Store, name string, seed func() T) (T, error) {
	var zero T
	raw, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		value := seed()
		if err := save(s, name, value); err != nil {
			return zero, err
		}
		return value, nil
	}
	if err != nil {
		return zero, fmt.Errorf("read %s: %w", name, err)
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return zero, fmt.Errorf("parse %s: %w", name, err)
	}
	return value, nil
}

func save[T any](s *Store, name string, value T) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
