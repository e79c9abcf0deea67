// Package memory implements kv.Store on plain maps. Used by tests and by
// ephemeral runs (DB_DRIVER=memory) where persistence does not matter.
package memory

import (
	"context"
	"sync"

	"secretarium/internal/infrastructure/kv"
)

type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
}

func New() *Store {
	return &Store{collections: make(map[string]map[string][]byte)}
}

func (s *Store) Collection(name string) kv.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[name]; !ok {
		s.collections[name] = make(map[string][]byte)
	}
	return &collection{store: s, name: name}
}

func (s *Store) Close() error {
	return nil
}

type collection struct {
	store *Store
	name  string
}

func (c *collection) Get(_ context.Context, key string) ([]byte, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	value, ok := c.store.collections[c.name][key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (c *collection) Put(_ context.Context, key string, value []byte) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	c.store.collections[c.name][key] = stored
	return nil
}

func (c *collection) Delete(_ context.Context, key string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	delete(c.store.collections[c.name], key)
	return nil
}

func (c *collection) ForEach(_ context.Context, fn func(key string, value []byte) error) error {
	c.store.mu.RLock()
	snapshot := make(map[string][]byte, len(c.store.collections[c.name]))
	for k, v := range c.store.collections[c.name] {
		snapshot[k] = v
	}
	c.store.mu.RUnlock()

	for k, v := range snapshot {
		if err := fn(k, v); err != nil {
			return err
		}
	}
	return nil
}
