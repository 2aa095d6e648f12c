package mykv

import (
	"context"
	"sync"
)

type memoryStore struct {
	sync.Mutex
	items map[string]string
}

func NewMemoryStore() KeyValueStore {
	return &memoryStore{
		items: map[string]string{},
	}
}

func (s *memoryStore) Get(c context.Context, key string) (string, bool, error) {
	s.Lock()
	defer s.Unlock()

	value, exists := s.items[key]
	return value, exists, nil
}

func (s *memoryStore) Set(c context.Context, key string, value string) error {
	s.Lock()
	defer s.Unlock()

	s.items[key] = value
	return nil
}

func (s *memoryStore) Remove(c context.Context, key string) error {
	s.Lock()
	defer s.Unlock()

	delete(s.items, key)
	return nil
}
