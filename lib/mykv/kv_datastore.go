package mykv

import (
	"context"

	"github.com/MarcGrol/cakeshop/lib/mystore"
)

// Entry is the persisted form of a single key
type Entry struct {
	Key   string
	Value string `datastore:",noindex"`
}

type datastoreStore struct {
	store mystore.Store[Entry]
}

func newDatastoreStore(c context.Context) (*datastoreStore, func(), error) {
	store, cleanup, err := mystore.New[Entry](c)
	if err != nil {
		return nil, nil, err
	}

	return NewDatastoreStore(store), cleanup, nil
}

func NewDatastoreStore(store mystore.Store[Entry]) *datastoreStore {
	return &datastoreStore{
		store: store,
	}
}

func (s *datastoreStore) Get(c context.Context, key string) (string, bool, error) {
	entry, exists, err := s.store.Get(c, key)
	if err != nil {
		return "", false, err
	}
	if !exists {
		return "", false, nil
	}

	return entry.Value, true, nil
}

func (s *datastoreStore) Set(c context.Context, key string, value string) error {
	return s.store.Put(c, key, Entry{
		Key:   key,
		Value: value,
	})
}

func (s *datastoreStore) Remove(c context.Context, key string) error {
	return s.store.Delete(c, key)
}
