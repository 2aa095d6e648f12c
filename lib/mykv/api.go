package mykv

import (
	"context"
	"os"
)

// KeyValueStore is a string-keyed, string-valued storage facility
//
//go:generate mockgen -source=api.go -package mykv -destination kv_mock.go KeyValueStore
type KeyValueStore interface {
	Get(c context.Context, key string) (string, bool, error)
	Set(c context.Context, key string, value string) error
	Remove(c context.Context, key string) error
}

// New selects the backend from the environment: redis when REDIS_ADDR is set,
// datastore when running on Google Cloud, in-memory otherwise.
func New(c context.Context) (KeyValueStore, func(), error) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		store, cleanup, err := newRedisStore(c, addr)
		if err != nil {
			return nil, nil, err
		}
		return store, cleanup, nil
	}

	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		store, cleanup, err := newDatastoreStore(c)
		if err != nil {
			return nil, nil, err
		}
		return store, cleanup, nil
	}

	return NewMemoryStore(), func() {}, nil
}
