package mystore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type Entry struct {
	Key   string
	Value string
}

var (
	entry = Entry{Key: "v1:cart", Value: `[{"productId":"cake-1","qty":2}]`}
)

func TestStore(t *testing.T) {
	c := context.TODO()
	store, cleanup, err := NewInMemoryStore[Entry](c)
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := store.Get(c, entry.Key)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put", func(t *testing.T) {
		err = store.Put(c, entry.Key, entry)
		assert.NoError(t, err)
	})

	t.Run("Get found", func(t *testing.T) {
		e, found, err := store.Get(c, entry.Key)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, entry, e)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Delete(c, entry.Key)
		assert.NoError(t, err)

		_, found, err := store.Get(c, entry.Key)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Delete missing", func(t *testing.T) {
		err := store.Delete(c, "unknown")
		assert.NoError(t, err)
	})
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, "Entry", kindOf[Entry]())
	assert.Equal(t, "string", kindOf[string]())
}
