package mykv

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/cakeshop/lib/mylog"
)

type line struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}

func TestValue(t *testing.T) {
	c := context.TODO()
	logger := mylog.New("kv-test")

	t.Run("Missing key yields default", func(t *testing.T) {
		// given
		v := NewValue[[]line](NewMemoryStore(), "v1:cart", "v1", logger)

		// when
		got := v.Load(c, []line{})

		// then
		assert.Equal(t, []line{}, got)
	})

	t.Run("Round trip", func(t *testing.T) {
		// given
		v := NewValue[[]line](NewMemoryStore(), "v1:cart", "v1", logger)

		// when
		v.Save(c, []line{{ID: "cake-1", Qty: 3}})

		// then
		assert.Equal(t, []line{{ID: "cake-1", Qty: 3}}, v.Load(c, nil))
	})

	t.Run("Malformed content yields default", func(t *testing.T) {
		// given
		store := NewMemoryStore()
		_ = store.Set(c, "v1:cart", "{not json")
		v := NewValue[[]line](store, "v1:cart", "v1", logger)

		// when
		got := v.Load(c, []line{})

		// then
		assert.Equal(t, []line{}, got)
	})

	t.Run("Unavailable store yields default", func(t *testing.T) {
		// given
		ctrl := gomock.NewController(t)
		store := NewMockKeyValueStore(ctrl)
		store.EXPECT().Get(gomock.Any(), "v1:auth_token").Return("", false, fmt.Errorf("storage unavailable"))
		v := NewValue[*string](store, "v1:auth_token", "v1", logger)

		// when
		got := v.Load(c, nil)

		// then
		assert.Nil(t, got)
	})

	t.Run("Write errors are swallowed", func(t *testing.T) {
		// given
		ctrl := gomock.NewController(t)
		store := NewMockKeyValueStore(ctrl)
		store.EXPECT().Set(gomock.Any(), "v1:cart", `[{"id":"cake-2","qty":1}]`).Return(fmt.Errorf("quota exceeded"))
		store.EXPECT().Remove(gomock.Any(), "v1:cart").Return(fmt.Errorf("quota exceeded"))
		v := NewValue[[]line](store, "v1:cart", "v1", logger)

		// when, then
		assert.NotPanics(t, func() {
			v.Save(c, []line{{ID: "cake-2", Qty: 1}})
			v.Clear(c)
		})
	})

	t.Run("Clear removes the key", func(t *testing.T) {
		// given
		store := NewMemoryStore()
		v := NewValue[string](store, "v1:auth_token", "v1", logger)
		v.Save(c, "abc")

		// when
		v.Clear(c)

		// then
		_, exists, _ := store.Get(c, "v1:auth_token")
		assert.False(t, exists)
		assert.Equal(t, "v1:auth_token", v.Key())
	})
}
