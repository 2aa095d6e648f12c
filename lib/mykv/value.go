package mykv

import (
	"context"
	"encoding/json"

	"github.com/MarcGrol/cakeshop/lib/mylog"
)

// Value is a typed view on a single key. Reads and writes fail soft: a broken
// store never surfaces an error, the caller keeps its in-memory state.
type Value[T any] struct {
	store      KeyValueStore
	key        string
	traceLabel string
	logger     mylog.Logger
}

func NewValue[T any](store KeyValueStore, key string, traceLabel string, logger mylog.Logger) Value[T] {
	return Value[T]{
		store:      store,
		key:        key,
		traceLabel: traceLabel,
		logger:     logger,
	}
}

func (v Value[T]) Key() string {
	return v.key
}

// Load returns def when the key is absent, unreadable or malformed
func (v Value[T]) Load(c context.Context, def T) T {
	raw, exists, err := v.store.Get(c, v.key)
	if err != nil {
		v.logger.Log(c, v.traceLabel, mylog.SeverityWarn, "Error loading %s, using default: %s", v.key, err)
		return def
	}
	if !exists {
		return def
	}

	var value T
	err = json.Unmarshal([]byte(raw), &value)
	if err != nil {
		v.logger.Log(c, v.traceLabel, mylog.SeverityWarn, "Error parsing %s, using default: %s", v.key, err)
		return def
	}

	return value
}

func (v Value[T]) Save(c context.Context, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		v.logger.Log(c, v.traceLabel, mylog.SeverityWarn, "Error encoding %s: %s", v.key, err)
		return
	}

	err = v.store.Set(c, v.key, string(raw))
	if err != nil {
		v.logger.Log(c, v.traceLabel, mylog.SeverityWarn, "Error saving %s: %s", v.key, err)
	}
}

func (v Value[T]) Clear(c context.Context) {
	err := v.store.Remove(c, v.key)
	if err != nil {
		v.logger.Log(c, v.traceLabel, mylog.SeverityWarn, "Error removing %s: %s", v.key, err)
	}
}
