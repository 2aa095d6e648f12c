package mypubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFakePubSub(t *testing.T) {
	c := context.TODO()
	ps := NewFakePubSub()

	err := ps.CreateTopic(c, "storefront")
	assert.NoError(t, err)

	err = ps.Publish(c, "storefront", `{"a":1}`)
	assert.NoError(t, err)
	err = ps.Publish(c, "storefront", `{"a":2}`)
	assert.NoError(t, err)

	assert.Equal(t, []string{`{"a":1}`, `{"a":2}`}, ps.Published("storefront"))
	assert.Empty(t, ps.Published("other"))
}
