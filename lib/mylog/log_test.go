package mylog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry(t *testing.T) {
	e := entry{
		Component: "storefront",
		Labels:    map[string]string{"visitor": "v1"},
		Trace:     "projects/p/traces/abc",
		Severity:  string(SeverityWarn),
		Message:   "storefront:cart persisted",
	}

	decoded := map[string]any{}
	err := json.Unmarshal([]byte(e.String()), &decoded)
	require.NoError(t, err)

	assert.Equal(t, "WARN", decoded["severity"])
	assert.Equal(t, "projects/p/traces/abc", decoded["logging.googleapis.com/trace"])
	assert.Equal(t, "storefront:cart persisted", decoded["message"])
}

func TestNewIsSelected(t *testing.T) {
	assert.NotNil(t, New)
	assert.NotNil(t, New("storefront"))
}
