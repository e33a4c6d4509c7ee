package commands

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root(logr.Discard())

	require.NotNil(t, cmd)
	assert.Equal(t, "adsweep", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "cleanup")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "version")
}
