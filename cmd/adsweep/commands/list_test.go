package commands

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	cmd := List(logr.Discard())

	require.NotNil(t, cmd)
	assert.Equal(t, "list", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	for _, name := range []string{"app-name", "tag-key", "tag-value", "region", "profile"} {
		require.NotNil(t, cmd.Flags().Lookup(name), "flag %s should exist", name)
	}
	assert.Nil(t, cmd.Flags().Lookup("force"), "list must not expose deletion flags")
	assert.Nil(t, cmd.Flags().Lookup("unattended"))
}
