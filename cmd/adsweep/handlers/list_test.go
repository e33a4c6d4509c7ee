package handlers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/adsweep/internal/config"
	"github.com/imamik/adsweep/internal/platform/discovery"
	"github.com/imamik/adsweep/internal/platform/discovery/discoverytest"
)

func captureStdout(t *testing.T) *strings.Builder {
	t.Helper()
	orig := stdout
	t.Cleanup(func() { stdout = orig })
	var b strings.Builder
	stdout = &b
	return &b
}

func TestList(t *testing.T) {
	out := captureStdout(t)

	deleteCalled := false
	mock := &discovery.MockClient{
		ListServerConfigurationsFunc: func(_ context.Context, filters discovery.Filters) ([]discovery.Record, error) {
			assert.Equal(t, "env", filters.TagKey)
			return discoverytest.Records("a1:c1", "a2:c2"), nil
		},
		DeleteAgentsFunc: func(_ context.Context, _ []string, _ bool) error {
			deleteCalled = true
			return nil
		},
	}
	swapFactories(t, mock, nil, nil)

	err := List(context.Background(), logr.Discard(), config.Params{TagKey: "env"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Matched server configurations (2)")
	assert.Contains(t, out.String(), "a1")
	assert.False(t, deleteCalled, "list must never delete")
}

func TestList_NoResults(t *testing.T) {
	out := captureStdout(t)

	mock := &discovery.MockClient{
		ListServerConfigurationsFunc: func(_ context.Context, _ discovery.Filters) ([]discovery.Record, error) {
			return nil, nil
		},
	}
	swapFactories(t, mock, nil, nil)

	err := List(context.Background(), logr.Discard(), config.Params{})
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestList_Error(t *testing.T) {
	mock := &discovery.MockClient{
		ListServerConfigurationsFunc: func(_ context.Context, _ discovery.Filters) ([]discovery.Record, error) {
			return nil, errors.New("throttled")
		},
	}
	swapFactories(t, mock, nil, nil)

	err := List(context.Background(), logr.Discard(), config.Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing configurations")
}
