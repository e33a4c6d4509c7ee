package discovery

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/applicationdiscoveryservice/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func TestIsAuthorizationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "typed exception",
			err:  &types.AuthorizationErrorException{},
			want: true,
		},
		{
			name: "wrapped typed exception",
			err:  fmt.Errorf("failed to list configurations: %w", &types.AuthorizationErrorException{}),
			want: true,
		},
		{
			name: "generic API error with matching code",
			err:  &smithy.GenericAPIError{Code: "AuthorizationErrorException"},
			want: true,
		},
		{
			name: "generic API error with other code",
			err:  &smithy.GenericAPIError{Code: "InvalidParameterException"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsAuthorizationError(tt.err))
		})
	}
}

func TestIsHomeRegionNotSet(t *testing.T) {
	t.Parallel()

	assert.False(t, IsHomeRegionNotSet(nil))
	assert.True(t, IsHomeRegionNotSet(&types.HomeRegionNotSetException{}))
	assert.True(t, IsHomeRegionNotSet(&smithy.GenericAPIError{Code: "HomeRegionNotSetException"}))
	assert.False(t, IsHomeRegionNotSet(errors.New("boom")))
}

func TestAgentDeleteError_OneLinePerFailure(t *testing.T) {
	t.Parallel()

	err := &AgentDeleteError{
		Failures: []types.BatchDeleteAgentError{
			{AgentId: strPtr("a1"), ErrorMessage: strPtr("still reporting")},
			{AgentId: strPtr("a2"), ErrorMessage: strPtr("not found")},
			{AgentId: strPtr("a3"), ErrorMessage: strPtr("internal error")},
		},
	}

	assert.Equal(t, "Agent a1: still reporting\nAgent a2: not found\nAgent a3: internal error", err.Error())
}

func strPtr(s string) *string { return &s }
