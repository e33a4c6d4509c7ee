package discovery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/applicationdiscoveryservice/types"
	"github.com/aws/smithy-go"
)

// AgentDeleteError aggregates the per-agent failures from a batch agent
// deletion. The service deletes what it can and reports the rest; callers
// treat any failure as fatal, so all of them surface in one error.
type AgentDeleteError struct {
	Failures []types.BatchDeleteAgentError
}

// Error formats one line per failed agent.
func (e *AgentDeleteError) Error() string {
	lines := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		lines = append(lines, fmt.Sprintf("Agent %s: %s",
			aws.ToString(f.AgentId), aws.ToString(f.ErrorMessage)))
	}
	return strings.Join(lines, "\n")
}

// IsAuthorizationError reports whether err is an Application Discovery
// Service authorization failure. The usual cause is calling from a region
// other than the account's discovery home region.
func IsAuthorizationError(err error) bool {
	if err == nil {
		return false
	}

	var authErr *types.AuthorizationErrorException
	if errors.As(err, &authErr) {
		return true
	}

	// Fall back to API error code checking
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "AuthorizationErrorException"
	}

	return false
}

// IsHomeRegionNotSet reports whether err indicates the account has no
// discovery home region configured.
func IsHomeRegionNotSet(err error) bool {
	if err == nil {
		return false
	}

	var hrErr *types.HomeRegionNotSetException
	if errors.As(err, &hrErr) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "HomeRegionNotSetException"
	}

	return false
}
