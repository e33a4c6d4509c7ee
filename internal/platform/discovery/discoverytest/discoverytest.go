// Package discoverytest provides small fixture helpers for tests that
// need discovery records or batch-delete failures.
package discoverytest

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/applicationdiscoveryservice/types"

	"github.com/imamik/adsweep/internal/platform/discovery"
)

// Records builds records from "agentID:configurationID" pairs.
func Records(pairs ...string) []discovery.Record {
	records := make([]discovery.Record, 0, len(pairs))
	for _, p := range pairs {
		agentID, configurationID, _ := strings.Cut(p, ":")
		records = append(records, discovery.Record{
			AgentID:         agentID,
			ConfigurationID: configurationID,
			Attributes: map[string]string{
				"server.agentId":         agentID,
				"server.configurationId": configurationID,
			},
		})
	}
	return records
}

// Failures builds batch-delete failures from "agentID:message" pairs.
func Failures(pairs ...string) []types.BatchDeleteAgentError {
	failures := make([]types.BatchDeleteAgentError, 0, len(pairs))
	for _, p := range pairs {
		agentID, message, _ := strings.Cut(p, ":")
		failures = append(failures, types.BatchDeleteAgentError{
			AgentId:      aws.String(agentID),
			ErrorMessage: aws.String(message),
		})
	}
	return failures
}
