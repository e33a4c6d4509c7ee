package discovery

import "context"

// MockClient is a mock implementation of ConfigurationManager.
type MockClient struct {
	ListServerConfigurationsFunc   func(ctx context.Context, filters Filters) ([]Record, error)
	DeleteAgentsFunc               func(ctx context.Context, agentIDs []string, force bool) error
	StartConfigurationDeletionFunc func(ctx context.Context, configurationIDs []string) (string, error)
}

// Ensure interface compliance
var _ ConfigurationManager = (*MockClient)(nil)

// ListServerConfigurations mocks the paginated configuration listing.
func (m *MockClient) ListServerConfigurations(ctx context.Context, filters Filters) ([]Record, error) {
	if m.ListServerConfigurationsFunc != nil {
		return m.ListServerConfigurationsFunc(ctx, filters)
	}
	return nil, nil
}

// DeleteAgents mocks the batch agent deletion.
func (m *MockClient) DeleteAgents(ctx context.Context, agentIDs []string, force bool) error {
	if m.DeleteAgentsFunc != nil {
		return m.DeleteAgentsFunc(ctx, agentIDs, force)
	}
	return nil
}

// StartConfigurationDeletion mocks starting the deletion task.
func (m *MockClient) StartConfigurationDeletion(ctx context.Context, configurationIDs []string) (string, error) {
	if m.StartConfigurationDeletionFunc != nil {
		return m.StartConfigurationDeletionFunc(ctx, configurationIDs)
	}
	return "mock-task-id", nil
}
