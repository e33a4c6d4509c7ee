package discovery

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	ads "github.com/aws/aws-sdk-go-v2/service/applicationdiscoveryservice"
	"github.com/aws/aws-sdk-go-v2/service/applicationdiscoveryservice/types"
)

// Filter field names understood by the ListConfigurations API for
// SERVER-type configuration items.
const (
	filterApplicationName = "server.application.name"
	filterTagKey          = "server.tag.key"
	filterTagValue        = "server.tag.value"
)

// conditionEqual is the only filter condition the sweeper uses.
const conditionEqual = "EQ"

// Attribute keys of interest on a SERVER configuration item.
const (
	attrAgentID         = "server.agentId"
	attrConfigurationID = "server.configurationId"
	attrHostName        = "server.hostName"
)

// API is the subset of the Application Discovery Service client used by
// this package. *ads.Client satisfies it.
type API interface {
	ListConfigurations(ctx context.Context, params *ads.ListConfigurationsInput, optFns ...func(*ads.Options)) (*ads.ListConfigurationsOutput, error)
	BatchDeleteAgents(ctx context.Context, params *ads.BatchDeleteAgentsInput, optFns ...func(*ads.Options)) (*ads.BatchDeleteAgentsOutput, error)
	StartBatchDeleteConfigurationTask(ctx context.Context, params *ads.StartBatchDeleteConfigurationTaskInput, optFns ...func(*ads.Options)) (*ads.StartBatchDeleteConfigurationTaskOutput, error)
}

// ConfigurationManager defines the discovery operations the sweeper depends
// on. Implemented by Client and by MockClient.
type ConfigurationManager interface {
	// ListServerConfigurations returns all SERVER configuration items
	// matching the filters, accumulated across pages in natural order.
	ListServerConfigurations(ctx context.Context, filters Filters) ([]Record, error)
	// DeleteAgents submits one batch-delete request pairing every agent id
	// with the force flag.
	DeleteAgents(ctx context.Context, agentIDs []string, force bool) error
	// StartConfigurationDeletion starts the server-side deletion task for
	// the given configuration ids and returns its task id without waiting
	// for completion.
	StartConfigurationDeletion(ctx context.Context, configurationIDs []string) (string, error)
}

// Filters holds the optional equality predicates applied when listing.
// Empty fields produce no filter clause.
type Filters struct {
	AppName  string
	TagKey   string
	TagValue string
}

// Empty reports whether no predicate is set.
func (f Filters) Empty() bool {
	return f.AppName == "" && f.TagKey == "" && f.TagValue == ""
}

// clauses builds the API filter list. Clause order is fixed: application
// name, tag key, tag value.
func (f Filters) clauses() []types.Filter {
	var out []types.Filter
	for _, p := range []struct {
		value string
		name  string
	}{
		{f.AppName, filterApplicationName},
		{f.TagKey, filterTagKey},
		{f.TagValue, filterTagValue},
	} {
		if p.value == "" {
			continue
		}
		out = append(out, types.Filter{
			Name:      aws.String(p.name),
			Values:    []string{p.value},
			Condition: aws.String(conditionEqual),
		})
	}
	return out
}

// Record is one discovered server configuration item. Attributes carries
// the raw key/value map returned by the service; AgentID and
// ConfigurationID are the two attributes the sweeper consumes.
type Record struct {
	AgentID         string
	ConfigurationID string
	Attributes      map[string]string
}

// HostName returns the server host name attribute, if reported.
func (r Record) HostName() string {
	return r.Attributes[attrHostName]
}

// ClientOptions control session establishment. All fields are optional;
// zero values defer to the ambient AWS environment (shared config files,
// environment variables, instance metadata).
type ClientOptions struct {
	Region    string
	Profile   string
	AccessKey string
	SecretKey string
}

// Client wraps the Application Discovery Service client.
type Client struct {
	api API
}

// NewClient establishes an AWS session from the ambient environment,
// applying any explicit overrides from opts, and returns a discovery
// client bound to it.
func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Client{api: ads.NewFromConfig(cfg)}, nil
}

// NewFromAPI returns a client backed by an existing API implementation.
func NewFromAPI(api API) *Client {
	return &Client{api: api}
}

// ListServerConfigurations implements ConfigurationManager.
func (c *Client) ListServerConfigurations(ctx context.Context, filters Filters) ([]Record, error) {
	input := &ads.ListConfigurationsInput{
		ConfigurationType: types.ConfigurationItemTypeServer,
		Filters:           filters.clauses(),
	}

	var records []Record
	paginator := ads.NewListConfigurationsPaginator(c.api, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list configurations: %w", err)
		}
		for _, item := range page.Configurations {
			records = append(records, Record{
				AgentID:         item[attrAgentID],
				ConfigurationID: item[attrConfigurationID],
				Attributes:      item,
			})
		}
	}
	return records, nil
}

// DeleteAgents implements ConfigurationManager. The service reports
// per-agent failures in the response body rather than as a call error;
// any such failures are returned as a single *AgentDeleteError.
func (c *Client) DeleteAgents(ctx context.Context, agentIDs []string, force bool) error {
	deletes := make([]types.DeleteAgent, 0, len(agentIDs))
	for _, id := range agentIDs {
		deletes = append(deletes, types.DeleteAgent{
			AgentId: aws.String(id),
			Force:   force,
		})
	}

	resp, err := c.api.BatchDeleteAgents(ctx, &ads.BatchDeleteAgentsInput{
		DeleteAgents: deletes,
	})
	if err != nil {
		return fmt.Errorf("failed to delete agents: %w", err)
	}
	if len(resp.Errors) > 0 {
		return &AgentDeleteError{Failures: resp.Errors}
	}
	return nil
}

// StartConfigurationDeletion implements ConfigurationManager.
func (c *Client) StartConfigurationDeletion(ctx context.Context, configurationIDs []string) (string, error) {
	resp, err := c.api.StartBatchDeleteConfigurationTask(ctx, &ads.StartBatchDeleteConfigurationTaskInput{
		ConfigurationType: types.DeletionConfigurationItemTypeServer,
		ConfigurationIds:  configurationIDs,
	})
	if err != nil {
		return "", fmt.Errorf("failed to start configuration deletion task: %w", err)
	}
	return aws.ToString(resp.TaskId), nil
}

// Ensure interface compliance
var _ ConfigurationManager = (*Client)(nil)
