// Package discovery provides a client for AWS Application Discovery Service.
//
// It wraps the SDK client behind a narrow interface covering the three
// operations the sweeper needs: listing server configurations, batch
// deleting agents, and starting a configuration deletion task. A MockClient
// is provided for tests.
package discovery
