// Package handlers implements command execution for the adsweep CLI.
//
// Handlers receive everything they need as arguments; external
// collaborators are constructed through factory function variables so
// tests can substitute mocks.
package handlers

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/imamik/adsweep/internal/config"
	"github.com/imamik/adsweep/internal/platform/discovery"
	"github.com/imamik/adsweep/internal/platform/s3"
	"github.com/imamik/adsweep/internal/sweep"
	"github.com/imamik/adsweep/internal/ui"
)

// Factory function variables - can be replaced in tests.
var (
	// newDiscoveryClient creates the Application Discovery Service client.
	newDiscoveryClient = func(ctx context.Context, opts discovery.ClientOptions) (discovery.ConfigurationManager, error) {
		return discovery.NewClient(ctx, opts)
	}

	// newExporter creates the S3 audit export client.
	newExporter = func(ctx context.Context, opts s3.Options, bucket, prefix string) (sweep.Exporter, error) {
		return s3.NewClient(ctx, opts, bucket, prefix)
	}

	// newConfirm creates the interactive confirmation gate.
	newConfirm = func() sweep.ConfirmFunc {
		return ui.NewConfirmer().Confirm
	}
)

// Cleanup handles the cleanup command.
//
// It merges the optional config file with the flag overrides, builds the
// discovery client and optional exporter, and runs the sweep pipeline.
// A declined confirmation and an empty result set are both clean exits.
func Cleanup(ctx context.Context, log logr.Logger, configPath string, overrides config.Params) error {
	params, err := resolveParams(configPath, overrides)
	if err != nil {
		return err
	}

	dc, err := newDiscoveryClient(ctx, discovery.ClientOptions{
		Region:    params.Region,
		Profile:   params.Profile,
		AccessKey: params.AccessKey,
		SecretKey: params.SecretKey,
	})
	if err != nil {
		return err
	}

	var exporter sweep.Exporter
	if params.Export.Enabled() {
		exporter, err = newExporter(ctx, s3.Options{
			Region:    params.Region,
			Profile:   params.Profile,
			AccessKey: params.AccessKey,
			SecretKey: params.SecretKey,
		}, params.Export.Bucket, params.Export.Prefix)
		if err != nil {
			return err
		}
	}

	var confirm sweep.ConfirmFunc
	if !params.Unattended {
		confirm = newConfirm()
	}

	outcome, err := sweep.New(dc, exporter, confirm, log, params).Run(ctx)
	if err != nil {
		return describeFailure(err)
	}

	log.Info("run finished", "outcome", outcome.String())
	return nil
}

// resolveParams loads the optional config file, applies flag overrides on
// top, and validates the merged result.
func resolveParams(configPath string, overrides config.Params) (*config.Params, error) {
	params := &config.Params{}
	if configPath != "" {
		loaded, err := config.LoadWithoutValidation(configPath)
		if err != nil {
			return nil, err
		}
		params = loaded
	}

	applyOverrides(params, overrides)

	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return params, nil
}

// applyOverrides copies every explicitly set flag value over the file
// values. Booleans can only be switched on by flags.
func applyOverrides(params *config.Params, o config.Params) {
	if o.AppName != "" {
		params.AppName = o.AppName
	}
	if o.TagKey != "" {
		params.TagKey = o.TagKey
	}
	if o.TagValue != "" {
		params.TagValue = o.TagValue
	}
	if o.Region != "" {
		params.Region = o.Region
	}
	if o.Profile != "" {
		params.Profile = o.Profile
	}
	if o.Export.Bucket != "" {
		params.Export.Bucket = o.Export.Bucket
	}
	if o.Export.Prefix != "" {
		params.Export.Prefix = o.Export.Prefix
	}
	params.Force = params.Force || o.Force
	params.Unattended = params.Unattended || o.Unattended
}

// describeFailure decorates well-known discovery failures with a hint.
// The discovery APIs reject calls from outside the account's home region
// with an opaque authorization error.
func describeFailure(err error) error {
	switch {
	case discovery.IsHomeRegionNotSet(err):
		return fmt.Errorf("%w (no discovery home region is set for this account; configure one in AWS Migration Hub)", err)
	case discovery.IsAuthorizationError(err):
		return fmt.Errorf("%w (check that --region matches the account's discovery home region)", err)
	}
	return err
}
