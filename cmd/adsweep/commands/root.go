// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

// Root returns the root command for the adsweep CLI.
//
// The logger is injected once by the entry point and handed down to every
// handler; no command configures logging globally.
func Root(log logr.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adsweep",
		Short: "Clean up AWS Application Discovery Service resources",
	}

	cmd.AddCommand(Cleanup(log))
	cmd.AddCommand(List(log))
	cmd.AddCommand(Version())

	return cmd
}
