package commands

import (
	"errors"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/imamik/adsweep/cmd/adsweep/handlers"
	"github.com/imamik/adsweep/internal/config"
)

// Cleanup returns the cleanup command.
//
// The cleanup command lists Application Discovery Service server
// configurations matching the filters, prompts for confirmation unless
// --unattended is set, then deletes the matching agents and starts the
// configuration deletion task.
func Cleanup(log logr.Logger) *cobra.Command {
	var (
		configPath string
		overrides  config.Params
	)

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete matching agents and configuration records",
		Long: `Cleanup removes Application Discovery Service resources.

It lists SERVER configuration items matching the given filters, shows them,
and after confirmation deletes the collection agents and starts a batch
deletion task for the configuration records. Filters combine with AND; a
run without any filter matches every discovered server.

Before anything is deleted the matched records can be exported to an S3
bucket (--export-bucket) as an audit trail.

Example:
  adsweep cleanup -a web01 -k environment -v staging
  adsweep cleanup -c adsweep.yaml --unattended

WARNING: deletion is irreversible. Deleted agents stop reporting and the
configuration history is removed from the discovery service.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Refuse a bare invocation so a slip of the finger cannot
			// start deleting every discovered server.
			if cmd.Flags().NFlag() == 0 {
				return errors.New("no flags were provided, run with --help to see the available options")
			}
			return handlers.Cleanup(cmd.Context(), log, configPath, overrides)
		},
	}

	cmd.Flags().StringVarP(&overrides.AppName, "app-name", "a", "", "Filter by application name")
	cmd.Flags().StringVarP(&overrides.TagKey, "tag-key", "k", "", "Filter by tag key")
	cmd.Flags().StringVarP(&overrides.TagValue, "tag-value", "v", "", "Filter by tag value")
	cmd.Flags().BoolVarP(&overrides.Force, "force", "f", false, "Force deletion of agents that are still reporting")
	cmd.Flags().BoolVarP(&overrides.Unattended, "unattended", "u", false, "Run without asking for confirmation")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML run-parameter file")
	cmd.Flags().StringVar(&overrides.Region, "region", "", "AWS region (defaults to the ambient configuration)")
	cmd.Flags().StringVar(&overrides.Profile, "profile", "", "AWS shared config profile")
	cmd.Flags().StringVar(&overrides.Export.Bucket, "export-bucket", "", "S3 bucket for the pre-deletion audit export")
	cmd.Flags().StringVar(&overrides.Export.Prefix, "export-prefix", "", "Key prefix for the audit export object")

	return cmd
}
