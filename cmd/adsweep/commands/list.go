package commands

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/imamik/adsweep/cmd/adsweep/handlers"
	"github.com/imamik/adsweep/internal/config"
)

// List returns the list command.
//
// The list command is the dry-run counterpart of cleanup: it renders the
// matching server configurations without deleting anything.
func List(log logr.Logger) *cobra.Command {
	var params config.Params

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List matching server configurations without deleting them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.List(cmd.Context(), log, params)
		},
	}

	cmd.Flags().StringVarP(&params.AppName, "app-name", "a", "", "Filter by application name")
	cmd.Flags().StringVarP(&params.TagKey, "tag-key", "k", "", "Filter by tag key")
	cmd.Flags().StringVarP(&params.TagValue, "tag-value", "v", "", "Filter by tag value")
	cmd.Flags().StringVar(&params.Region, "region", "", "AWS region (defaults to the ambient configuration)")
	cmd.Flags().StringVar(&params.Profile, "profile", "", "AWS shared config profile")

	return cmd
}
