package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"

	"github.com/imamik/adsweep/internal/config"
	"github.com/imamik/adsweep/internal/platform/discovery"
	"github.com/imamik/adsweep/internal/ui"
)

// stdout is swapped in tests to capture output.
var stdout io.Writer = os.Stdout

// List handles the list command.
//
// It performs the same filtered listing as cleanup but stops there: the
// matched records are rendered and nothing is deleted.
func List(ctx context.Context, log logr.Logger, params config.Params) error {
	dc, err := newDiscoveryClient(ctx, discovery.ClientOptions{
		Region:  params.Region,
		Profile: params.Profile,
	})
	if err != nil {
		return err
	}

	filters := discovery.Filters{
		AppName:  params.AppName,
		TagKey:   params.TagKey,
		TagValue: params.TagValue,
	}
	if filters.Empty() {
		log.Info("no filters set, listing all discovered servers")
	}

	records, err := dc.ListServerConfigurations(ctx, filters)
	if err != nil {
		return describeFailure(fmt.Errorf("listing configurations: %w", err))
	}

	if len(records) == 0 {
		log.Info("no configurations found")
		return nil
	}

	fmt.Fprintln(stdout, ui.RenderRecords(records))
	return nil
}
