// Package sweep implements the cleanup pipeline: list matching server
// configurations, gate on confirmation, optionally export an audit record,
// then delete the agents and start the configuration deletion task.
//
// The pipeline is strictly sequential. Both deletion steps operate on the
// exact identifier sets produced by the single list call; nothing is
// re-queried in between.
package sweep

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/imamik/adsweep/internal/config"
	"github.com/imamik/adsweep/internal/platform/discovery"
)

// Outcome is the result of a run. A failed run is reported through the
// error return instead of a dedicated outcome value.
type Outcome int

const (
	// OutcomeCompleted means matching resources were found and deleted.
	OutcomeCompleted Outcome = iota
	// OutcomeNothingToDo means no configurations matched the filters.
	OutcomeNothingToDo
	// OutcomeDeclined means the operator did not confirm the deletion.
	OutcomeDeclined
	// OutcomeFailed accompanies a non-nil error.
	OutcomeFailed
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeNothingToDo:
		return "nothing to do"
	case OutcomeDeclined:
		return "declined"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Exporter uploads the matched records before any deletion happens.
type Exporter interface {
	ExportRecords(ctx context.Context, records []discovery.Record) (string, error)
}

// ConfirmFunc presents the matched records to the operator and reports
// whether the deletion may proceed.
type ConfirmFunc func(records []discovery.Record) (bool, error)

// Sweeper runs the cleanup pipeline.
type Sweeper struct {
	discovery discovery.ConfigurationManager
	exporter  Exporter
	confirm   ConfirmFunc
	log       logr.Logger
	params    *config.Params
}

// New creates a sweeper. exporter may be nil when no audit export is
// configured; confirm may be nil only for unattended runs.
func New(dc discovery.ConfigurationManager, exporter Exporter, confirm ConfirmFunc, log logr.Logger, params *config.Params) *Sweeper {
	return &Sweeper{
		discovery: dc,
		exporter:  exporter,
		confirm:   confirm,
		log:       log,
		params:    params,
	}
}

// Run executes the pipeline: list, confirm, export, delete agents, delete
// configurations. It stops at the first failure; a declined confirmation
// or an empty result set ends the run cleanly with the matching outcome.
func (s *Sweeper) Run(ctx context.Context) (Outcome, error) {
	filters := discovery.Filters{
		AppName:  s.params.AppName,
		TagKey:   s.params.TagKey,
		TagValue: s.params.TagValue,
	}

	s.log.Info("listing configurations",
		"app_name", filters.AppName,
		"tag_key", filters.TagKey,
		"tag_value", filters.TagValue,
		"force", s.params.Force,
		"unattended", s.params.Unattended)

	records, err := s.discovery.ListServerConfigurations(ctx, filters)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("listing configurations: %w", err)
	}
	if len(records) == 0 {
		s.log.Info("no configurations found, nothing to do")
		return OutcomeNothingToDo, nil
	}
	s.log.Info("found configurations", "count", len(records))

	if !s.params.Unattended {
		// A missing confirm function cannot authorize a deletion.
		if s.confirm == nil {
			return OutcomeDeclined, nil
		}
		ok, err := s.confirm(records)
		if err != nil {
			return OutcomeFailed, fmt.Errorf("reading confirmation: %w", err)
		}
		if !ok {
			s.log.Info("operation cancelled by user")
			return OutcomeDeclined, nil
		}
	}

	if s.exporter != nil {
		location, err := s.exporter.ExportRecords(ctx, records)
		if err != nil {
			return OutcomeFailed, fmt.Errorf("exporting audit record: %w", err)
		}
		s.log.Info("wrote audit export", "location", location)
	}

	agentIDs := make([]string, 0, len(records))
	configurationIDs := make([]string, 0, len(records))
	for _, r := range records {
		agentIDs = append(agentIDs, r.AgentID)
		configurationIDs = append(configurationIDs, r.ConfigurationID)
	}

	if err := s.discovery.DeleteAgents(ctx, agentIDs, s.params.Force); err != nil {
		return OutcomeFailed, fmt.Errorf("deleting agents: %w", err)
	}
	s.log.Info("deleted agents", "agent_ids", agentIDs)

	taskID, err := s.discovery.StartConfigurationDeletion(ctx, configurationIDs)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("deleting configurations: %w", err)
	}
	s.log.Info("started configuration deletion task",
		"task_id", taskID,
		"configuration_ids", configurationIDs)

	return OutcomeCompleted, nil
}
