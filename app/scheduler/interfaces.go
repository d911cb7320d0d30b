package scheduler

import (
	"context"

	"github.com/dgavara/fightwire/app/pipeline"
)

// PipelineRunner is the unit of work the scheduler drives. Satisfied by
// pipeline.Runner.
type PipelineRunner interface {
	Run(ctx context.Context) (pipeline.Stats, error)
}

// SchedulerInterface is consumed by the HTTP layer to trigger passes on
// demand.
type SchedulerInterface interface {
	Start()
	Stop()
	TriggerRun() error
}
