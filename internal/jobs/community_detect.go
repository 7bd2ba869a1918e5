// Package jobs defines River Queue job types for async processing.
// Jobs follow the claim-check pattern: arguments carry identifiers
// only, workers reload state from the database.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"

	"iou-platform.io/iou/internal/community"
)

// CommunityDetectArgs is the periodic graph community detection job.
type CommunityDetectArgs struct{}

// Kind returns the job kind identifier for community detection.
func (CommunityDetectArgs) Kind() string { return "community_detect" }

// InsertOpts ensures at most one detection job is enqueued per hour:
// detection is a full-graph batch, overlapping runs waste work and the
// last commit would win anyway.
func (CommunityDetectArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// CommunityDetectWorker runs one detection pass over the entity graph
// and publishes the result as a new generation.
type CommunityDetectWorker struct {
	river.WorkerDefaults[CommunityDetectArgs]
	runner *community.Runner
}

// NewCommunityDetectWorker creates a detection worker.
func NewCommunityDetectWorker(runner *community.Runner) *CommunityDetectWorker {
	return &CommunityDetectWorker{runner: runner}
}

// Work executes the detection pass. Budget exhaustion inside the runner
// publishes a coarser partition and is not an error.
func (w *CommunityDetectWorker) Work(ctx context.Context, _ *river.Job[CommunityDetectArgs]) error {
	if w == nil || w.runner == nil {
		return fmt.Errorf("community detect worker is not initialized")
	}
	return w.runner.Run(ctx)
}
