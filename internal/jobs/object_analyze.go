package jobs

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"

	"iou-platform.io/iou/internal/pipeline"
)

// ObjectAnalyzeArgs reprocesses one information object through the full
// analysis chain. Carries the object id only.
type ObjectAnalyzeArgs struct {
	ObjectID string `json:"object_id"`
}

// Kind returns the job kind identifier for object analysis.
func (ObjectAnalyzeArgs) Kind() string { return "object_analyze" }

// InsertOpts deduplicates pending analysis of the same object.
func (ObjectAnalyzeArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: []rivertype.JobState{rivertype.JobStateAvailable, rivertype.JobStateScheduled},
		},
	}
}

// ObjectAnalyzeWorker runs the analysis pipeline for one object.
type ObjectAnalyzeWorker struct {
	river.WorkerDefaults[ObjectAnalyzeArgs]
	pipeline *pipeline.Pipeline
}

// NewObjectAnalyzeWorker creates an analysis worker.
func NewObjectAnalyzeWorker(p *pipeline.Pipeline) *ObjectAnalyzeWorker {
	return &ObjectAnalyzeWorker{pipeline: p}
}

// Work runs the pipeline synchronously; stage failures are absorbed
// inside the pipeline, only infrastructure failures retry the job.
func (w *ObjectAnalyzeWorker) Work(ctx context.Context, job *river.Job[ObjectAnalyzeArgs]) error {
	if w == nil || w.pipeline == nil {
		return fmt.Errorf("object analyze worker is not initialized")
	}
	if job.Args.ObjectID == "" {
		return fmt.Errorf("object analyze job carries no object id")
	}
	return w.pipeline.Process(ctx, job.Args.ObjectID)
}
