package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"iou-platform.io/iou/ent"
	"iou-platform.io/iou/ent/informationobject"
	"iou-platform.io/iou/internal/audit"
	"iou-platform.io/iou/internal/pkg/logger"
)

// RetentionSweepArgs is the periodic job that finds objects whose
// destruction date has passed. Objects are never deleted automatically:
// destruction requires an authorized decision, so the sweep marks and
// reports them.
type RetentionSweepArgs struct{}

// Kind returns the job kind identifier for the retention sweep.
func (RetentionSweepArgs) Kind() string { return "retention_sweep" }

// InsertOpts ensures at most one sweep is enqueued per day.
func (RetentionSweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// RetentionSweepWorker marks overdue objects and writes one audit entry
// per newly overdue object.
type RetentionSweepWorker struct {
	river.WorkerDefaults[RetentionSweepArgs]
	entClient   *ent.Client
	auditLogger *audit.Logger
}

// NewRetentionSweepWorker creates a sweep worker.
func NewRetentionSweepWorker(entClient *ent.Client, auditLogger *audit.Logger) *RetentionSweepWorker {
	return &RetentionSweepWorker{entClient: entClient, auditLogger: auditLogger}
}

// Work flags every object past its destruction date that is not flagged
// yet. The flag lives in the free-form metadata map so re-sweeps are
// idempotent.
func (w *RetentionSweepWorker) Work(ctx context.Context, _ *river.Job[RetentionSweepArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("retention sweep worker is not initialized")
	}

	now := time.Now().UTC()
	overdue, err := w.entClient.InformationObject.Query().
		Where(
			informationobject.DestructionDateNotNil(),
			informationobject.DestructionDateLT(now),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query overdue objects: %w", err)
	}

	flagged := 0
	for _, obj := range overdue {
		if obj.Metadata != nil {
			if _, done := obj.Metadata["destruction_due_since"]; done {
				continue
			}
		}
		meta := obj.Metadata
		if meta == nil {
			meta = map[string]interface{}{}
		}
		meta["destruction_due_since"] = now.Format(time.RFC3339)

		if _, err := w.entClient.InformationObject.UpdateOneID(obj.ID).
			SetMetadata(meta).
			Save(ctx); err != nil {
			logger.Warn("failed to flag overdue object",
				zap.String("object_id", obj.ID),
				zap.Error(err),
			)
			continue
		}
		flagged++

		if w.auditLogger != nil {
			_ = w.auditLogger.LogAction(ctx, "object.destruction_due", "object", obj.ID, "system",
				map[string]interface{}{
					"destruction_date": obj.DestructionDate.Format(time.RFC3339),
				})
		}
	}

	logger.Info("retention sweep completed",
		zap.Int("overdue", len(overdue)),
		zap.Int("newly_flagged", flagged),
	)
	return nil
}
