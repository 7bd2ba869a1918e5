package jobs

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"iou-platform.io/iou/ent"
	"iou-platform.io/iou/ent/entity"
	"iou-platform.io/iou/internal/pkg/logger"
	"iou-platform.io/iou/internal/resolve"
)

// EntityDedupArgs is the periodic job that collapses entities sharing a
// canonical key. Ingestion serializes writers per key, but rows written
// before a gazetteer or normalization change can end up sharing a key
// with newer rows; the sweep merges such collisions with the standard
// older-entity-wins policy.
type EntityDedupArgs struct{}

// Kind returns the job kind identifier for the dedup sweep.
func (EntityDedupArgs) Kind() string { return "entity_dedup" }

// InsertOpts ensures at most one dedup sweep is enqueued per day.
func (EntityDedupArgs) InsertOpts() river.InsertOpts {
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

// EntityDedupWorker merges duplicate entities through the resolver so
// relationships and memberships are repointed and the merge is audited.
type EntityDedupWorker struct {
	river.WorkerDefaults[EntityDedupArgs]
	entClient *ent.Client
	resolver  *resolve.Resolver
}

// NewEntityDedupWorker creates a dedup worker.
func NewEntityDedupWorker(entClient *ent.Client, resolver *resolve.Resolver) *EntityDedupWorker {
	return &EntityDedupWorker{entClient: entClient, resolver: resolver}
}

// Work merges every set of entities sharing (canonical_key, type) down
// to its oldest member. Individual merge failures are logged and the
// sweep continues; the next run retries them.
func (w *EntityDedupWorker) Work(ctx context.Context, _ *river.Job[EntityDedupArgs]) error {
	if w == nil || w.entClient == nil || w.resolver == nil {
		return fmt.Errorf("entity dedup worker is not initialized")
	}

	rows, err := w.entClient.Entity.Query().
		Order(ent.Asc(entity.FieldCanonicalKey)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query entities: %w", err)
	}

	merged := 0
	failed := 0
	for _, group := range duplicateGroups(rows) {
		winner := toRecord(group[0])
		for _, dup := range group[1:] {
			survivorID, err := w.resolver.Merge(ctx, winner, toRecord(dup))
			if err != nil {
				logger.Warn("entity merge failed",
					zap.String("winner_id", winner.ID),
					zap.String("duplicate_id", dup.ID),
					zap.Error(err),
				)
				failed++
				continue
			}
			merged++
			// Merge picks the older row itself; follow its choice for
			// the remaining duplicates in the group.
			if survivorID == dup.ID {
				winner = toRecord(dup)
			}
		}
	}

	logger.Info("entity dedup sweep completed",
		zap.Int("entities", len(rows)),
		zap.Int("merged", merged),
		zap.Int("failed", failed),
	)
	return nil
}

// duplicateGroups partitions rows by (canonical_key, entity_type) and
// returns only the groups with more than one member, each ordered by
// creation time then id so the merge winner is deterministic.
func duplicateGroups(rows []*ent.Entity) [][]*ent.Entity {
	byKey := map[string][]*ent.Entity{}
	for _, row := range rows {
		k := row.CanonicalKey + "|" + string(row.EntityType)
		byKey[k] = append(byKey[k], row)
	}

	keys := make([]string, 0, len(byKey))
	for k, group := range byKey {
		if len(group) > 1 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([][]*ent.Entity, 0, len(keys))
	for _, k := range keys {
		group := byKey[k]
		sort.Slice(group, func(i, j int) bool {
			if !group[i].CreatedAt.Equal(group[j].CreatedAt) {
				return group[i].CreatedAt.Before(group[j].CreatedAt)
			}
			return group[i].ID < group[j].ID
		})
		out = append(out, group)
	}
	return out
}

func toRecord(row *ent.Entity) *resolve.Record {
	return &resolve.Record{
		ID:             row.ID,
		CanonicalName:  row.CanonicalName,
		CanonicalKey:   row.CanonicalKey,
		EntityType:     string(row.EntityType),
		Confidence:     row.Confidence,
		SourceDomainID: row.SourceDomainID,
		CreatedAt:      row.CreatedAt,
	}
}
