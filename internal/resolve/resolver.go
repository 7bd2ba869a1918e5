package resolve

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"iou-platform.io/iou/internal/extract"
	"iou-platform.io/iou/internal/pkg/keylock"
	"iou-platform.io/iou/internal/pkg/logger"
	"iou-platform.io/iou/internal/pkg/normalize"
)

// auditSink receives merge records. Nil-safe via the nil check at the
// call site; engine tests pass nil.
type auditSink interface {
	LogEntityMerge(ctx context.Context, entityID string, details map[string]interface{}) error
}

// Resolver maps candidates to canonical entities, creating new ones as
// needed. Writers for a single canonical key are serialized through a
// sharded lock table so concurrent ingestion of the same name cannot
// create duplicates.
type Resolver struct {
	store Store
	locks *keylock.KeyLock
	audit auditSink
}

// Resolution is the outcome of resolving one candidate.
// SourceDomainID is the domain the canonical entity was first seen in,
// which callers need to tell cross-domain matches from same-domain ones.
type Resolution struct {
	EntityID       string
	Created        bool
	SourceDomainID string
}

// New creates a Resolver. audit may be nil.
func New(store Store, locks *keylock.KeyLock, audit auditSink) *Resolver {
	if locks == nil {
		locks = keylock.New(keylock.DefaultShards)
	}
	return &Resolver{store: store, locks: locks, audit: audit}
}

// Resolve maps one candidate to an entity identity. Existing entities
// get their confidence raised to the candidate's when higher; otherwise
// a new entity is created under the per-key lock.
func (r *Resolver) Resolve(ctx context.Context, cand extract.Candidate, domainID string) (Resolution, error) {
	key := normalize.Key(cand.Surface)
	lockKey := key + "|" + cand.Type

	var res Resolution
	err := r.locks.WithLock(lockKey, func() error {
		existing, err := r.store.FindByKey(ctx, key, cand.Type)
		if err != nil {
			return fmt.Errorf("find entity by key: %w", err)
		}
		if existing != nil {
			if cand.Confidence > existing.Confidence {
				if err := r.store.RaiseConfidence(ctx, existing.ID, cand.Confidence); err != nil {
					return fmt.Errorf("raise confidence: %w", err)
				}
			}
			res = Resolution{EntityID: existing.ID, SourceDomainID: existing.SourceDomainID}
			return nil
		}

		rec := &Record{
			ID:             newEntityID(),
			CanonicalName:  cand.Surface,
			CanonicalKey:   key,
			EntityType:     cand.Type,
			Confidence:     cand.Confidence,
			SourceDomainID: domainID,
		}
		if err := r.store.Create(ctx, rec); err != nil {
			return fmt.Errorf("create entity: %w", err)
		}
		res = Resolution{EntityID: rec.ID, Created: true, SourceDomainID: domainID}
		return nil
	})
	return res, err
}

// Merge collapses two entities that canonicalize to the same key. The
// older (lower creation timestamp) entity wins; the loser's
// relationships and memberships are re-pointed onto it and the loser
// row is deleted. Returns the surviving entity ID.
func (r *Resolver) Merge(ctx context.Context, a, b *Record) (string, error) {
	winner, loser := a, b
	if b.CreatedAt.Before(a.CreatedAt) {
		winner, loser = b, a
	}

	lockKey := winner.CanonicalKey + "|" + winner.EntityType
	err := r.locks.WithLock(lockKey, func() error {
		if err := r.store.Repoint(ctx, loser.ID, winner.ID); err != nil {
			return fmt.Errorf("repoint %s -> %s: %w", loser.ID, winner.ID, err)
		}
		if loser.Confidence > winner.Confidence {
			if err := r.store.RaiseConfidence(ctx, winner.ID, loser.Confidence); err != nil {
				return fmt.Errorf("raise confidence on merge: %w", err)
			}
		}
		if err := r.store.Delete(ctx, loser.ID); err != nil {
			return fmt.Errorf("delete merged entity: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if r.audit != nil {
		if err := r.audit.LogEntityMerge(ctx, winner.ID, map[string]interface{}{
			"merged_entity_id": loser.ID,
			"canonical_key":    winner.CanonicalKey,
		}); err != nil {
			// Audit failure never propagates into resolution.
			logger.Warn("entity merge audit write failed",
				zap.String("entity_id", winner.ID),
				zap.Error(err),
			)
		}
	}
	return winner.ID, nil
}

func newEntityID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "ent-" + uuid.New().String()
	}
	return "ent-" + id.String()
}
