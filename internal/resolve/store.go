// Package resolve canonicalizes extracted candidates against the
// existing entity set. Resolution is idempotent: the same candidate
// against an unchanged entity set yields the same entity identity.
package resolve

import (
	"context"
	"time"
)

// Record is the resolver's view of a canonical entity.
type Record struct {
	ID             string
	CanonicalName  string
	CanonicalKey   string
	EntityType     string
	Confidence     float64
	SourceDomainID string
	CreatedAt      time.Time
}

// Store is the narrow persistence seam the resolver needs. Two
// implementations exist: ent-backed for production and in-memory for
// engine tests.
type Store interface {
	// FindByKey returns the entity with the given canonical key and
	// type, or nil when absent.
	FindByKey(ctx context.Context, key, entityType string) (*Record, error)

	// Create persists a new entity row.
	Create(ctx context.Context, rec *Record) error

	// RaiseConfidence sets the entity's confidence to c only when c is
	// greater than the stored value. Confidence never decreases.
	RaiseConfidence(ctx context.Context, id string, c float64) error

	// Repoint moves all relationships and community memberships that
	// reference fromID onto toID.
	Repoint(ctx context.Context, fromID, toID string) error

	// Delete removes an entity row. Only called for merge losers whose
	// references have already been repointed.
	Delete(ctx context.Context, id string) error
}
