package resolve

import (
	"context"
	"fmt"

	"iou-platform.io/iou/ent"
	"iou-platform.io/iou/ent/entity"
	"iou-platform.io/iou/ent/entitycommunitymembership"
	"iou-platform.io/iou/ent/entityrelationship"
)

// EntStore is the database-backed Store.
type EntStore struct {
	client *ent.Client
}

// NewEntStore creates an EntStore on the shared ent client.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

// FindByKey implements Store.
func (s *EntStore) FindByKey(ctx context.Context, key, entityType string) (*Record, error) {
	row, err := s.client.Entity.Query().
		Where(
			entity.CanonicalKey(key),
			entity.EntityTypeEQ(entity.EntityType(entityType)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query entity: %w", err)
	}
	return &Record{
		ID:             row.ID,
		CanonicalName:  row.CanonicalName,
		CanonicalKey:   row.CanonicalKey,
		EntityType:     string(row.EntityType),
		Confidence:     row.Confidence,
		SourceDomainID: row.SourceDomainID,
		CreatedAt:      row.CreatedAt,
	}, nil
}

// Create implements Store.
func (s *EntStore) Create(ctx context.Context, rec *Record) error {
	_, err := s.client.Entity.Create().
		SetID(rec.ID).
		SetCanonicalName(rec.CanonicalName).
		SetCanonicalKey(rec.CanonicalKey).
		SetEntityType(entity.EntityType(rec.EntityType)).
		SetConfidence(rec.Confidence).
		SetSourceDomainID(rec.SourceDomainID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create entity: %w", err)
	}
	return nil
}

// RaiseConfidence implements Store.
func (s *EntStore) RaiseConfidence(ctx context.Context, id string, c float64) error {
	n, err := s.client.Entity.Update().
		Where(entity.ID(id), entity.ConfidenceLT(c)).
		SetConfidence(c).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("raise confidence: %w", err)
	}
	_ = n // zero rows means the stored confidence was already higher
	return nil
}

// Repoint implements Store. Moves relationship endpoints and community
// memberships from one entity to another inside a single transaction.
func (s *EntStore) Repoint(ctx context.Context, fromID, toID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin repoint tx: %w", err)
	}

	if _, err := tx.EntityRelationship.Update().
		Where(entityrelationship.SourceEntityID(fromID)).
		SetSourceEntityID(toID).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("repoint relationship sources: %w", err)
	}
	if _, err := tx.EntityRelationship.Update().
		Where(entityrelationship.TargetEntityID(fromID)).
		SetTargetEntityID(toID).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("repoint relationship targets: %w", err)
	}
	if _, err := tx.EntityCommunityMembership.Update().
		Where(entitycommunitymembership.EntityID(fromID)).
		SetEntityID(toID).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("repoint memberships: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit repoint: %w", err)
	}
	return nil
}

// Delete implements Store.
func (s *EntStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Entity.DeleteOneID(id).Exec(ctx); err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("delete entity: %w", err)
	}
	return nil
}
