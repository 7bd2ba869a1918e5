package graph

import (
	"context"
	"fmt"

	"iou-platform.io/iou/ent"
	"iou-platform.io/iou/ent/domainrelation"
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

// FindEdge implements Store.
func (s *EntStore) FindEdge(ctx context.Context, sourceID, targetID, relType string) (*Edge, error) {
	row, err := s.client.EntityRelationship.Query().
		Where(
			entityrelationship.SourceEntityID(sourceID),
			entityrelationship.TargetEntityID(targetID),
			entityrelationship.RelationshipTypeEQ(entityrelationship.RelationshipType(relType)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query relationship: %w", err)
	}
	return &Edge{
		ID:             row.ID,
		SourceID:       row.SourceEntityID,
		TargetID:       row.TargetEntityID,
		Type:           string(row.RelationshipType),
		Weight:         row.Weight,
		Confidence:     row.Confidence,
		Observations:   row.Observations,
		SourceDomainID: row.SourceDomainID,
		LastObjectID:   row.LastObjectID,
	}, nil
}

// CreateEdge implements Store.
func (s *EntStore) CreateEdge(ctx context.Context, e *Edge) error {
	_, err := s.client.EntityRelationship.Create().
		SetID(e.ID).
		SetSourceEntityID(e.SourceID).
		SetTargetEntityID(e.TargetID).
		SetRelationshipType(entityrelationship.RelationshipType(e.Type)).
		SetWeight(e.Weight).
		SetConfidence(e.Confidence).
		SetObservations(e.Observations).
		SetSourceDomainID(e.SourceDomainID).
		SetLastObjectID(e.LastObjectID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create relationship: %w", err)
	}
	return nil
}

// UpdateEdge implements Store.
func (s *EntStore) UpdateEdge(ctx context.Context, id string, weight, confidence float64, observations int, lastObjectID string) error {
	err := s.client.EntityRelationship.UpdateOneID(id).
		SetWeight(weight).
		SetConfidence(confidence).
		SetObservations(observations).
		SetLastObjectID(lastObjectID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update relationship: %w", err)
	}
	return nil
}

// UpsertDomainLink implements Store. Only automatic shared-entities
// rows are written; manual rows for the same pair are separate rows
// with a different discovery_method and are never touched here.
func (s *EntStore) UpsertDomainLink(ctx context.Context, l *DomainLink) error {
	existing, err := s.client.DomainRelation.Query().
		Where(
			domainrelation.FromDomainID(l.FromDomainID),
			domainrelation.ToDomainID(l.ToDomainID),
			domainrelation.RelationTypeEQ(domainrelation.RelationTypeSharedEntities),
			domainrelation.DiscoveryMethodEQ(domainrelation.DiscoveryMethodAutomatic),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query domain relation: %w", err)
	}

	if existing != nil {
		err = s.client.DomainRelation.UpdateOneID(existing.ID).
			SetStrength(l.Strength).
			SetSharedEntityCount(l.SharedEntityCount).
			SetExplanation(l.Explanation).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("update domain relation: %w", err)
		}
		return nil
	}

	_, err = s.client.DomainRelation.Create().
		SetID(l.ID).
		SetFromDomainID(l.FromDomainID).
		SetToDomainID(l.ToDomainID).
		SetRelationType(domainrelation.RelationTypeSharedEntities).
		SetDiscoveryMethod(domainrelation.DiscoveryMethodAutomatic).
		SetStrength(l.Strength).
		SetSharedEntityCount(l.SharedEntityCount).
		SetExplanation(l.Explanation).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create domain relation: %w", err)
	}
	return nil
}
