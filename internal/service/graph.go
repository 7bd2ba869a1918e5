package service

import (
	"context"
	"fmt"

	"iou-platform.io/iou/ent"
	entcommunity "iou-platform.io/iou/ent/community"
	"iou-platform.io/iou/ent/entity"
	"iou-platform.io/iou/ent/entitycommunitymembership"
	"iou-platform.io/iou/ent/entityrelationship"
	"iou-platform.io/iou/ent/graphgeneration"
	apperrors "iou-platform.io/iou/internal/pkg/errors"
)

// GraphService serves read queries over the entity graph and its
// community structure. Community reads always join on the latest
// generation marker, so a partially written generation is never
// observable.
type GraphService struct {
	client *ent.Client
}

// NewGraphService creates a GraphService.
func NewGraphService(client *ent.Client) *GraphService {
	return &GraphService{client: client}
}

// ListEntities returns entities, optionally filtered by type, by
// descending confidence then name.
func (s *GraphService) ListEntities(ctx context.Context, entityType string, limit int) ([]*ent.Entity, error) {
	q := s.client.Entity.Query()
	if entityType != "" {
		q = q.Where(entity.EntityTypeEQ(entity.EntityType(entityType)))
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	entities, err := q.
		Order(ent.Desc(entity.FieldConfidence), ent.Asc(entity.FieldCanonicalName)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	return entities, nil
}

// EntityRelations is one entity with its edges in both directions.
type EntityRelations struct {
	Entity   *ent.Entity               `json:"entity"`
	Outgoing []*ent.EntityRelationship `json:"outgoing"`
	Incoming []*ent.EntityRelationship `json:"incoming"`
}

// GetEntityRelations returns an entity and its relationships in both
// directions, strongest first.
func (s *GraphService) GetEntityRelations(ctx context.Context, entityID string) (*EntityRelations, error) {
	e, err := s.client.Entity.Get(ctx, entityID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeEntityNotFound,
				fmt.Sprintf("entity %s not found", entityID))
		}
		return nil, fmt.Errorf("get entity: %w", err)
	}

	outgoing, err := s.client.EntityRelationship.Query().
		Where(entityrelationship.SourceEntityID(entityID)).
		Order(ent.Desc(entityrelationship.FieldWeight)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query outgoing relationships: %w", err)
	}
	incoming, err := s.client.EntityRelationship.Query().
		Where(entityrelationship.TargetEntityID(entityID)).
		Order(ent.Desc(entityrelationship.FieldWeight)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query incoming relationships: %w", err)
	}

	return &EntityRelations{Entity: e, Outgoing: outgoing, Incoming: incoming}, nil
}

// CommunityView is one community with its members resolved.
type CommunityView struct {
	Community *ent.Community `json:"community"`
	Members   []Member       `json:"members"`
}

// Member is one entity's membership in a community.
type Member struct {
	Entity *ent.Entity `json:"entity"`
	Score  float64     `json:"membership_score"`
}

// ListCommunities returns the communities of the latest generation,
// optionally filtered by hierarchy level. Without any generation the
// list is empty, not an error.
func (s *GraphService) ListCommunities(ctx context.Context, level int) ([]CommunityView, error) {
	gen, err := s.latestGeneration(ctx)
	if err != nil || gen == nil {
		return nil, err
	}

	q := s.client.Community.Query().
		Where(entcommunity.Generation(gen.Number))
	if level >= 0 {
		q = q.Where(entcommunity.Level(level))
	}
	communities, err := q.Order(ent.Asc(entcommunity.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list communities: %w", err)
	}

	views := make([]CommunityView, 0, len(communities))
	for _, c := range communities {
		memberships, err := s.client.EntityCommunityMembership.Query().
			Where(
				entitycommunitymembership.CommunityID(c.ID),
				entitycommunitymembership.Generation(gen.Number),
			).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("query memberships: %w", err)
		}
		members := make([]Member, 0, len(memberships))
		for _, m := range memberships {
			e, err := s.client.Entity.Get(ctx, m.EntityID)
			if err != nil {
				if ent.IsNotFound(err) {
					continue
				}
				return nil, fmt.Errorf("load member entity: %w", err)
			}
			members = append(members, Member{Entity: e, Score: m.MembershipScore})
		}
		views = append(views, CommunityView{Community: c, Members: members})
	}
	return views, nil
}

// GraphStats is the aggregate shape of the entity graph.
type GraphStats struct {
	EntityCount       int     `json:"entity_count"`
	RelationshipCount int     `json:"relationship_count"`
	Density           float64 `json:"density"`
	Generation        int64   `json:"generation"`
	CommunityCount    int     `json:"community_count"`
	Levels            int     `json:"levels"`
	Modularity        float64 `json:"modularity"`
	BudgetExceeded    bool    `json:"budget_exceeded"`
}

// Stats computes node/edge counts, graph density and the latest
// detection generation summary.
func (s *GraphService) Stats(ctx context.Context) (*GraphStats, error) {
	nodes, err := s.client.Entity.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count entities: %w", err)
	}
	edges, err := s.client.EntityRelationship.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count relationships: %w", err)
	}

	stats := &GraphStats{
		EntityCount:       nodes,
		RelationshipCount: edges,
		Density:           graphDensity(nodes, edges),
	}

	gen, err := s.latestGeneration(ctx)
	if err != nil {
		return nil, err
	}
	if gen != nil {
		stats.Generation = gen.Number
		stats.CommunityCount = gen.CommunityCount
		stats.Levels = gen.Levels
		stats.Modularity = gen.Modularity
		stats.BudgetExceeded = gen.BudgetExceeded
	}
	return stats, nil
}

func (s *GraphService) latestGeneration(ctx context.Context) (*ent.GraphGeneration, error) {
	gen, err := s.client.GraphGeneration.Query().
		Order(ent.Desc(graphgeneration.FieldNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest generation: %w", err)
	}
	return gen, nil
}

// graphDensity is edge count over the maximum possible undirected edge
// count for the node set.
func graphDensity(nodes, edges int) float64 {
	if nodes < 2 {
		return 0
	}
	return float64(edges) / (float64(nodes) * float64(nodes-1) / 2)
}
