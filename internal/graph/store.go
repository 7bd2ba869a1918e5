// Package graph derives typed, weighted entity-to-entity edges from
// co-occurrence, and aggregates them into domain-to-domain relations.
package graph

import "context"

// Edge is a directed typed relationship between two canonical entities.
type Edge struct {
	ID             string
	SourceID       string
	TargetID       string
	Type           string
	Weight         float64
	Confidence     float64
	Observations   int
	SourceDomainID string
	// LastObjectID is the object whose text last strengthened this
	// edge. Re-processing the same object is a no-op, which keeps the
	// per-object pipeline idempotent.
	LastObjectID string
}

// DomainLink is a derived relation between two information domains.
type DomainLink struct {
	ID                string
	FromDomainID      string
	ToDomainID        string
	Strength          float64
	SharedEntityCount int
	Explanation       string
}

// Store is the persistence seam for the relationship builder.
type Store interface {
	// FindEdge returns the edge with the given endpoints and type, or
	// nil when absent.
	FindEdge(ctx context.Context, sourceID, targetID, relType string) (*Edge, error)

	// CreateEdge persists a new edge.
	CreateEdge(ctx context.Context, e *Edge) error

	// UpdateEdge rewrites the accumulated weight, averaged confidence,
	// observation count and last contributing object of an existing
	// edge.
	UpdateEdge(ctx context.Context, id string, weight, confidence float64, observations int, lastObjectID string) error

	// UpsertDomainLink creates or replaces the automatic
	// shared-entities relation for the link's domain pair. Manual rows
	// for the same pair are separate and never touched.
	UpsertDomainLink(ctx context.Context, l *DomainLink) error
}

// Relationship type labels. Values match the persisted enum.
const (
	RelWorksFor         = "works_for"
	RelLocatedIn        = "located_in"
	RelSubjectTo        = "subject_to"
	RelRefersTo         = "refers_to"
	RelRelatesTo        = "relates_to"
	RelCollaboratesWith = "collaborates_with"
	RelPartOf           = "part_of"
)
