package graph

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iou-platform.io/iou/internal/extract"
)

func mention(id, entityType string, start int, prov string) Mention {
	return Mention{
		EntityID:           id,
		EntityType:         entityType,
		Start:              start,
		End:                start + 10,
		Confidence:         0.9,
		ProvenanceDomainID: prov,
	}
}

func TestInferRelationship(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		wantType string
		wantSwap bool
	}{
		{"person near organization", extract.TypePerson, extract.TypeOrganization, RelWorksFor, false},
		{"organization near person", extract.TypeOrganization, extract.TypePerson, RelWorksFor, true},
		{"organization near law", extract.TypeOrganization, extract.TypeLaw, RelSubjectTo, false},
		{"law near organization", extract.TypeLaw, extract.TypeOrganization, RelSubjectTo, true},
		{"organization near location", extract.TypeOrganization, extract.TypeLocation, RelLocatedIn, false},
		{"location near organization", extract.TypeLocation, extract.TypeOrganization, RelLocatedIn, true},
		{"two organizations", extract.TypeOrganization, extract.TypeOrganization, RelCollaboratesWith, false},
		{"anything near policy", extract.TypeLocation, extract.TypePolicy, RelRelatesTo, false},
		{"anything near money", extract.TypeOrganization, extract.TypeMoney, RelRefersTo, false},
		{"fallback", extract.TypeDate, extract.TypeLocation, RelRelatesTo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotSwap := inferRelationship(tt.a, tt.b)
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantSwap, gotSwap)
		})
	}
}

func TestObserve_CreatesEdge(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	b := NewBuilder(store, 300)

	err := b.Observe(ctx, "dom-1", "obj-1", []Mention{
		mention("ent-org", extract.TypeOrganization, 0, "dom-1"),
		mention("ent-law", extract.TypeLaw, 50, "dom-1"),
	})
	require.NoError(t, err)

	edges := store.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, "ent-org", edges[0].SourceID)
	assert.Equal(t, "ent-law", edges[0].TargetID)
	assert.Equal(t, RelSubjectTo, edges[0].Type)
	assert.Equal(t, 1.0, edges[0].Weight)
	assert.Equal(t, 1, edges[0].Observations)
}

func TestObserve_WeightAccumulatesAcrossObjects(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	b := NewBuilder(store, 300)

	mentions := []Mention{
		mention("ent-a", extract.TypeOrganization, 0, "dom-1"),
		mention("ent-b", extract.TypeOrganization, 50, "dom-1"),
	}
	for i := 1; i <= 3; i++ {
		require.NoError(t, b.Observe(ctx, "dom-1", fmt.Sprintf("obj-%d", i), mentions))
	}

	edges := store.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, 3.0, edges[0].Weight)
	assert.Equal(t, 3, edges[0].Observations)
}

func TestObserve_SameObjectIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	b := NewBuilder(store, 300)

	mentions := []Mention{
		mention("ent-a", extract.TypeOrganization, 0, "dom-1"),
		mention("ent-b", extract.TypeLaw, 50, "dom-1"),
	}
	require.NoError(t, b.Observe(ctx, "dom-1", "obj-1", mentions))
	require.NoError(t, b.Observe(ctx, "dom-1", "obj-1", mentions))

	edges := store.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, 1.0, edges[0].Weight, "re-processing the same object must not raise weight")
	assert.Equal(t, 1, edges[0].Observations)
}

func TestObserve_ConfidenceIsRunningAverage(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	b := NewBuilder(store, 300)

	high := []Mention{
		{EntityID: "ent-a", EntityType: extract.TypeOrganization, Start: 0, End: 10, Confidence: 1.0},
		{EntityID: "ent-b", EntityType: extract.TypeOrganization, Start: 20, End: 30, Confidence: 1.0},
	}
	low := []Mention{
		{EntityID: "ent-a", EntityType: extract.TypeOrganization, Start: 0, End: 10, Confidence: 0.5},
		{EntityID: "ent-b", EntityType: extract.TypeOrganization, Start: 20, End: 30, Confidence: 0.5},
	}
	require.NoError(t, b.Observe(ctx, "dom-1", "obj-1", high))
	require.NoError(t, b.Observe(ctx, "dom-1", "obj-2", low))

	edges := store.Edges()
	require.Len(t, edges, 1)
	// Average of observation confidences 1.0 and 0.5, not an overwrite.
	assert.InDelta(t, 0.75, edges[0].Confidence, 1e-9)
}

func TestObserve_WindowBounds(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	b := NewBuilder(store, 100)

	err := b.Observe(ctx, "dom-1", "obj-1", []Mention{
		mention("ent-a", extract.TypeOrganization, 0, "dom-1"),
		mention("ent-b", extract.TypeOrganization, 500, "dom-1"),
	})
	require.NoError(t, err)
	assert.Empty(t, store.Edges(), "mentions beyond the window must not relate")
}

func TestObserve_NoSelfLoops(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	b := NewBuilder(store, 300)

	err := b.Observe(ctx, "dom-1", "obj-1", []Mention{
		mention("ent-a", extract.TypeOrganization, 0, "dom-1"),
		mention("ent-a", extract.TypeOrganization, 50, "dom-1"),
	})
	require.NoError(t, err)
	assert.Empty(t, store.Edges(), "repeated mentions of one entity never self-relate")
}

func TestObserve_DomainLinks(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	b := NewBuilder(store, 300)

	// Two of four distinct entities were first seen in dom-1.
	err := b.Observe(ctx, "dom-2", "obj-1", []Mention{
		mention("ent-a", extract.TypeOrganization, 0, "dom-1"),
		mention("ent-b", extract.TypeLaw, 50, "dom-1"),
		mention("ent-c", extract.TypeLocation, 100, "dom-2"),
		mention("ent-d", extract.TypePolicy, 150, "dom-2"),
	})
	require.NoError(t, err)

	links := store.DomainLinks()
	require.Len(t, links, 1)
	assert.Equal(t, "dom-2", links[0].FromDomainID)
	assert.Equal(t, "dom-1", links[0].ToDomainID)
	assert.Equal(t, 2, links[0].SharedEntityCount)
	assert.InDelta(t, 0.5, links[0].Strength, 1e-9)
	assert.Equal(t, "2 shared entities", links[0].Explanation)
}
