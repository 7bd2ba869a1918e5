package community

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iou-platform.io/iou/internal/extract"
)

// twoTriangles builds two densely connected triangles joined by one
// weak edge, the canonical two-community shape.
func twoTriangles() Graph {
	nodes := make([]Node, 6)
	for i := range nodes {
		nodes[i] = Node{ID: fmt.Sprintf("ent-%02d", i), Type: extract.TypeOrganization, Name: fmt.Sprintf("Org %d", i)}
	}
	return Graph{
		Nodes: nodes,
		Edges: []WeightedEdge{
			{A: 0, B: 1, Weight: 1}, {A: 1, B: 2, Weight: 1}, {A: 0, B: 2, Weight: 1},
			{A: 3, B: 4, Weight: 1}, {A: 4, B: 5, Weight: 1}, {A: 3, B: 5, Weight: 1},
			{A: 2, B: 3, Weight: 0.1},
		},
	}
}

func TestDetect_TwoCommunities(t *testing.T) {
	g := twoTriangles()

	res := Detect(context.Background(), g, Options{MaxLevels: 3})

	require.NotEmpty(t, res.Levels)
	level0 := res.Levels[0]
	require.Len(t, level0.Clusters, 2)
	assert.Equal(t, []int{0, 1, 2}, level0.Clusters[0].Members)
	assert.Equal(t, []int{3, 4, 5}, level0.Clusters[1].Members)
	assert.Greater(t, res.Modularity, 0.0)
	assert.False(t, res.BudgetExceeded)
}

func TestDetect_HierarchyLevels(t *testing.T) {
	g := twoTriangles()

	res := Detect(context.Background(), g, Options{MaxLevels: 3})

	// The two level-0 communities roll up into a single root.
	require.Len(t, res.Levels, 2)
	require.Len(t, res.Levels[1].Clusters, 1)
	assert.Len(t, res.Levels[1].Clusters[0].Members, 6)

	// level(child) + 1 = level(parent): every level-0 cluster points at
	// a valid cluster one level up.
	for _, c := range res.Levels[0].Clusters {
		require.GreaterOrEqual(t, c.Parent, 0)
		require.Less(t, c.Parent, len(res.Levels[1].Clusters))
	}
	// The top level has no parent.
	for _, c := range res.Levels[1].Clusters {
		assert.Equal(t, -1, c.Parent)
	}
}

func TestDetect_Deterministic(t *testing.T) {
	g := twoTriangles()

	first := Detect(context.Background(), g, Options{MaxLevels: 3})
	second := Detect(context.Background(), g, Options{MaxLevels: 3})

	assert.Equal(t, first, second, "identical graphs must yield identical partitions")
}

func TestDetect_EmptyGraph(t *testing.T) {
	res := Detect(context.Background(), Graph{}, Options{MaxLevels: 3})
	assert.Empty(t, res.Levels)
	assert.Equal(t, 0.0, res.Modularity)
}

func TestDetect_NoEdges(t *testing.T) {
	g := Graph{Nodes: []Node{{ID: "ent-a"}, {ID: "ent-b"}}}
	res := Detect(context.Background(), g, Options{MaxLevels: 3})
	assert.Empty(t, res.Levels, "disconnected singletons produce no communities")
}

func TestDetect_BudgetExhaustion(t *testing.T) {
	g := twoTriangles()

	res := Detect(context.Background(), g, Options{MaxLevels: 3, Budget: time.Nanosecond})

	assert.True(t, res.BudgetExceeded)
	// Whatever partition exists is valid; nothing was corrupted.
	for _, level := range res.Levels {
		for _, c := range level.Clusters {
			assert.NotEmpty(t, c.Members)
		}
	}
}

func TestDetect_CancelledContext(t *testing.T) {
	g := twoTriangles()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := Detect(ctx, g, Options{MaxLevels: 3})
	assert.True(t, res.BudgetExceeded, "cancellation behaves like budget exhaustion")
}

func TestMembershipScore_Bounds(t *testing.T) {
	g := twoTriangles()
	res := Detect(context.Background(), g, Options{MaxLevels: 3})
	require.NotEmpty(t, res.Levels)

	for _, c := range res.Levels[0].Clusters {
		for _, m := range c.Members {
			score := MembershipScore(g, c.Members, m)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestMembershipScore_IsolatedNode(t *testing.T) {
	g := Graph{Nodes: []Node{{ID: "ent-a"}}}
	assert.Equal(t, 1.0, MembershipScore(g, []int{0}, 0))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name         string
		nodes        []Node
		wantName     string
		wantKeywords []string
	}{
		{
			name: "organization network",
			nodes: []Node{
				{ID: "ent-1", Type: extract.TypeOrganization, Name: "Gemeente Amsterdam"},
				{ID: "ent-2", Type: extract.TypeOrganization, Name: "Gemeente Utrecht"},
				{ID: "ent-3", Type: extract.TypeLocation, Name: "Utrecht"},
			},
			wantName:     "Organisatienetwerk: Gemeente Amsterdam",
			wantKeywords: nil,
		},
		{
			name: "legal framework",
			nodes: []Node{
				{ID: "ent-1", Type: extract.TypeLaw, Name: "Archiefwet"},
				{ID: "ent-2", Type: extract.TypeLaw, Name: "Wet open overheid"},
			},
			wantName: "Wettelijk kader: Archiefwet",
		},
		{
			name: "policy cluster keeps keywords",
			nodes: []Node{
				{ID: "ent-1", Type: extract.TypePolicy, Name: "mobiliteit"},
				{ID: "ent-2", Type: extract.TypePolicy, Name: "duurzaamheid"},
			},
			wantName:     "Beleidsdomein: duurzaamheid",
			wantKeywords: []string{"duurzaamheid", "mobiliteit"},
		},
		{
			name: "geographic cluster",
			nodes: []Node{
				{ID: "ent-1", Type: extract.TypeLocation, Name: "Province of Utrecht"},
				{ID: "ent-2", Type: extract.TypeLocation, Name: "Utrecht"},
				{ID: "ent-3", Type: extract.TypeDate, Name: "12 maart 2024"},
			},
			wantName: "Geografisch cluster: Province of Utrecht",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Graph{Nodes: tt.nodes}
			members := make([]int, len(tt.nodes))
			for i := range members {
				members[i] = i
			}
			name, keywords, summary := Describe(g, members)
			assert.Equal(t, tt.wantName, name)
			if tt.wantKeywords != nil {
				assert.Equal(t, tt.wantKeywords, keywords)
			}
			assert.NotEmpty(t, summary)
		})
	}
}
