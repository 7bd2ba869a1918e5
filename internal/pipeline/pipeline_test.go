package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iou-platform.io/iou/ent"
	"iou-platform.io/iou/internal/extract"
	"iou-platform.io/iou/internal/graph"
	"iou-platform.io/iou/internal/pkg/logger"
	"iou-platform.io/iou/internal/pkg/worker"
	"iou-platform.io/iou/internal/resolve"
	"iou-platform.io/iou/internal/rules"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

func TestEntityDrafts_PolicyThemesBecomeTagSuggestions(t *testing.T) {
	p := &Pipeline{}
	candidates := []extract.Candidate{
		{Surface: "duurzaamheid", Type: extract.TypePolicy, Confidence: 0.80},
		{Surface: "Gemeente Utrecht", Type: extract.TypeOrganization, Confidence: 0.93},
		{Surface: "duurzaamheid", Type: extract.TypePolicy, Confidence: 0.80}, // duplicate
		{Surface: "mobiliteit", Type: extract.TypePolicy, Confidence: 0.80},
	}

	drafts := p.entityDrafts(candidates)

	require.Len(t, drafts, 2, "only distinct policy themes become drafts")
	assert.Equal(t, "tags", drafts[0].Field)
	assert.Equal(t, "duurzaamheid", drafts[0].Value)
	assert.Equal(t, "ner", drafts[0].Source)
	assert.Equal(t, "policy_theme:duurzaamheid", drafts[0].Pattern)
	assert.Equal(t, 0.80, drafts[0].Confidence)
	assert.Equal(t, "mobiliteit", drafts[1].Value)
}

// Drives extraction, resolution and relationship observation the way
// process does, across two domains sharing the same entities. The
// second domain's object mentions entities first seen in the first
// domain, which must surface as an automatic domain relation.
func TestAnalysis_SharedEntitiesLinkDomains(t *testing.T) {
	ctx := context.Background()
	store := graph.NewMemoryStore()
	p := New(
		nil,
		extract.New(),
		resolve.New(resolve.NewMemoryStore(), nil, nil),
		graph.NewBuilder(store, 300),
		nil, nil, nil, nil,
	)

	text := "De Provincie Utrecht overlegt met het Ministerie van Financiën over de subsidie."

	first := &ent.InformationObject{ID: "obj-1", DomainID: "dom-a", ContentText: text, MimeType: "text/plain"}
	mentions, _ := p.extractAndResolve(ctx, first)
	require.NotEmpty(t, mentions)
	require.NoError(t, p.builder.Observe(ctx, first.DomainID, first.ID, mentions))
	require.Empty(t, store.DomainLinks(), "entities first seen in their own domain must not link it to itself")

	second := &ent.InformationObject{ID: "obj-2", DomainID: "dom-b", ContentText: text, MimeType: "text/plain"}
	mentions, _ = p.extractAndResolve(ctx, second)
	require.NotEmpty(t, mentions)
	for _, m := range mentions {
		assert.Equal(t, "dom-a", m.ProvenanceDomainID, "matched entities keep the domain they were first seen in")
	}
	require.NoError(t, p.builder.Observe(ctx, second.DomainID, second.ID, mentions))

	links := store.DomainLinks()
	require.Len(t, links, 1, "shared cross-domain entities must produce an automatic domain relation")
	assert.Equal(t, "dom-b", links[0].FromDomainID)
	assert.Equal(t, "dom-a", links[0].ToDomainID)
	assert.GreaterOrEqual(t, links[0].SharedEntityCount, 1)
	assert.Greater(t, links[0].Strength, 0.0)
}

func TestEnqueue_FallsBackToDurableJobWhenPoolsReject(t *testing.T) {
	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{IngestPoolSize: 1, AnalysisPoolSize: 1})
	require.NoError(t, err)
	// Closed pools reject every submission, same as saturation would.
	pools.Shutdown()

	var queued []string
	p := New(nil, nil, nil, nil, nil, nil, nil, pools)
	p.SetDurableFallback(func(_ context.Context, objectID string) error {
		queued = append(queued, objectID)
		return nil
	})

	p.Enqueue("obj-1")
	p.EnqueueReanalysis("obj-2")

	assert.Equal(t, []string{"obj-1", "obj-2"}, queued)
}

func TestRuleDrafts(t *testing.T) {
	in := []rules.SuggestionDraft{
		{Field: "is_woo_relevant", Value: true, Confidence: 0.8, RuleName: "woo-besluit-suggestie"},
	}

	drafts := ruleDrafts(in)

	require.Len(t, drafts, 1)
	assert.Equal(t, "rule_based", drafts[0].Source)
	assert.Equal(t, "rule:woo-besluit-suggestie", drafts[0].Pattern)
	assert.Equal(t, 0.8, drafts[0].Confidence)
}
