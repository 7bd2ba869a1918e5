package resolve

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iou-platform.io/iou/internal/extract"
)

func candidate(surface, entityType string, conf float64) extract.Candidate {
	return extract.Candidate{Surface: surface, Type: entityType, Confidence: conf}
}

func TestResolve_CreatesThenReuses(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	r := New(store, nil, nil)

	first, err := r.Resolve(ctx, candidate("Province of Utrecht", extract.TypeLocation, 0.95), "dom-1")
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, "dom-1", first.SourceDomainID)

	second, err := r.Resolve(ctx, candidate("Province of Utrecht", extract.TypeLocation, 0.95), "dom-2")
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.EntityID, second.EntityID, "same key must resolve to the same identity")
	assert.Equal(t, "dom-1", second.SourceDomainID, "a match reports where the entity was first seen, not the caller's domain")
	assert.Equal(t, 1, store.Len())
}

func TestResolve_KeyNormalization(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	r := New(store, nil, nil)

	a, err := r.Resolve(ctx, candidate("Ministerie van Financiën", extract.TypeOrganization, 0.97), "dom-1")
	require.NoError(t, err)

	// Diacritic-free and differently cased variants collide on the key.
	b, err := r.Resolve(ctx, candidate("MINISTERIE VAN  FINANCIEN", extract.TypeOrganization, 0.97), "dom-2")
	require.NoError(t, err)

	assert.Equal(t, a.EntityID, b.EntityID)
}

func TestResolve_TypeDistinguishesKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	r := New(store, nil, nil)

	loc, err := r.Resolve(ctx, candidate("Utrecht", extract.TypeLocation, 0.93), "dom-1")
	require.NoError(t, err)
	org, err := r.Resolve(ctx, candidate("Utrecht", extract.TypeOrganization, 0.93), "dom-1")
	require.NoError(t, err)

	assert.NotEqual(t, loc.EntityID, org.EntityID, "same surface with different type is a different entity")
}

func TestResolve_ConfidenceMonotone(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	r := New(store, nil, nil)

	res, err := r.Resolve(ctx, candidate("Woo", extract.TypeLaw, 0.80), "dom-1")
	require.NoError(t, err)

	// Higher confidence raises the stored value.
	_, err = r.Resolve(ctx, candidate("Woo", extract.TypeLaw, 0.98), "dom-1")
	require.NoError(t, err)
	assert.Equal(t, 0.98, store.Get(res.EntityID).Confidence)

	// Lower confidence never lowers it.
	_, err = r.Resolve(ctx, candidate("Woo", extract.TypeLaw, 0.50), "dom-1")
	require.NoError(t, err)
	assert.Equal(t, 0.98, store.Get(res.EntityID).Confidence)
}

func TestResolve_ConcurrentSameKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	r := New(store, nil, nil)

	const workers = 16
	ids := make([]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := r.Resolve(ctx, candidate("Gemeente Amsterdam", extract.TypeOrganization, 0.93), "dom-1")
			if err != nil {
				t.Error(err)
				return
			}
			ids[i] = res.EntityID
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, store.Len(), "concurrent ingestion of one name must create one entity")
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestMerge_OlderWins(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	r := New(store, nil, nil)

	older := &Record{
		ID: "ent-old", CanonicalName: "Provincie Utrecht", CanonicalKey: "provincie utrecht",
		EntityType: extract.TypeLocation, Confidence: 0.90,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &Record{
		ID: "ent-new", CanonicalName: "Province of Utrecht", CanonicalKey: "provincie utrecht",
		EntityType: extract.TypeLocation, Confidence: 0.95,
		CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Create(ctx, older))
	require.NoError(t, store.Create(ctx, newer))

	// Argument order must not matter.
	winner, err := r.Merge(ctx, newer, older)
	require.NoError(t, err)
	assert.Equal(t, "ent-old", winner)

	repointed := store.Repointed()
	require.Len(t, repointed, 1)
	assert.Equal(t, [2]string{"ent-new", "ent-old"}, repointed[0])

	assert.Nil(t, store.Get("ent-new"), "loser row is deleted")
	assert.Equal(t, 0.95, store.Get("ent-old").Confidence, "winner takes the max confidence")
}
