package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iou-platform.io/iou/ent"
)

func TestValidStatusTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{"draft", "active", true},
		{"active", "draft", true},
		{"active", "closed", true},
		{"active", "archived", true},
		{"closed", "archived", true},
		{"closed", "active", false},
		{"archived", "active", false},
		{"archived", "draft", false},
		{"draft", "closed", false},
	}
	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, validStatusTransition(tt.from, tt.to))
		})
	}
}

func TestQueryTerms(t *testing.T) {
	assert.Nil(t, queryTerms("a"))
	assert.Nil(t, queryTerms(" "))
	assert.Equal(t, []string{"subsidie"}, queryTerms("  Subsidie "))
	assert.Equal(t, []string{"subsidie", "jeugdzorg"}, queryTerms("Subsidie   JEUGDZORG"))
	// Single-character fragments are dropped, the rest survives.
	assert.Equal(t, []string{"woo"}, queryTerms("Woo a"))
}

func TestScoreObject(t *testing.T) {
	obj := &ent.InformationObject{
		Title:       "Besluit subsidieverlening jeugdzorg",
		Description: "Toekenning subsidie aan stichting",
		ContentText: "De gemeente verleent subsidie voor jeugdzorg in 2024.",
		Tags:        []string{"subsidie", "jeugdzorg"},
	}

	t.Run("field weights accumulate", func(t *testing.T) {
		// "subsidie" hits title (3), tags (2), description (2), content (1).
		assert.Equal(t, 8, scoreObject(obj, []string{"subsidie"}))
	})

	t.Run("title outweighs content", func(t *testing.T) {
		titleOnly := &ent.InformationObject{Title: "subsidie"}
		contentOnly := &ent.InformationObject{ContentText: "subsidie"}
		assert.Greater(t, scoreObject(titleOnly, []string{"subsidie"}), scoreObject(contentOnly, []string{"subsidie"}))
	})

	t.Run("all terms must match", func(t *testing.T) {
		assert.Equal(t, 0, scoreObject(obj, []string{"subsidie", "parkeerbeleid"}))
	})

	t.Run("matching is diacritic and case insensitive", func(t *testing.T) {
		accented := &ent.InformationObject{Title: "Ministerie van Financiën"}
		assert.Equal(t, weightTitle, scoreObject(accented, queryTerms("FINANCIEN")))
	})
}

func TestSearchHitOrdering(t *testing.T) {
	// Higher score first; equal scores break on recency.
	now := time.Now()
	older := &ent.InformationObject{Title: "subsidie", CreatedAt: now.Add(-time.Hour)}
	newer := &ent.InformationObject{Title: "subsidie", CreatedAt: now}

	assert.Equal(t, scoreObject(older, []string{"subsidie"}), scoreObject(newer, []string{"subsidie"}))
}

func TestRecommendApps(t *testing.T) {
	t.Run("known types are ranked", func(t *testing.T) {
		apps := RecommendApps("case")
		require.NotEmpty(t, apps)
		for i, app := range apps {
			assert.Equal(t, i+1, app.Rank)
			assert.NotEmpty(t, app.Name)
			assert.NotEmpty(t, app.Category)
		}
	})

	t.Run("every domain type has a catalog", func(t *testing.T) {
		for _, dt := range []string{"case", "project", "policy", "expertise"} {
			assert.NotEmpty(t, RecommendApps(dt), dt)
		}
	})

	t.Run("unknown type yields empty list", func(t *testing.T) {
		assert.Empty(t, RecommendApps("unknown"))
	})
}

func TestGraphDensity(t *testing.T) {
	assert.Equal(t, 0.0, graphDensity(0, 0))
	assert.Equal(t, 0.0, graphDensity(1, 0))
	assert.Equal(t, 1.0, graphDensity(3, 3), "triangle is fully connected")
	assert.InDelta(t, 0.5, graphDensity(4, 3), 1e-9)
}
