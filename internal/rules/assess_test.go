package rules

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAssess_CompliantObject(t *testing.T) {
	pub := testNow.Add(-time.Hour)
	state := ObjectState{
		ID:                 "obj-1",
		IsWooRelevant:      true,
		WooPublicationDate: &pub,
		PrivacyLevel:       "none",
		RetentionPeriod:    10,
	}

	a := Assess(state, nil, testNow)

	assert.Equal(t, StatusCompliant, a.WooStatus)
	assert.Equal(t, StatusNotApplicable, a.PrivacyStatus)
	assert.Equal(t, StatusCompliant, a.ArchivalStatus)
	assert.Empty(t, a.Issues)
	assert.Equal(t, 1.0, a.OverallScore)
}

func TestAssess_WooRelevantWithoutPublicationDate(t *testing.T) {
	state := ObjectState{ID: "obj-1", IsWooRelevant: true, RetentionPeriod: 10}

	a := Assess(state, nil, testNow)

	assert.Equal(t, StatusActionRequired, a.WooStatus)
	assert.Len(t, a.Issues, 1)
	assert.Equal(t, "openness", a.Issues[0].Category)
	assert.InDelta(t, 0.75, a.OverallScore, 1e-9)
}

func TestAssess_PendingSuggestionsMeanPendingReview(t *testing.T) {
	state := ObjectState{ID: "obj-1", RetentionPeriod: 10, PendingSuggestions: 2}

	a := Assess(state, nil, testNow)

	assert.Equal(t, StatusPendingReview, a.WooStatus)
}

func TestAssess_SpecialPrivacyData(t *testing.T) {
	state := ObjectState{ID: "obj-1", PrivacyLevel: "special", RetentionPeriod: 10}

	a := Assess(state, nil, testNow)

	assert.Equal(t, StatusActionRequired, a.PrivacyStatus)
	assert.InDelta(t, 0.75, a.OverallScore, 1e-9)
}

func TestAssess_ArchivalStates(t *testing.T) {
	t.Run("missing retention period", func(t *testing.T) {
		a := Assess(ObjectState{ID: "obj-1"}, nil, testNow)
		assert.Equal(t, StatusActionRequired, a.ArchivalStatus)
		assert.InDelta(t, 0.85, a.OverallScore, 1e-9)
	})

	t.Run("permanent retention needs no destruction date", func(t *testing.T) {
		a := Assess(ObjectState{ID: "obj-1", RetentionTrigger: "permanent"}, nil, testNow)
		assert.Equal(t, StatusCompliant, a.ArchivalStatus)
	})

	t.Run("overdue destruction", func(t *testing.T) {
		overdue := testNow.Add(-24 * time.Hour)
		a := Assess(ObjectState{ID: "obj-1", RetentionPeriod: 5, DestructionDate: &overdue}, nil, testNow)
		assert.Equal(t, StatusActionRequired, a.ArchivalStatus)
		assert.InDelta(t, 0.75, a.OverallScore, 1e-9)
	})
}

func TestAssess_FlagsJoinIssuesAndScoreClamps(t *testing.T) {
	state := ObjectState{ID: "obj-1", IsWooRelevant: true, PrivacyLevel: "special"}
	flags := []Flag{
		{Severity: SeverityCritical, Category: "privacy", Message: "datalek"},
		{Severity: SeverityCritical, Category: "privacy", Message: "onrechtmatige verwerking"},
	}

	a := Assess(state, flags, testNow)

	// Issues: woo high (.25) + privacy high (.25) + archival medium (.15)
	// + two critical flags (.40 each) push the penalty past 1.0.
	assert.Len(t, a.Issues, 5)
	assert.Equal(t, 0.0, a.OverallScore)
}

func TestAssess_ScoreAlwaysInUnitInterval(t *testing.T) {
	states := []ObjectState{
		{ID: "a"},
		{ID: "b", IsWooRelevant: true, PrivacyLevel: "criminal"},
		{ID: "c", RetentionPeriod: 10, PrivacyLevel: "personal"},
	}
	for _, s := range states {
		a := Assess(s, nil, testNow)
		assert.False(t, math.IsNaN(a.OverallScore))
		assert.GreaterOrEqual(t, a.OverallScore, 0.0)
		assert.LessOrEqual(t, a.OverallScore, 1.0)
	}
}
