package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func mustExpr(t *testing.T, raw map[string]interface{}) *Expr {
	t.Helper()
	e, err := ParseExpr(raw)
	require.NoError(t, err)
	return e
}

func TestParseExpr_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
	}{
		{"nil", nil},
		{"unknown type", map[string]interface{}{"type": "regex"}},
		{"cmp without field", map[string]interface{}{"type": "cmp", "cmp": "eq", "value": 1}},
		{"in without set", map[string]interface{}{"type": "in", "field": "x"}},
		{"not with two args", map[string]interface{}{"type": "not", "args": []interface{}{
			map[string]interface{}{"type": "cmp", "field": "a", "cmp": "eq", "value": 1},
			map[string]interface{}{"type": "cmp", "field": "b", "cmp": "eq", "value": 2},
		}}},
		{"date with bad duration", map[string]interface{}{"type": "date", "field": "created_at", "plus": "5 years", "cmp": "before_now"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExpr(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestExprEval(t *testing.T) {
	facts := Facts{
		"classification":   "public",
		"privacy_level":    "none",
		"retention_period": 0,
		"is_woo_relevant":  false,
		"tags":             []string{"subsidie", "jeugdzorg"},
		"title":            "Besluit subsidieverlening",
		"created_at":       time.Date(2018, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name string
		raw  map[string]interface{}
		want bool
	}{
		{
			"eq string match",
			map[string]interface{}{"type": "cmp", "field": "classification", "cmp": "eq", "value": "public"},
			true,
		},
		{
			"eq bool",
			map[string]interface{}{"type": "cmp", "field": "is_woo_relevant", "cmp": "eq", "value": false},
			true,
		},
		{
			"ne",
			map[string]interface{}{"type": "cmp", "field": "privacy_level", "cmp": "ne", "value": "special"},
			true,
		},
		{
			"numeric eq across int and float",
			map[string]interface{}{"type": "cmp", "field": "retention_period", "cmp": "eq", "value": float64(0)},
			true,
		},
		{
			"gt fails on zero",
			map[string]interface{}{"type": "cmp", "field": "retention_period", "cmp": "gt", "value": 0},
			false,
		},
		{
			"contains substring",
			map[string]interface{}{"type": "cmp", "field": "title", "cmp": "contains", "value": "subsidie"},
			true,
		},
		{
			"contains tag",
			map[string]interface{}{"type": "cmp", "field": "tags", "cmp": "contains", "value": "jeugdzorg"},
			true,
		},
		{
			"in hit",
			map[string]interface{}{"type": "in", "field": "classification", "set": []interface{}{"public", "internal"}},
			true,
		},
		{
			"in miss",
			map[string]interface{}{"type": "in", "field": "privacy_level", "set": []interface{}{"special", "criminal"}},
			false,
		},
		{
			"and short-circuits to false",
			map[string]interface{}{"type": "and", "args": []interface{}{
				map[string]interface{}{"type": "cmp", "field": "classification", "cmp": "eq", "value": "public"},
				map[string]interface{}{"type": "cmp", "field": "is_woo_relevant", "cmp": "eq", "value": true},
			}},
			false,
		},
		{
			"or",
			map[string]interface{}{"type": "or", "args": []interface{}{
				map[string]interface{}{"type": "cmp", "field": "classification", "cmp": "eq", "value": "secret"},
				map[string]interface{}{"type": "cmp", "field": "classification", "cmp": "eq", "value": "public"},
			}},
			true,
		},
		{
			"not",
			map[string]interface{}{"type": "not", "args": []interface{}{
				map[string]interface{}{"type": "cmp", "field": "is_woo_relevant", "cmp": "eq", "value": true},
			}},
			true,
		},
		{
			"date older than five years",
			map[string]interface{}{"type": "date", "field": "created_at", "plus": "5y", "cmp": "before_now"},
			true,
		},
		{
			"date not older than ten years",
			map[string]interface{}{"type": "date", "field": "created_at", "plus": "10y", "cmp": "before_now"},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mustExpr(t, tt.raw).Eval(facts, testNow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExprEval_Faults(t *testing.T) {
	facts := Facts{"title": "x"}

	tests := []struct {
		name string
		raw  map[string]interface{}
	}{
		{
			"missing field",
			map[string]interface{}{"type": "cmp", "field": "nonexistent", "cmp": "eq", "value": 1},
		},
		{
			"type mismatch on numeric compare",
			map[string]interface{}{"type": "cmp", "field": "title", "cmp": "gt", "value": 3},
		},
		{
			"date on non-time field",
			map[string]interface{}{"type": "date", "field": "title", "plus": "1y", "cmp": "before_now"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mustExpr(t, tt.raw).Eval(facts, testNow)
			assert.Error(t, err)
		})
	}
}

func TestParseAction(t *testing.T) {
	t.Run("set_field single", func(t *testing.T) {
		a, err := ParseAction(map[string]interface{}{"kind": "set_field", "field": "is_woo_relevant", "value": true})
		require.NoError(t, err)
		assert.Equal(t, []fieldValue{{Field: "is_woo_relevant", Value: true}}, a.writes())
	})

	t.Run("set_field map is ordered", func(t *testing.T) {
		a, err := ParseAction(map[string]interface{}{"kind": "set_field", "fields": map[string]interface{}{
			"retention_trigger": "permanent",
			"retention_period":  20,
		}})
		require.NoError(t, err)
		assert.Equal(t, []fieldValue{
			{Field: "retention_period", Value: 20},
			{Field: "retention_trigger", Value: "permanent"},
		}, a.writes())
	})

	t.Run("suggest requires confidence", func(t *testing.T) {
		_, err := ParseAction(map[string]interface{}{"kind": "suggest", "field": "x", "value": 1})
		assert.Error(t, err)
	})

	t.Run("flag requires known severity", func(t *testing.T) {
		_, err := ParseAction(map[string]interface{}{"kind": "flag", "severity": "urgent", "message": "m"})
		assert.Error(t, err)
	})
}
