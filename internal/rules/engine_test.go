package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRule(t *testing.T, name string, domainTypes, objectTypes []string, logic, action map[string]interface{}, createdAt time.Time) *Rule {
	t.Helper()
	r, err := Compile("rule-"+name, name, domainTypes, objectTypes, logic, action, true, nil, nil, createdAt)
	require.NoError(t, err)
	return r
}

func cmpLogic(field, op string, value interface{}) map[string]interface{} {
	return map[string]interface{}{"type": "cmp", "field": field, "cmp": op, "value": value}
}

func setField(field string, value interface{}) map[string]interface{} {
	return map[string]interface{}{"kind": "set_field", "field": field, "value": value}
}

func TestEvaluate_PublicClassificationSetsWooRelevance(t *testing.T) {
	rule := testRule(t, "woo-openbare-classificatie", nil, nil,
		cmpLogic("classification", "eq", "public"),
		setField("is_woo_relevant", true),
		testNow,
	)
	facts := Facts{"classification": "public", "is_woo_relevant": false}

	out := Evaluate(facts, []*Rule{rule}, "project", "document", testNow)

	require.Len(t, out.Executions, 1)
	assert.True(t, out.Executions[0].Success)
	assert.True(t, out.Executions[0].Matched)
	require.Len(t, out.FieldWrites, 1)
	assert.Equal(t, "is_woo_relevant", out.FieldWrites[0].Field)
	assert.Equal(t, true, out.FieldWrites[0].Value)
}

func TestEvaluate_MoreSpecificRuleWinsFieldConflict(t *testing.T) {
	catchAll := testRule(t, "catch-all", nil, nil,
		cmpLogic("classification", "eq", "public"),
		setField("is_woo_relevant", true),
		testNow,
	)
	documentOnly := testRule(t, "document-only", nil, []string{"document"},
		cmpLogic("classification", "eq", "public"),
		setField("is_woo_relevant", false),
		testNow.Add(time.Hour), // created later, still wins on specificity
	)
	facts := Facts{"classification": "public"}

	out := Evaluate(facts, []*Rule{catchAll, documentOnly}, "project", "document", testNow.Add(2*time.Hour))

	// Both executed and matched; only the narrower rule's value survives.
	require.Len(t, out.Executions, 2)
	for _, exec := range out.Executions {
		assert.True(t, exec.Matched, exec.RuleName)
	}
	require.Len(t, out.FieldWrites, 1)
	assert.Equal(t, "document-only", out.FieldWrites[0].RuleName)
	assert.Equal(t, false, out.FieldWrites[0].Value)
}

func TestEvaluate_SpecificityTieGoesToEarlierRule(t *testing.T) {
	older := testRule(t, "older", nil, nil,
		cmpLogic("classification", "eq", "public"),
		setField("is_woo_relevant", false),
		testNow,
	)
	newer := testRule(t, "newer", nil, nil,
		cmpLogic("classification", "eq", "public"),
		setField("is_woo_relevant", true),
		testNow.Add(time.Minute),
	)
	facts := Facts{"classification": "public"}

	out := Evaluate(facts, []*Rule{newer, older}, "project", "document", testNow.Add(time.Hour))

	require.Len(t, out.FieldWrites, 1)
	assert.Equal(t, "older", out.FieldWrites[0].RuleName)
}

func TestEvaluate_FewerEnumeratedTypesBreaksDimensionTie(t *testing.T) {
	broad := testRule(t, "broad", nil, []string{"document", "email", "decision"},
		cmpLogic("retention_period", "eq", 0),
		setField("retention_period", 7),
		testNow,
	)
	narrow := testRule(t, "narrow", nil, []string{"decision"},
		cmpLogic("retention_period", "eq", 0),
		setField("retention_period", 20),
		testNow.Add(time.Minute),
	)
	facts := Facts{"retention_period": 0}

	out := Evaluate(facts, []*Rule{broad, narrow}, "project", "decision", testNow.Add(time.Hour))

	require.Len(t, out.FieldWrites, 1)
	assert.Equal(t, "narrow", out.FieldWrites[0].RuleName)
	assert.Equal(t, 20, out.FieldWrites[0].Value)
}

func TestEvaluate_FaultIsRecordedNotFatal(t *testing.T) {
	broken := testRule(t, "broken", nil, nil,
		cmpLogic("no_such_field", "eq", 1),
		setField("is_woo_relevant", true),
		testNow,
	)
	healthy := testRule(t, "healthy", nil, nil,
		cmpLogic("classification", "eq", "public"),
		setField("is_woo_relevant", true),
		testNow,
	)
	facts := Facts{"classification": "public"}

	out := Evaluate(facts, []*Rule{broken, healthy}, "project", "document", testNow)

	require.Len(t, out.Executions, 2)
	byName := map[string]Execution{}
	for _, exec := range out.Executions {
		byName[exec.RuleName] = exec
	}
	assert.False(t, byName["broken"].Success)
	assert.Contains(t, byName["broken"].ErrorDetail, "no_such_field")
	assert.True(t, byName["healthy"].Success)
	require.Len(t, out.FieldWrites, 1)
	assert.Equal(t, "healthy", out.FieldWrites[0].RuleName)
}

func TestEvaluate_Applicability(t *testing.T) {
	logic := cmpLogic("classification", "eq", "public")
	action := setField("is_woo_relevant", true)
	validFrom := testNow.Add(time.Hour)

	inactive := testRule(t, "inactive", nil, nil, logic, action, testNow)
	inactive.Active = false
	notYetValid := testRule(t, "not-yet-valid", nil, nil, logic, action, testNow)
	notYetValid.ValidFrom = &validFrom
	wrongDomain := testRule(t, "wrong-domain", []string{"case"}, nil, logic, action, testNow)
	wrongObject := testRule(t, "wrong-object", nil, []string{"email"}, logic, action, testNow)

	facts := Facts{"classification": "public"}
	out := Evaluate(facts, []*Rule{inactive, notYetValid, wrongDomain, wrongObject}, "project", "document", testNow)

	assert.Empty(t, out.Executions, "no rule is applicable")
	assert.Empty(t, out.FieldWrites)
}

func TestEvaluate_RetentionMatrix(t *testing.T) {
	mk := func(name string, domainTypes, objectTypes []string, years int, trigger string, order int) *Rule {
		return testRule(t, name, domainTypes, objectTypes,
			cmpLogic("retention_period", "eq", 0),
			map[string]interface{}{"kind": "set_field", "fields": map[string]interface{}{
				"retention_period":  years,
				"retention_trigger": trigger,
			}},
			testNow.Add(time.Duration(order)*time.Millisecond),
		)
	}
	ruleset := []*Rule{
		mk("bewaartermijn-besluit", nil, []string{"decision"}, 20, "permanent", 0),
		mk("bewaartermijn-zaakdossier", []string{"case"}, []string{"document"}, 10, "case_closed", 1),
		mk("bewaartermijn-zaak-email", []string{"case"}, []string{"email"}, 5, "case_closed", 2),
		mk("bewaartermijn-beleidsdocument", []string{"policy"}, []string{"document"}, 15, "creation", 3),
		mk("bewaartermijn-expertise", []string{"expertise"}, nil, 5, "creation", 4),
		mk("bewaartermijn-standaard", nil, nil, 7, "creation", 5),
	}

	tests := []struct {
		name        string
		domainType  string
		objectType  string
		wantYears   int
		wantTrigger string
	}{
		{"decision is permanent", "project", "decision", 20, "permanent"},
		{"case document", "case", "document", 10, "case_closed"},
		{"case email", "case", "email", 5, "case_closed"},
		{"policy document", "policy", "document", 15, "creation"},
		{"expertise chat", "expertise", "chat", 5, "creation"},
		{"fallback", "project", "dataset", 7, "creation"},
		{"decision in case domain beats expertise-style single dim", "case", "decision", 20, "permanent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := Facts{"retention_period": 0}
			out := Evaluate(facts, ruleset, tt.domainType, tt.objectType, testNow.Add(time.Hour))

			writes := map[string]interface{}{}
			for _, w := range out.FieldWrites {
				writes[w.Field] = w.Value
			}
			assert.Equal(t, tt.wantYears, writes["retention_period"])
			assert.Equal(t, tt.wantTrigger, writes["retention_trigger"])
		})
	}
}

func TestEvaluate_SuggestAndFlagActions(t *testing.T) {
	suggest := testRule(t, "woo-besluit-suggestie", nil, []string{"decision"},
		cmpLogic("is_woo_relevant", "eq", false),
		map[string]interface{}{"kind": "suggest", "field": "is_woo_relevant", "value": true, "confidence": 0.8},
		testNow,
	)
	flag := testRule(t, "avg-grondslag-signaal", nil, nil,
		map[string]interface{}{"type": "in", "field": "privacy_level", "set": []interface{}{"special", "criminal"}},
		map[string]interface{}{"kind": "flag", "severity": "high", "category": "privacy", "message": "AVG-grondslag vereist"},
		testNow,
	)
	facts := Facts{"is_woo_relevant": false, "privacy_level": "special"}

	out := Evaluate(facts, []*Rule{suggest, flag}, "case", "decision", testNow)

	require.Len(t, out.Suggestions, 1)
	assert.Equal(t, "is_woo_relevant", out.Suggestions[0].Field)
	assert.Equal(t, 0.8, out.Suggestions[0].Confidence)

	require.Len(t, out.Flags, 1)
	assert.Equal(t, SeverityHigh, out.Flags[0].Severity)
	assert.Equal(t, "privacy", out.Flags[0].Category)

	assert.Empty(t, out.FieldWrites, "suggest and flag never write fields directly")
}
