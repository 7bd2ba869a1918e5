package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeRulesFile(t, `
rules:
  - name: woo-openbare-classificatie
    description: Openbaar geclassificeerde objecten vallen onder de Woo.
    logic:
      type: cmp
      field: classification
      cmp: eq
      value: public
    action:
      kind: set_field
      field: is_woo_relevant
      value: true
  - name: bewaartermijn-zaakdossier
    domain_types: [case]
    object_types: [document]
    logic:
      type: cmp
      field: retention_period
      cmp: eq
      value: 0
    action:
      kind: set_field
      fields:
        retention_period: 10
        retention_trigger: case_closed
`)

	specs, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "woo-openbare-classificatie", specs[0].Name)
	assert.Equal(t, []string{"case"}, specs[1].DomainTypes)

	// Every loaded spec compiles into an evaluable rule.
	for _, s := range specs {
		_, err := Compile("rule-x", s.Name, s.DomainTypes, s.ObjectTypes, s.Logic, s.Action, true, nil, nil, testNow)
		require.NoError(t, err)
	}
}

func TestLoadFile_RejectsBrokenRule(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"missing name",
			"rules:\n  - logic:\n      type: cmp\n      field: a\n      cmp: eq\n      value: 1\n    action:\n      kind: set_field\n      field: f\n      value: 1\n",
		},
		{
			"unknown expression type",
			"rules:\n  - name: broken\n    logic:\n      type: regex\n    action:\n      kind: set_field\n      field: f\n      value: 1\n",
		},
		{
			"unknown action kind",
			"rules:\n  - name: broken\n    logic:\n      type: cmp\n      field: a\n      cmp: eq\n      value: 1\n    action:\n      kind: delete_object\n",
		},
		{
			"not yaml",
			"{{{",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRulesFile(t, tt.content)
			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

// The shipped seed file must always load; declaration order there
// decides specificity ties between the fallback retention rules.
func TestLoadFile_ShippedSeedRules(t *testing.T) {
	specs, err := LoadFile(filepath.Join("..", "..", "config", "rules.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, specs)

	names := make(map[string]bool, len(specs))
	var lastIsFallback bool
	for i, s := range specs {
		assert.False(t, names[s.Name], "duplicate rule name %s", s.Name)
		names[s.Name] = true
		lastIsFallback = i == len(specs)-1 && len(s.DomainTypes) == 0 && len(s.ObjectTypes) == 0
	}
	assert.True(t, names["woo-openbare-classificatie"])
	assert.True(t, names["bewaartermijn-besluit"])
	assert.True(t, lastIsFallback, "the catch-all retention rule must be declared last")
}
