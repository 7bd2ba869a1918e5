package rules

import (
	"fmt"
	"sort"
)

// Action kinds.
const (
	ActionSetField = "set_field"
	ActionSuggest  = "suggest"
	ActionFlag     = "flag"
)

// Flag severities, ordered by weight in the compliance assessment.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// Action is what a matched rule does. Kind selects the variant.
type Action struct {
	Kind string

	// set_field: either a single Field/Value pair or a Fields map when
	// one rule writes several fields at once.
	Field  string
	Value  interface{}
	Fields map[string]interface{}

	// suggest
	Confidence float64

	// flag
	Severity string
	Category string
	Message  string
}

// ParseAction builds an Action from the decoded action JSON.
func ParseAction(raw map[string]interface{}) (*Action, error) {
	if raw == nil {
		return nil, fmt.Errorf("empty rule action")
	}
	kind, _ := raw["kind"].(string)
	a := &Action{Kind: kind}

	switch kind {
	case ActionSetField:
		a.Field, _ = raw["field"].(string)
		a.Value = raw["value"]
		if fields, ok := raw["fields"].(map[string]interface{}); ok {
			a.Fields = fields
		}
		if a.Field == "" && len(a.Fields) == 0 {
			return nil, fmt.Errorf("set_field action requires field or fields")
		}
	case ActionSuggest:
		a.Field, _ = raw["field"].(string)
		a.Value = raw["value"]
		conf, ok := toFloat(raw["confidence"])
		if a.Field == "" || !ok || conf <= 0 || conf > 1 {
			return nil, fmt.Errorf("suggest action requires field, value and confidence in (0,1]")
		}
		a.Confidence = conf
	case ActionFlag:
		a.Severity, _ = raw["severity"].(string)
		a.Category, _ = raw["category"].(string)
		a.Message, _ = raw["message"].(string)
		switch a.Severity {
		case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		default:
			return nil, fmt.Errorf("flag severity must be critical, high, medium or low")
		}
		if a.Message == "" {
			return nil, fmt.Errorf("flag action requires a message")
		}
	default:
		return nil, fmt.Errorf("unknown action kind %q", kind)
	}
	return a, nil
}

// writes lists the (field, value) pairs a set_field action produces, in
// deterministic field order.
func (a *Action) writes() []fieldValue {
	if a.Kind != ActionSetField {
		return nil
	}
	var out []fieldValue
	if a.Field != "" {
		out = append(out, fieldValue{Field: a.Field, Value: a.Value})
	}
	if len(a.Fields) > 0 {
		keys := make([]string, 0, len(a.Fields))
		for k := range a.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, fieldValue{Field: k, Value: a.Fields[k]})
		}
	}
	return out
}

type fieldValue struct {
	Field string
	Value interface{}
}
