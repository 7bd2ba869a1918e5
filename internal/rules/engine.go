package rules

import (
	"fmt"
	"sort"
	"time"
)

// Rule is a compiled business rule ready for evaluation.
type Rule struct {
	ID          string
	Name        string
	DomainTypes []string // empty means all domain types
	ObjectTypes []string // empty means all object types
	Logic       *Expr
	Action      *Action
	Active      bool
	ValidFrom   *time.Time
	ValidUntil  *time.Time
	CreatedAt   time.Time
}

// Compile parses the stored logic and action maps into a Rule.
func Compile(id, name string, domainTypes, objectTypes []string, logic, action map[string]interface{}, active bool, validFrom, validUntil *time.Time, createdAt time.Time) (*Rule, error) {
	expr, err := ParseExpr(logic)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", name, err)
	}
	act, err := ParseAction(action)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", name, err)
	}
	return &Rule{
		ID:          id,
		Name:        name,
		DomainTypes: domainTypes,
		ObjectTypes: objectTypes,
		Logic:       expr,
		Action:      act,
		Active:      active,
		ValidFrom:   validFrom,
		ValidUntil:  validUntil,
		CreatedAt:   createdAt,
	}, nil
}

// Applicable reports whether the rule targets the given domain/object
// type pair at the given instant. Empty filter dimensions match
// everything.
func (r *Rule) Applicable(domainType, objectType string, now time.Time) bool {
	if !r.Active {
		return false
	}
	if r.ValidFrom != nil && now.Before(*r.ValidFrom) {
		return false
	}
	if r.ValidUntil != nil && now.After(*r.ValidUntil) {
		return false
	}
	if len(r.DomainTypes) > 0 && !containsString(r.DomainTypes, domainType) {
		return false
	}
	if len(r.ObjectTypes) > 0 && !containsString(r.ObjectTypes, objectType) {
		return false
	}
	return true
}

// Specificity orders rules for conflict resolution: the count of
// non-empty filter dimensions. A rule scoped to both a domain type and
// an object type beats a rule scoped to one, which beats a catch-all.
func (r *Rule) Specificity() int {
	s := 0
	if len(r.DomainTypes) > 0 {
		s++
	}
	if len(r.ObjectTypes) > 0 {
		s++
	}
	return s
}

// enumeratedTypes is the secondary specificity key: fewer enumerated
// types means a narrower rule.
func (r *Rule) enumeratedTypes() int {
	return len(r.DomainTypes) + len(r.ObjectTypes)
}

// moreSpecific reports whether r wins a field conflict against other.
// Specificity first, then fewer enumerated types, then the earlier
// creation timestamp, then rule id as the final total order.
func (r *Rule) moreSpecific(other *Rule) bool {
	if r.Specificity() != other.Specificity() {
		return r.Specificity() > other.Specificity()
	}
	if r.enumeratedTypes() != other.enumeratedTypes() {
		return r.enumeratedTypes() < other.enumeratedTypes()
	}
	if !r.CreatedAt.Equal(other.CreatedAt) {
		return r.CreatedAt.Before(other.CreatedAt)
	}
	return r.ID < other.ID
}

// Execution records one rule's evaluation against one object. Faulted
// rules carry Success=false and the fault text; they never abort the
// pass.
type Execution struct {
	RuleID      string
	RuleName    string
	Matched     bool
	Success     bool
	Result      map[string]interface{}
	ErrorDetail string
}

// FieldWrite is the winning set_field value for one field after
// conflict resolution.
type FieldWrite struct {
	Field    string
	Value    interface{}
	RuleID   string
	RuleName string
}

// SuggestionDraft is a suggest action emitted by a matched rule, before
// trust adjustment and persistence.
type SuggestionDraft struct {
	Field      string
	Value      interface{}
	Confidence float64
	RuleID     string
	RuleName   string
}

// Flag is a compliance flag raised by a matched rule.
type Flag struct {
	Severity string
	Category string
	Message  string
	RuleID   string
}

// Outcome aggregates one evaluation pass over all applicable rules.
type Outcome struct {
	Executions  []Execution
	FieldWrites []FieldWrite
	Suggestions []SuggestionDraft
	Flags       []Flag
}

// Evaluate runs every applicable rule against the facts independently
// and resolves set_field conflicts per field. Rules are evaluated in
// name order so executions and outputs are reproducible; evaluation
// order never affects which value wins a conflict.
func Evaluate(facts Facts, ruleset []*Rule, domainType, objectType string, now time.Time) Outcome {
	applicable := make([]*Rule, 0, len(ruleset))
	for _, r := range ruleset {
		if r.Applicable(domainType, objectType, now) {
			applicable = append(applicable, r)
		}
	}
	sort.Slice(applicable, func(i, j int) bool {
		return applicable[i].Name < applicable[j].Name
	})

	out := Outcome{}
	winners := map[string]*Rule{}
	values := map[string]FieldWrite{}

	for _, r := range applicable {
		exec := Execution{RuleID: r.ID, RuleName: r.Name, Success: true}

		matched, err := r.Logic.Eval(facts, now)
		if err != nil {
			exec.Success = false
			exec.ErrorDetail = err.Error()
			out.Executions = append(out.Executions, exec)
			continue
		}
		exec.Matched = matched
		if !matched {
			out.Executions = append(out.Executions, exec)
			continue
		}

		switch r.Action.Kind {
		case ActionSetField:
			result := map[string]interface{}{}
			for _, fv := range r.Action.writes() {
				result[fv.Field] = fv.Value
				prev, taken := winners[fv.Field]
				if !taken || r.moreSpecific(prev) {
					winners[fv.Field] = r
					values[fv.Field] = FieldWrite{Field: fv.Field, Value: fv.Value, RuleID: r.ID, RuleName: r.Name}
				}
			}
			exec.Result = result
		case ActionSuggest:
			out.Suggestions = append(out.Suggestions, SuggestionDraft{
				Field:      r.Action.Field,
				Value:      r.Action.Value,
				Confidence: r.Action.Confidence,
				RuleID:     r.ID,
				RuleName:   r.Name,
			})
			exec.Result = map[string]interface{}{
				"field":      r.Action.Field,
				"value":      r.Action.Value,
				"confidence": r.Action.Confidence,
			}
		case ActionFlag:
			out.Flags = append(out.Flags, Flag{
				Severity: r.Action.Severity,
				Category: r.Action.Category,
				Message:  r.Action.Message,
				RuleID:   r.ID,
			})
			exec.Result = map[string]interface{}{
				"severity": r.Action.Severity,
				"category": r.Action.Category,
				"message":  r.Action.Message,
			}
		}
		out.Executions = append(out.Executions, exec)
	}

	fields := make([]string, 0, len(values))
	for f := range values {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		out.FieldWrites = append(out.FieldWrites, values[f])
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
