// Package rules implements the compliance rule engine: a tagged
// expression tree over object/domain attributes evaluated by a small
// interpreter, plus deterministic conflict resolution across rules.
package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Facts is the flattened attribute view of one object and its domain
// that rule predicates evaluate against.
type Facts map[string]interface{}

// Expr is one node of the predicate tree. The Type tag selects the
// variant; remaining fields are variant-specific.
type Expr struct {
	Type string // "cmp", "and", "or", "not", "in", "date"

	// cmp, in, date
	Field string

	// cmp: eq, ne, gt, gte, lt, lte, contains
	Cmp   string
	Value interface{}

	// and, or, not
	Args []*Expr

	// in
	Set []interface{}

	// date: (field + Plus) compared to evaluation time
	Plus string // e.g. "5y", "6m", "30d"
}

var durationRe = regexp.MustCompile(`^(\d+)([ymd])$`)

// ParseExpr builds an Expr from the decoded rule_logic JSON.
func ParseExpr(raw map[string]interface{}) (*Expr, error) {
	if raw == nil {
		return nil, fmt.Errorf("empty rule logic")
	}
	typ, _ := raw["type"].(string)
	e := &Expr{Type: typ}

	switch typ {
	case "cmp":
		e.Field, _ = raw["field"].(string)
		e.Cmp, _ = raw["cmp"].(string)
		e.Value = raw["value"]
		if e.Field == "" || e.Cmp == "" {
			return nil, fmt.Errorf("cmp node requires field and cmp")
		}
	case "in":
		e.Field, _ = raw["field"].(string)
		set, _ := raw["set"].([]interface{})
		if e.Field == "" || len(set) == 0 {
			return nil, fmt.Errorf("in node requires field and non-empty set")
		}
		e.Set = set
	case "and", "or", "not":
		args, _ := raw["args"].([]interface{})
		if len(args) == 0 {
			return nil, fmt.Errorf("%s node requires args", typ)
		}
		if typ == "not" && len(args) != 1 {
			return nil, fmt.Errorf("not node requires exactly one arg")
		}
		for i, a := range args {
			m, ok := a.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%s arg %d is not an object", typ, i)
			}
			child, err := ParseExpr(m)
			if err != nil {
				return nil, err
			}
			e.Args = append(e.Args, child)
		}
	case "date":
		e.Field, _ = raw["field"].(string)
		e.Plus, _ = raw["plus"].(string)
		e.Cmp, _ = raw["cmp"].(string)
		if e.Field == "" || !durationRe.MatchString(e.Plus) {
			return nil, fmt.Errorf("date node requires field and a plus duration like 5y, 6m, 30d")
		}
		if e.Cmp != "before_now" && e.Cmp != "after_now" {
			return nil, fmt.Errorf("date cmp must be before_now or after_now")
		}
	default:
		return nil, fmt.Errorf("unknown expression type %q", typ)
	}
	return e, nil
}

// Eval evaluates the predicate against facts at the given instant.
// A missing field or a type mismatch is a rule fault, returned as an
// error and recorded by the caller; it never panics.
func (e *Expr) Eval(f Facts, now time.Time) (bool, error) {
	switch e.Type {
	case "cmp":
		return e.evalCmp(f)
	case "in":
		return e.evalIn(f)
	case "and":
		for _, a := range e.Args {
			ok, err := a.Eval(f, now)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	case "or":
		for _, a := range e.Args {
			ok, err := a.Eval(f, now)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	case "not":
		ok, err := e.Args[0].Eval(f, now)
		if err != nil {
			return false, err
		}
		return !ok, nil
	case "date":
		return e.evalDate(f, now)
	default:
		return false, fmt.Errorf("unknown expression type %q", e.Type)
	}
}

func (e *Expr) evalCmp(f Facts) (bool, error) {
	val, ok := f[e.Field]
	if !ok {
		return false, fmt.Errorf("field %q missing from facts", e.Field)
	}

	switch e.Cmp {
	case "eq", "ne":
		eq, err := valuesEqual(val, e.Value)
		if err != nil {
			return false, fmt.Errorf("field %q: %w", e.Field, err)
		}
		if e.Cmp == "ne" {
			return !eq, nil
		}
		return eq, nil
	case "gt", "gte", "lt", "lte":
		a, okA := toFloat(val)
		b, okB := toFloat(e.Value)
		if !okA || !okB {
			return false, fmt.Errorf("field %q: %q needs numeric operands", e.Field, e.Cmp)
		}
		switch e.Cmp {
		case "gt":
			return a > b, nil
		case "gte":
			return a >= b, nil
		case "lt":
			return a < b, nil
		default:
			return a <= b, nil
		}
	case "contains":
		return contains(val, e.Value)
	default:
		return false, fmt.Errorf("unknown comparator %q", e.Cmp)
	}
}

func (e *Expr) evalIn(f Facts) (bool, error) {
	val, ok := f[e.Field]
	if !ok {
		return false, fmt.Errorf("field %q missing from facts", e.Field)
	}
	for _, member := range e.Set {
		eq, err := valuesEqual(val, member)
		if err != nil {
			return false, fmt.Errorf("field %q: %w", e.Field, err)
		}
		if eq {
			return true, nil
		}
	}
	return false, nil
}

func (e *Expr) evalDate(f Facts, now time.Time) (bool, error) {
	val, ok := f[e.Field]
	if !ok {
		return false, fmt.Errorf("field %q missing from facts", e.Field)
	}
	t, ok := val.(time.Time)
	if !ok {
		return false, fmt.Errorf("field %q is not a time", e.Field)
	}

	m := durationRe.FindStringSubmatch(e.Plus)
	n, _ := strconv.Atoi(m[1])
	var shifted time.Time
	switch m[2] {
	case "y":
		shifted = t.AddDate(n, 0, 0)
	case "m":
		shifted = t.AddDate(0, n, 0)
	default:
		shifted = t.AddDate(0, 0, n)
	}

	if e.Cmp == "before_now" {
		return shifted.Before(now), nil
	}
	return shifted.After(now), nil
}

// valuesEqual compares two JSON-decoded scalars: numbers compare
// numerically, strings and bools directly.
func valuesEqual(a, b interface{}) (bool, error) {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		if !ok {
			return false, fmt.Errorf("cannot compare number with %T", b)
		}
		return fa == fb, nil
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv, nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv, nil
	default:
		return false, fmt.Errorf("unsupported operand type %T", a)
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// contains handles substring match on strings and membership on string
// slices (tags).
func contains(val, needle interface{}) (bool, error) {
	want, ok := needle.(string)
	if !ok {
		return false, fmt.Errorf("contains needs a string operand")
	}
	switch v := val.(type) {
	case string:
		return strings.Contains(v, want), nil
	case []string:
		for _, s := range v {
			if s == want {
				return true, nil
			}
		}
		return false, nil
	case []interface{}:
		for _, s := range v {
			if sv, ok := s.(string); ok && sv == want {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("contains needs a string or list field, got %T", val)
	}
}
