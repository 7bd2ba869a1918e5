package rules

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"iou-platform.io/iou/ent"
	"iou-platform.io/iou/ent/informationobject"
	"iou-platform.io/iou/internal/audit"
	"iou-platform.io/iou/internal/pkg/logger"
	"iou-platform.io/iou/internal/pkg/metrics"
)

// Runner evaluates the active ruleset against one object and persists
// the outcome: execution records, derived field writes, and retention
// dates. Suggestion drafts are handed to the caller for trust
// adjustment instead of being written here.
type Runner struct {
	client  *ent.Client
	audit   *audit.Logger
	metrics *metrics.Metrics
}

// NewRunner creates a Runner. audit and metrics may be nil.
func NewRunner(client *ent.Client, auditLogger *audit.Logger, m *metrics.Metrics) *Runner {
	return &Runner{client: client, audit: auditLogger, metrics: m}
}

// BuildFacts flattens an object and its domain type into the attribute
// view rule predicates evaluate against.
func BuildFacts(obj *ent.InformationObject, domainType string) Facts {
	return Facts{
		"domain_type":          domainType,
		"object_type":          string(obj.ObjectType),
		"title":                obj.Title,
		"description":          obj.Description,
		"mime_type":            obj.MimeType,
		"classification":       string(obj.Classification),
		"privacy_level":        string(obj.PrivacyLevel),
		"is_woo_relevant":      obj.IsWooRelevant,
		"retention_period":     obj.RetentionPeriod,
		"retention_trigger":    obj.RetentionTrigger,
		"has_destruction_date": !obj.DestructionDate.IsZero(),
		"has_publication_date": !obj.WooPublicationDate.IsZero(),
		"tags":                 obj.Tags,
		"version":              obj.Version,
		"created_at":           obj.CreatedAt,
	}
}

// Run evaluates all applicable rules against the object and persists
// the result. The returned Outcome carries the suggestion drafts and
// flags for downstream processing. Individual rule faults are recorded
// on their execution row and never abort the pass.
func (r *Runner) Run(ctx context.Context, obj *ent.InformationObject, domainType string) (Outcome, error) {
	ruleset, err := LoadActive(ctx, r.client)
	if err != nil {
		return Outcome{}, err
	}

	now := time.Now().UTC()
	facts := BuildFacts(obj, domainType)
	out := Evaluate(facts, ruleset, domainType, string(obj.ObjectType), now)

	for _, exec := range out.Executions {
		create := r.client.RuleExecution.Create().
			SetID(newExecutionID()).
			SetRuleID(exec.RuleID).
			SetObjectID(obj.ID).
			SetSuccess(exec.Success).
			SetMatched(exec.Matched)
		if exec.Result != nil {
			create.SetResult(exec.Result)
		}
		if exec.ErrorDetail != "" {
			create.SetErrorDetail(exec.ErrorDetail)
		}
		if _, err := create.Save(ctx); err != nil {
			return out, fmt.Errorf("record rule execution: %w", err)
		}

		outcome := "skipped"
		switch {
		case !exec.Success:
			outcome = "fault"
		case exec.Matched:
			outcome = "matched"
		}
		r.metrics.IncrementRuleExecution(exec.RuleName, outcome)
		if !exec.Success {
			logger.Warn("rule evaluation fault",
				zap.String("rule", exec.RuleName),
				zap.String("object_id", obj.ID),
				zap.String("detail", exec.ErrorDetail),
			)
		}
	}

	if len(out.FieldWrites) > 0 {
		if err := ApplyFieldWrites(ctx, r.client, obj, out.FieldWrites); err != nil {
			return out, err
		}
		if r.audit != nil {
			for ruleID, changed := range writesByRule(out.FieldWrites) {
				_ = r.audit.LogRuleExecution(ctx, ruleID, obj.ID, changed)
			}
		}
	}
	return out, nil
}

// ApplyFieldWrites maps winning field writes onto the object row. This
// is a metadata refresh on the existing version, not a new version.
// Setting retention_period also derives destruction_date from
// created_at unless the trigger is permanent. Also used when a reviewed
// or high-trust suggestion lands its value on the object.
func ApplyFieldWrites(ctx context.Context, client *ent.Client, obj *ent.InformationObject, writes []FieldWrite) error {
	update := client.InformationObject.UpdateOneID(obj.ID)
	retention := obj.RetentionPeriod
	trigger := obj.RetentionTrigger

	for _, w := range writes {
		switch w.Field {
		case "is_woo_relevant":
			v, ok := w.Value.(bool)
			if !ok {
				return fmt.Errorf("rule %s: is_woo_relevant needs a bool, got %T", w.RuleName, w.Value)
			}
			update.SetIsWooRelevant(v)
		case "classification":
			s, ok := w.Value.(string)
			if !ok {
				return fmt.Errorf("rule %s: classification needs a string, got %T", w.RuleName, w.Value)
			}
			update.SetClassification(informationobject.Classification(s))
		case "privacy_level":
			s, ok := w.Value.(string)
			if !ok {
				return fmt.Errorf("rule %s: privacy_level needs a string, got %T", w.RuleName, w.Value)
			}
			update.SetPrivacyLevel(informationobject.PrivacyLevel(s))
		case "retention_period":
			f, ok := toFloat(w.Value)
			if !ok || f < 0 {
				return fmt.Errorf("rule %s: retention_period needs a non-negative number", w.RuleName)
			}
			retention = int(f)
			update.SetRetentionPeriod(retention)
		case "tags":
			added, err := toStringSlice(w.Value)
			if err != nil {
				return fmt.Errorf("rule %s: %w", w.RuleName, err)
			}
			update.SetTags(unionTags(obj.Tags, added))
		case "retention_trigger":
			s, ok := w.Value.(string)
			if !ok {
				return fmt.Errorf("rule %s: retention_trigger needs a string, got %T", w.RuleName, w.Value)
			}
			trigger = s
			update.SetRetentionTrigger(s)
		default:
			// Unknown targets land in the free-form metadata map.
			meta := obj.Metadata
			if meta == nil {
				meta = map[string]interface{}{}
			}
			meta[w.Field] = w.Value
			update.SetMetadata(meta)
		}
	}

	if retention > 0 && trigger != "permanent" {
		update.SetDestructionDate(obj.CreatedAt.AddDate(retention, 0, 0))
	}
	if trigger == "permanent" {
		update.ClearDestructionDate()
	}

	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("apply rule field writes: %w", err)
	}
	return nil
}

func toStringSlice(v interface{}) ([]string, error) {
	switch t := v.(type) {
	case string:
		return []string{t}, nil
	case []string:
		return t, nil
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("tags need strings, got %T", e)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("tags need a string or string list, got %T", v)
	}
}

func unionTags(existing, added []string) []string {
	seen := make(map[string]bool, len(existing))
	out := make([]string, 0, len(existing)+len(added))
	for _, t := range existing {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, t := range added {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

func writesByRule(writes []FieldWrite) map[string]map[string]interface{} {
	grouped := map[string]map[string]interface{}{}
	for _, w := range writes {
		if grouped[w.RuleID] == nil {
			grouped[w.RuleID] = map[string]interface{}{}
		}
		grouped[w.RuleID][w.Field] = w.Value
	}
	return grouped
}

func newExecutionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "exec-" + uuid.New().String()
	}
	return "exec-" + id.String()
}
