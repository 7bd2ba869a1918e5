package rules

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"iou-platform.io/iou/ent"
	"iou-platform.io/iou/ent/businessrule"
	"iou-platform.io/iou/internal/pkg/logger"
)

// Spec is one rule as declared in the seed YAML file.
type Spec struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description"`
	DomainTypes []string               `yaml:"domain_types"`
	ObjectTypes []string               `yaml:"object_types"`
	Logic       map[string]interface{} `yaml:"logic"`
	Action      map[string]interface{} `yaml:"action"`
	Active      *bool                  `yaml:"active"`
}

type specFile struct {
	Rules []Spec `yaml:"rules"`
}

// LoadFile reads and validates a YAML rule file. Every spec must
// compile; a single bad rule fails the whole file so a broken seed is
// caught at startup rather than at evaluation time.
func LoadFile(path string) ([]Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	var f specFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	for i, s := range f.Rules {
		if s.Name == "" {
			return nil, fmt.Errorf("rules file %s: rule %d has no name", path, i)
		}
		if _, err := Compile("", s.Name, s.DomainTypes, s.ObjectTypes, s.Logic, s.Action, true, nil, nil, time.Time{}); err != nil {
			return nil, fmt.Errorf("rules file %s: %w", path, err)
		}
	}
	return f.Rules, nil
}

// Seed upserts specs into the rule store, keyed by name. Existing rules
// keep their id and created_at, so seeding is idempotent and does not
// disturb the conflict-resolution order between already-seeded rules.
// Declaration order matters for new rules: created_at timestamps are
// spaced so earlier declarations win specificity ties.
func Seed(ctx context.Context, client *ent.Client, specs []Spec) (int, error) {
	created := 0
	base := time.Now().UTC()
	for i, s := range specs {
		active := true
		if s.Active != nil {
			active = *s.Active
		}

		existing, err := client.BusinessRule.Query().
			Where(businessrule.Name(s.Name)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return created, fmt.Errorf("query rule %s: %w", s.Name, err)
		}

		if existing != nil {
			_, err = existing.Update().
				SetDescription(s.Description).
				SetRuleLogic(s.Logic).
				SetAction(s.Action).
				SetDomainTypes(s.DomainTypes).
				SetObjectTypes(s.ObjectTypes).
				SetActive(active).
				Save(ctx)
			if err != nil {
				return created, fmt.Errorf("update rule %s: %w", s.Name, err)
			}
			continue
		}

		_, err = client.BusinessRule.Create().
			SetID(newRuleID()).
			SetName(s.Name).
			SetDescription(s.Description).
			SetRuleLogic(s.Logic).
			SetAction(s.Action).
			SetDomainTypes(s.DomainTypes).
			SetObjectTypes(s.ObjectTypes).
			SetActive(active).
			SetCreatedAt(base.Add(time.Duration(i) * time.Millisecond)).
			SetCreatedBy("seed").
			Save(ctx)
		if err != nil {
			return created, fmt.Errorf("create rule %s: %w", s.Name, err)
		}
		created++
	}
	if created > 0 {
		logger.Info("seeded business rules", zap.Int("created", created), zap.Int("total", len(specs)))
	}
	return created, nil
}

// LoadActive reads and compiles every active rule. Rules that no longer
// compile are skipped with a warning instead of blocking evaluation of
// the rest.
func LoadActive(ctx context.Context, client *ent.Client) ([]*Rule, error) {
	rows, err := client.BusinessRule.Query().
		Where(businessrule.Active(true)).
		Order(ent.Asc(businessrule.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active rules: %w", err)
	}

	out := make([]*Rule, 0, len(rows))
	for _, row := range rows {
		var validFrom, validUntil *time.Time
		if !row.ValidFrom.IsZero() {
			t := row.ValidFrom
			validFrom = &t
		}
		if !row.ValidUntil.IsZero() {
			t := row.ValidUntil
			validUntil = &t
		}
		r, err := Compile(row.ID, row.Name, row.DomainTypes, row.ObjectTypes, row.RuleLogic, row.Action, row.Active, validFrom, validUntil, row.CreatedAt)
		if err != nil {
			logger.Warn("skipping uncompilable rule", zap.String("rule_id", row.ID), zap.Error(err))
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func newRuleID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "rule-" + uuid.New().String()
	}
	return "rule-" + id.String()
}
