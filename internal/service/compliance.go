package service

import (
	"context"
	"fmt"
	"time"

	"iou-platform.io/iou/ent"
	"iou-platform.io/iou/ent/ruleexecution"
	"iou-platform.io/iou/internal/rules"
	"iou-platform.io/iou/internal/suggest"
)

// ComplianceService assembles the compliance view of an object from its
// stored state, its open suggestions and the flags raised by the most
// recent rule evaluation.
type ComplianceService struct {
	client  *ent.Client
	objects *ObjectService
	suggest *suggest.Service
}

// NewComplianceService creates a ComplianceService.
func NewComplianceService(client *ent.Client, objects *ObjectService, suggestSvc *suggest.Service) *ComplianceService {
	return &ComplianceService{client: client, objects: objects, suggest: suggestSvc}
}

// Assess computes the compliance assessment for one object.
func (s *ComplianceService) Assess(ctx context.Context, objectID string) (*rules.Assessment, error) {
	obj, err := s.objects.Get(ctx, objectID)
	if err != nil {
		return nil, err
	}

	pending, err := s.suggest.CountPending(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf("count pending suggestions: %w", err)
	}

	flags, err := s.latestFlags(ctx, objectID)
	if err != nil {
		return nil, err
	}

	state := rules.ObjectState{
		ID:                 obj.ID,
		IsWooRelevant:      obj.IsWooRelevant,
		PrivacyLevel:       string(obj.PrivacyLevel),
		RetentionPeriod:    obj.RetentionPeriod,
		RetentionTrigger:   obj.RetentionTrigger,
		PendingSuggestions: pending,
	}
	if !obj.WooPublicationDate.IsZero() {
		t := obj.WooPublicationDate
		state.WooPublicationDate = &t
	}
	if !obj.DestructionDate.IsZero() {
		t := obj.DestructionDate
		state.DestructionDate = &t
	}

	a := rules.Assess(state, flags, time.Now().UTC())
	return &a, nil
}

// latestFlags collects flag results from the newest execution of each
// rule against the object. Older executions of the same rule are
// superseded.
func (s *ComplianceService) latestFlags(ctx context.Context, objectID string) ([]rules.Flag, error) {
	execs, err := s.client.RuleExecution.Query().
		Where(
			ruleexecution.ObjectID(objectID),
			ruleexecution.Matched(true),
		).
		Order(ent.Desc(ruleexecution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query rule executions: %w", err)
	}

	seen := map[string]bool{}
	var flags []rules.Flag
	for _, exec := range execs {
		if seen[exec.RuleID] {
			continue
		}
		seen[exec.RuleID] = true
		if exec.Result == nil {
			continue
		}
		severity, _ := exec.Result["severity"].(string)
		message, _ := exec.Result["message"].(string)
		if severity == "" || message == "" {
			continue
		}
		category, _ := exec.Result["category"].(string)
		flags = append(flags, rules.Flag{
			Severity: severity,
			Category: category,
			Message:  message,
			RuleID:   exec.RuleID,
		})
	}
	return flags, nil
}
