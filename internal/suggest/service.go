package suggest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"iou-platform.io/iou/ent"
	"iou-platform.io/iou/ent/metadatasuggestion"
	"iou-platform.io/iou/ent/suggestiontrust"
	"iou-platform.io/iou/internal/audit"
	apperrors "iou-platform.io/iou/internal/pkg/errors"
	"iou-platform.io/iou/internal/pkg/logger"
	"iou-platform.io/iou/internal/pkg/metrics"
	"iou-platform.io/iou/internal/rules"
)

// Draft is a proposed metadata value before trust adjustment. Pattern
// is the trust-table key for future similar candidates; empty patterns
// fall back to the field name.
type Draft struct {
	Field      string
	Value      interface{}
	Confidence float64
	Source     string // ner, classification, rule_based, pattern_matching
	Pattern    string
	Reasoning  string
}

// Service proposes, applies and reviews suggestions.
type Service struct {
	client  *ent.Client
	audit   *audit.Logger
	metrics *metrics.Metrics

	// applyThreshold is the trust-adjusted confidence at or above which
	// a draft is applied to the object directly instead of queued.
	applyThreshold float64
}

// NewService creates a Service. audit and metrics may be nil.
func NewService(client *ent.Client, auditLogger *audit.Logger, m *metrics.Metrics, applyThreshold float64) *Service {
	return &Service{client: client, audit: auditLogger, metrics: m, applyThreshold: applyThreshold}
}

// Process takes the drafts produced for one object, adjusts each by the
// learned trust for its (field, pattern) pair, applies the confident
// ones directly and persists the rest as proposed suggestions. Returns
// the number applied and the number queued.
func (s *Service) Process(ctx context.Context, obj *ent.InformationObject, drafts []Draft) (applied, queued int, err error) {
	var directWrites []rules.FieldWrite

	for _, d := range drafts {
		pattern := d.Pattern
		if pattern == "" {
			pattern = d.Field
		}
		mult, err := s.trustMultiplier(ctx, d.Field, pattern)
		if err != nil {
			return applied, queued, err
		}
		adjusted := AdjustedConfidence(d.Confidence, mult)

		if adjusted >= s.applyThreshold {
			directWrites = append(directWrites, rules.FieldWrite{Field: d.Field, Value: d.Value, RuleName: d.Source})
			applied++
			continue
		}

		_, err = s.client.MetadataSuggestion.Create().
			SetID(newSuggestionID()).
			SetObjectID(obj.ID).
			SetField(d.Field).
			SetSuggestedValue(wrapValue(d.Value)).
			SetConfidence(adjusted).
			SetReasoning(d.Reasoning).
			SetSource(metadatasuggestion.Source(d.Source)).
			SetPattern(pattern).
			Save(ctx)
		if err != nil {
			return applied, queued, fmt.Errorf("create suggestion: %w", err)
		}
		queued++
	}

	if len(directWrites) > 0 {
		if err := rules.ApplyFieldWrites(ctx, s.client, obj, directWrites); err != nil {
			return applied, queued, err
		}
	}
	return applied, queued, nil
}

// Review applies a reviewer decision. Suggestions are a one-way state
// machine: only proposed suggestions accept a decision, every terminal
// state is final. Accepted and modified values land on the object as a
// metadata refresh, and the trust table moves for the (field, pattern)
// pair either way.
func (s *Service) Review(ctx context.Context, suggestionID, action string, modifiedValue interface{}, reviewer string) (*ent.MetadataSuggestion, error) {
	switch action {
	case ActionAccepted, ActionRejected, ActionModified:
	default:
		return nil, apperrors.BadRequest(apperrors.CodeFeedbackInvalid,
			fmt.Sprintf("feedback action must be accepted, rejected or modified, got %q", action))
	}

	sug, err := s.client.MetadataSuggestion.Get(ctx, suggestionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeSuggestionNotFound,
				fmt.Sprintf("suggestion %s not found", suggestionID))
		}
		return nil, fmt.Errorf("get suggestion: %w", err)
	}
	if sug.Status != metadatasuggestion.StatusProposed {
		return nil, apperrors.ErrSuggestionReviewedf(suggestionID)
	}
	if action == ActionModified && modifiedValue == nil {
		return nil, apperrors.BadRequest(apperrors.CodeFeedbackInvalid,
			"modified feedback requires a modified_value")
	}

	update := sug.Update().
		SetStatus(metadatasuggestion.Status(action)).
		SetReviewedBy(reviewer).
		SetReviewedAt(time.Now().UTC())
	if action == ActionModified {
		update.SetModifiedValue(wrapValue(modifiedValue))
	}
	sug, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update suggestion: %w", err)
	}

	if action != ActionRejected {
		value := unwrapValue(sug.SuggestedValue)
		if action == ActionModified {
			value = unwrapValue(sug.ModifiedValue)
		}
		obj, err := s.client.InformationObject.Get(ctx, sug.ObjectID)
		if err != nil {
			return nil, fmt.Errorf("load object for suggestion apply: %w", err)
		}
		write := rules.FieldWrite{Field: sug.Field, Value: value, RuleName: "suggestion:" + sug.ID}
		if err := rules.ApplyFieldWrites(ctx, s.client, obj, []rules.FieldWrite{write}); err != nil {
			return nil, err
		}
	}

	if err := s.recordFeedback(ctx, sug.Field, sug.Pattern, action); err != nil {
		// Trust is advisory; a failed update must not undo the review.
		logger.Warn("trust update failed",
			zap.String("suggestion_id", sug.ID),
			zap.String("field", sug.Field),
			zap.Error(err),
		)
	}

	s.metrics.IncrementSuggestionReview(sug.Field, action)
	if s.audit != nil {
		_ = s.audit.LogSuggestionReview(ctx, sug.ID, action, reviewer)
	}
	return sug, nil
}

// ListForObject returns an object's suggestions, proposed first, newest
// within each status.
func (s *Service) ListForObject(ctx context.Context, objectID string) ([]*ent.MetadataSuggestion, error) {
	return s.client.MetadataSuggestion.Query().
		Where(metadatasuggestion.ObjectID(objectID)).
		Order(ent.Asc(metadatasuggestion.FieldStatus), ent.Desc(metadatasuggestion.FieldCreatedAt)).
		All(ctx)
}

// CountPending returns the number of proposed suggestions for an object.
func (s *Service) CountPending(ctx context.Context, objectID string) (int, error) {
	return s.client.MetadataSuggestion.Query().
		Where(
			metadatasuggestion.ObjectID(objectID),
			metadatasuggestion.StatusEQ(metadatasuggestion.StatusProposed),
		).
		Count(ctx)
}

func (s *Service) trustMultiplier(ctx context.Context, field, pattern string) (float64, error) {
	row, err := s.client.SuggestionTrust.Query().
		Where(suggestiontrust.Field(field), suggestiontrust.Pattern(pattern)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1.0, nil
		}
		return 0, fmt.Errorf("query trust: %w", err)
	}
	return row.Multiplier, nil
}

// recordFeedback upserts the trust row for (field, pattern) and moves
// its multiplier for the given action.
func (s *Service) recordFeedback(ctx context.Context, field, pattern, action string) error {
	if pattern == "" {
		pattern = field
	}
	row, err := s.client.SuggestionTrust.Query().
		Where(suggestiontrust.Field(field), suggestiontrust.Pattern(pattern)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query trust: %w", err)
	}

	if row == nil {
		create := s.client.SuggestionTrust.Create().
			SetID(newTrustID()).
			SetField(field).
			SetPattern(pattern).
			SetMultiplier(AdjustTrust(1.0, action))
		switch action {
		case ActionAccepted:
			create.SetAcceptedCount(1)
		case ActionRejected:
			create.SetRejectedCount(1)
		case ActionModified:
			create.SetModifiedCount(1)
		}
		_, err = create.Save(ctx)
		return err
	}

	update := row.Update().SetMultiplier(AdjustTrust(row.Multiplier, action))
	switch action {
	case ActionAccepted:
		update.AddAcceptedCount(1)
	case ActionRejected:
		update.AddRejectedCount(1)
	case ActionModified:
		update.AddModifiedCount(1)
	}
	_, err = update.Save(ctx)
	return err
}

// Suggested values are stored as a one-key wrapper map so scalars and
// lists share one JSON column shape.
func wrapValue(v interface{}) map[string]interface{} {
	return map[string]interface{}{"value": v}
}

func unwrapValue(m map[string]interface{}) interface{} {
	return m["value"]
}

func newSuggestionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "sugg-" + uuid.New().String()
	}
	return "sugg-" + id.String()
}

func newTrustID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "trust-" + uuid.New().String()
	}
	return "trust-" + id.String()
}
