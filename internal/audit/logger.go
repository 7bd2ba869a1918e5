// Package audit implements the audit logging service.
//
// Audit logs are append-only compliance records. Hard-delete is NOT allowed.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"iou-platform.io/iou/ent"
	"iou-platform.io/iou/internal/pkg/logger"
)

// Logger writes audit records to the database.
type Logger struct {
	client *ent.Client
}

// NewLogger creates a new audit Logger.
func NewLogger(client *ent.Client) *Logger {
	return &Logger{client: client}
}

// LogAction records an auditable action.
func (l *Logger) LogAction(ctx context.Context, action, resourceType, resourceID, actor string, details map[string]interface{}) error {
	_, err := l.client.AuditLog.Create().
		SetID(generateAuditID()).
		SetAction(action).
		SetResourceType(resourceType).
		SetResourceID(resourceID).
		SetActor(actor).
		SetDetails(details).
		Save(ctx)
	if err != nil {
		logger.Error("Failed to write audit log",
			zap.String("action", action),
			zap.String("resource_type", resourceType),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// LogObjectOperation records an information object operation.
func (l *Logger) LogObjectOperation(ctx context.Context, operation, objectID, actor string) error {
	return l.LogAction(ctx, "object."+operation, "object", objectID, actor, nil)
}

// LogRuleExecution records that a rule modified an object.
func (l *Logger) LogRuleExecution(ctx context.Context, ruleID, objectID string, changed map[string]interface{}) error {
	return l.LogAction(ctx, "rule.applied", "object", objectID, "system", map[string]interface{}{
		"rule_id": ruleID,
		"changed": changed,
	})
}

// LogSuggestionReview records a reviewer decision on a suggestion.
func (l *Logger) LogSuggestionReview(ctx context.Context, suggestionID, action, actor string) error {
	return l.LogAction(ctx, "suggestion."+action, "suggestion", suggestionID, actor, nil)
}

// LogEntityMerge records that two entity mentions resolved to one node.
func (l *Logger) LogEntityMerge(ctx context.Context, entityID string, details map[string]interface{}) error {
	return l.LogAction(ctx, "entity.merge", "entity", entityID, "system", details)
}

func generateAuditID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("audit-%s", id.String())
}
