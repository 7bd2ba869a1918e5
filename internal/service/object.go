package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"iou-platform.io/iou/ent"
	"iou-platform.io/iou/ent/informationdomain"
	"iou-platform.io/iou/ent/informationobject"
	"iou-platform.io/iou/internal/audit"
	"iou-platform.io/iou/internal/pipeline"
	apperrors "iou-platform.io/iou/internal/pkg/errors"
	"iou-platform.io/iou/internal/pkg/logger"
)

// ObjectService manages information objects and their version chains.
type ObjectService struct {
	client   *ent.Client
	audit    *audit.Logger
	pipeline *pipeline.Pipeline
}

// NewObjectService creates an ObjectService. audit may be nil.
func NewObjectService(client *ent.Client, auditLogger *audit.Logger, p *pipeline.Pipeline) *ObjectService {
	return &ObjectService{client: client, audit: auditLogger, pipeline: p}
}

// CreateObjectInput is the create request payload.
type CreateObjectInput struct {
	DomainID        string
	ObjectType      string
	Title           string
	Description     string
	ContentText     string
	ContentLocation string
	MimeType        string
	FileSize        int64
	Classification  string
	PrivacyLevel    string
	Tags            []string
	Metadata        map[string]interface{}
	CreatedBy       string
}

// Create validates and persists a new object, then schedules the
// analysis pipeline. The object is returned as stored; derived fields
// appear asynchronously.
func (s *ObjectService) Create(ctx context.Context, in CreateObjectInput) (*ent.InformationObject, error) {
	var fieldErrs []apperrors.FieldError
	if in.Title == "" {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "title", Code: "required"})
	}
	if in.CreatedBy == "" {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "created_by", Code: "required"})
	}
	switch in.ObjectType {
	case "document", "email", "chat", "decision", "dataset":
	default:
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "object_type", Code: "invalid",
			Message: "must be one of document, email, chat, decision, dataset"})
	}
	if len(fieldErrs) > 0 {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid object").
			WithFieldErrors(fieldErrs)
	}

	domain, err := s.client.InformationDomain.Get(ctx, in.DomainID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrDomainNotFoundf(in.DomainID)
		}
		return nil, fmt.Errorf("get domain: %w", err)
	}
	if domain.Status == informationdomain.StatusClosed || domain.Status == informationdomain.StatusArchived {
		return nil, apperrors.Conflict(apperrors.CodeDomainClosed,
			fmt.Sprintf("domain %s is %s and accepts no new objects", domain.ID, domain.Status))
	}

	create := s.client.InformationObject.Create().
		SetID(newObjectID()).
		SetDomainID(in.DomainID).
		SetObjectType(informationobject.ObjectType(in.ObjectType)).
		SetTitle(in.Title).
		SetDescription(in.Description).
		SetContentText(in.ContentText).
		SetContentLocation(in.ContentLocation).
		SetMimeType(in.MimeType).
		SetCreatedBy(in.CreatedBy)
	if in.FileSize > 0 {
		create.SetFileSize(in.FileSize)
	}
	if in.Classification != "" {
		create.SetClassification(informationobject.Classification(in.Classification))
	}
	if in.PrivacyLevel != "" {
		create.SetPrivacyLevel(informationobject.PrivacyLevel(in.PrivacyLevel))
	}
	if len(in.Tags) > 0 {
		create.SetTags(in.Tags)
	}
	if in.Metadata != nil {
		create.SetMetadata(in.Metadata)
	}

	obj, err := create.Save(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeObjectCreateFail, "could not create object", http.StatusInternalServerError)
	}

	if s.audit != nil {
		_ = s.audit.LogObjectOperation(ctx, "create", obj.ID, in.CreatedBy)
	}
	s.pipeline.Enqueue(obj.ID)

	logger.Info("object created",
		zap.String("object_id", obj.ID),
		zap.String("domain_id", in.DomainID),
		zap.String("object_type", in.ObjectType),
	)
	return obj, nil
}

// Get returns one object.
func (s *ObjectService) Get(ctx context.Context, objectID string) (*ent.InformationObject, error) {
	obj, err := s.client.InformationObject.Get(ctx, objectID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrObjectNotFoundf(objectID)
		}
		return nil, fmt.Errorf("get object: %w", err)
	}
	return obj, nil
}

// ListByDomain returns a domain's objects, newest first.
func (s *ObjectService) ListByDomain(ctx context.Context, domainID string) ([]*ent.InformationObject, error) {
	objects, err := s.client.InformationObject.Query().
		Where(informationobject.DomainID(domainID)).
		Order(ent.Desc(informationobject.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}
	return objects, nil
}

// NewVersion creates the next version of an object. Content is
// immutable per version; a change appends a new row linked backward
// through previous_version_id. Only the chain head can be versioned.
func (s *ObjectService) NewVersion(ctx context.Context, objectID string, contentText, title, description, actor string) (*ent.InformationObject, error) {
	prev, err := s.Get(ctx, objectID)
	if err != nil {
		return nil, err
	}

	superseded, err := s.client.InformationObject.Query().
		Where(informationobject.PreviousVersionID(objectID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check version chain: %w", err)
	}
	if superseded {
		return nil, apperrors.Conflict(apperrors.CodeObjectImmutable,
			fmt.Sprintf("object %s is already superseded by a newer version", objectID))
	}

	if title == "" {
		title = prev.Title
	}
	if description == "" {
		description = prev.Description
	}

	next, err := s.client.InformationObject.Create().
		SetID(newObjectID()).
		SetDomainID(prev.DomainID).
		SetObjectType(prev.ObjectType).
		SetTitle(title).
		SetDescription(description).
		SetContentText(contentText).
		SetContentLocation(prev.ContentLocation).
		SetMimeType(prev.MimeType).
		SetClassification(prev.Classification).
		SetPrivacyLevel(prev.PrivacyLevel).
		SetTags(prev.Tags).
		SetMetadata(prev.Metadata).
		SetVersion(prev.Version + 1).
		SetPreviousVersionID(prev.ID).
		SetCreatedBy(actor).
		Save(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeObjectCreateFail, "could not create object version", http.StatusInternalServerError)
	}

	if s.audit != nil {
		_ = s.audit.LogObjectOperation(ctx, "new_version", next.ID, actor)
	}
	s.pipeline.Enqueue(next.ID)
	return next, nil
}

// Versions returns the full version chain of an object, oldest first,
// by walking backward from the given object.
func (s *ObjectService) Versions(ctx context.Context, objectID string) ([]*ent.InformationObject, error) {
	obj, err := s.Get(ctx, objectID)
	if err != nil {
		return nil, err
	}

	var chain []*ent.InformationObject
	for obj != nil {
		chain = append([]*ent.InformationObject{obj}, chain...)
		if obj.PreviousVersionID == "" {
			break
		}
		obj, err = s.client.InformationObject.Get(ctx, obj.PreviousVersionID)
		if err != nil {
			if ent.IsNotFound(err) {
				break
			}
			return nil, fmt.Errorf("walk version chain: %w", err)
		}
	}
	return chain, nil
}

// Reprocess schedules a fresh analysis pass for an existing object.
// Returns once the object is verified; analysis runs asynchronously.
func (s *ObjectService) Reprocess(ctx context.Context, objectID string) error {
	if _, err := s.Get(ctx, objectID); err != nil {
		return err
	}
	s.pipeline.EnqueueReanalysis(objectID)
	return nil
}

func newObjectID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "obj-" + uuid.New().String()
	}
	return "obj-" + id.String()
}
