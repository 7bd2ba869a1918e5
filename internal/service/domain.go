// Package service implements the application services behind the HTTP
// handlers: domain and object lifecycle, search, graph queries and app
// recommendations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"iou-platform.io/iou/ent"
	"iou-platform.io/iou/ent/domainrelation"
	"iou-platform.io/iou/ent/informationdomain"
	"iou-platform.io/iou/ent/informationobject"
	"iou-platform.io/iou/internal/audit"
	apperrors "iou-platform.io/iou/internal/pkg/errors"
	"iou-platform.io/iou/internal/pkg/logger"
)

// DomainService manages information domains.
type DomainService struct {
	client *ent.Client
	audit  *audit.Logger
}

// NewDomainService creates a DomainService. audit may be nil.
func NewDomainService(client *ent.Client, auditLogger *audit.Logger) *DomainService {
	return &DomainService{client: client, audit: auditLogger}
}

// CreateDomainInput is the create request payload.
type CreateDomainInput struct {
	Name           string
	Description    string
	DomainType     string
	OrganizationID string
	OwnerUserID    string
	ParentDomainID string
	Metadata       map[string]interface{}
	Actor          string
}

// Create validates and persists a new domain. A parent, when given,
// must exist and must not introduce a cycle.
func (s *DomainService) Create(ctx context.Context, in CreateDomainInput) (*ent.InformationDomain, error) {
	var fieldErrs []apperrors.FieldError
	if in.Name == "" {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "name", Code: "required"})
	}
	if in.OrganizationID == "" {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "organization_id", Code: "required"})
	}
	switch in.DomainType {
	case "case", "project", "policy", "expertise":
	default:
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "domain_type", Code: "invalid",
			Message: "must be one of case, project, policy, expertise"})
	}
	if len(fieldErrs) > 0 {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid domain").
			WithFieldErrors(fieldErrs)
	}

	if in.ParentDomainID != "" {
		if err := s.checkParent(ctx, in.ParentDomainID); err != nil {
			return nil, err
		}
	}

	create := s.client.InformationDomain.Create().
		SetID(newDomainID()).
		SetName(in.Name).
		SetDescription(in.Description).
		SetDomainType(informationdomain.DomainType(in.DomainType)).
		SetOrganizationID(in.OrganizationID).
		SetOwnerUserID(in.OwnerUserID)
	if in.ParentDomainID != "" {
		create.SetParentDomainID(in.ParentDomainID)
	}
	if in.Metadata != nil {
		create.SetMetadata(in.Metadata)
	}

	domain, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create domain: %w", err)
	}

	if s.audit != nil {
		_ = s.audit.LogAction(ctx, "domain.create", "domain", domain.ID, in.Actor, nil)
	}
	logger.Info("domain created",
		zap.String("domain_id", domain.ID),
		zap.String("domain_type", in.DomainType),
	)
	return domain, nil
}

// checkParent verifies the parent exists. New domains cannot be their
// own ancestor because the child id does not exist yet, so existence is
// the whole cycle check on create.
func (s *DomainService) checkParent(ctx context.Context, parentID string) error {
	exists, err := s.client.InformationDomain.Query().
		Where(informationdomain.ID(parentID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check parent domain: %w", err)
	}
	if !exists {
		return apperrors.ErrDomainNotFoundf(parentID)
	}
	return nil
}

// Get returns one domain.
func (s *DomainService) Get(ctx context.Context, domainID string) (*ent.InformationDomain, error) {
	domain, err := s.client.InformationDomain.Get(ctx, domainID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrDomainNotFoundf(domainID)
		}
		return nil, fmt.Errorf("get domain: %w", err)
	}
	return domain, nil
}

// List returns domains, optionally filtered by type and status, newest
// first.
func (s *DomainService) List(ctx context.Context, domainType, status string) ([]*ent.InformationDomain, error) {
	q := s.client.InformationDomain.Query()
	if domainType != "" {
		q = q.Where(informationdomain.DomainTypeEQ(informationdomain.DomainType(domainType)))
	}
	if status != "" {
		q = q.Where(informationdomain.StatusEQ(informationdomain.Status(status)))
	}
	domains, err := q.Order(ent.Desc(informationdomain.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	return domains, nil
}

// RelatedDomain is one DomainRelation joined with the counterpart
// domain, from the perspective of the queried domain.
type RelatedDomain struct {
	Domain            *ent.InformationDomain `json:"domain"`
	RelationType      string                 `json:"relation_type"`
	Strength          float64                `json:"strength"`
	SharedEntityCount int                    `json:"shared_entity_count"`
	DiscoveryMethod   string                 `json:"discovery_method"`
	Explanation       string                 `json:"explanation,omitempty"`
}

// DomainContext is the full working context of one domain.
type DomainContext struct {
	Domain         *ent.InformationDomain   `json:"domain"`
	RelatedDomains []RelatedDomain          `json:"related_domains"`
	Objects        []*ent.InformationObject `json:"objects"`
	RecommendedApp []AppRecommendation      `json:"recommended_apps"`
}

// GetContext assembles the domain, its related domains in both link
// directions, its objects and the recommended apps for its type.
func (s *DomainService) GetContext(ctx context.Context, domainID string) (*DomainContext, error) {
	domain, err := s.Get(ctx, domainID)
	if err != nil {
		return nil, err
	}

	relations, err := s.client.DomainRelation.Query().
		Where(domainrelation.Or(
			domainrelation.FromDomainID(domainID),
			domainrelation.ToDomainID(domainID),
		)).
		Order(ent.Desc(domainrelation.FieldStrength)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query domain relations: %w", err)
	}

	related := make([]RelatedDomain, 0, len(relations))
	for _, rel := range relations {
		otherID := rel.ToDomainID
		if otherID == domainID {
			otherID = rel.FromDomainID
		}
		other, err := s.client.InformationDomain.Get(ctx, otherID)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("load related domain: %w", err)
		}
		related = append(related, RelatedDomain{
			Domain:            other,
			RelationType:      string(rel.RelationType),
			Strength:          rel.Strength,
			SharedEntityCount: rel.SharedEntityCount,
			DiscoveryMethod:   string(rel.DiscoveryMethod),
			Explanation:       rel.Explanation,
		})
	}

	objects, err := s.client.InformationObject.Query().
		Where(informationobject.DomainID(domainID)).
		Order(ent.Desc(informationobject.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query domain objects: %w", err)
	}

	return &DomainContext{
		Domain:         domain,
		RelatedDomains: related,
		Objects:        objects,
		RecommendedApp: RecommendApps(string(domain.DomainType)),
	}, nil
}

// UpdateStatus applies a status transition. Transitions are monotonic
// except active <-> draft; archived is terminal.
func (s *DomainService) UpdateStatus(ctx context.Context, domainID, status, actor string) (*ent.InformationDomain, error) {
	domain, err := s.Get(ctx, domainID)
	if err != nil {
		return nil, err
	}
	if !validStatusTransition(string(domain.Status), status) {
		return nil, apperrors.Conflict(apperrors.CodeDomainClosed,
			fmt.Sprintf("cannot transition domain from %s to %s", domain.Status, status))
	}

	domain, err = domain.Update().
		SetStatus(informationdomain.Status(status)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update domain status: %w", err)
	}
	if s.audit != nil {
		_ = s.audit.LogAction(ctx, "domain.status", "domain", domainID, actor,
			map[string]interface{}{"status": status})
	}
	return domain, nil
}

func validStatusTransition(from, to string) bool {
	switch from {
	case "draft":
		return to == "active" || to == "archived"
	case "active":
		return to == "draft" || to == "closed" || to == "archived"
	case "closed":
		return to == "archived"
	default: // archived is terminal
		return false
	}
}

func newDomainID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "dom-" + uuid.New().String()
	}
	return "dom-" + id.String()
}
