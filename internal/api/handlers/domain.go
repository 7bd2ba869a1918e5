package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iou-platform.io/iou/internal/api/middleware"
	apperrors "iou-platform.io/iou/internal/pkg/errors"
	"iou-platform.io/iou/internal/service"
)

type createDomainRequest struct {
	Name           string                 `json:"name" binding:"required"`
	Description    string                 `json:"description"`
	DomainType     string                 `json:"domain_type" binding:"required"`
	OrganizationID string                 `json:"organization_id" binding:"required"`
	OwnerUserID    string                 `json:"owner_user_id"`
	ParentDomainID string                 `json:"parent_domain_id"`
	Metadata       map[string]interface{} `json:"metadata"`
}

// CreateDomain handles POST /api/v1/domains.
func (s *Server) CreateDomain(c *gin.Context) {
	var req createDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	domain, err := s.domains.Create(c.Request.Context(), service.CreateDomainInput{
		Name:           req.Name,
		Description:    req.Description,
		DomainType:     req.DomainType,
		OrganizationID: req.OrganizationID,
		OwnerUserID:    req.OwnerUserID,
		ParentDomainID: req.ParentDomainID,
		Metadata:       req.Metadata,
		Actor:          middleware.GetActor(c.Request.Context()),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, domain)
}

// ListDomains handles GET /api/v1/domains.
func (s *Server) ListDomains(c *gin.Context) {
	domains, err := s.domains.List(c.Request.Context(), c.Query("domain_type"), c.Query("status"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"domains": domains, "count": len(domains)})
}

// GetDomain handles GET /api/v1/domains/:id.
func (s *Server) GetDomain(c *gin.Context) {
	domain, err := s.domains.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, domain)
}

// GetDomainContext handles GET /api/v1/domains/:id/context.
func (s *Server) GetDomainContext(c *gin.Context) {
	dc, err := s.domains.GetContext(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dc)
}

// ListDomainObjects handles GET /api/v1/domains/:id/objects.
func (s *Server) ListDomainObjects(c *gin.Context) {
	domainID := c.Param("id")
	if _, err := s.domains.Get(c.Request.Context(), domainID); err != nil {
		_ = c.Error(err)
		return
	}
	objects, err := s.objects.ListByDomain(c.Request.Context(), domainID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"objects": objects, "count": len(objects)})
}

type updateDomainStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateDomainStatus handles PUT /api/v1/domains/:id/status.
func (s *Server) UpdateDomainStatus(c *gin.Context) {
	var req updateDomainStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	domain, err := s.domains.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status,
		middleware.GetActor(c.Request.Context()))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, domain)
}

// RecommendApps handles GET /api/v1/apps/recommend.
func (s *Server) RecommendApps(c *gin.Context) {
	domainType := c.Query("domain_type")
	if domainType == "" {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "domain_type query parameter is required"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"apps": service.RecommendApps(domainType)})
}
