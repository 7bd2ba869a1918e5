package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iou-platform.io/iou/internal/api/middleware"
	apperrors "iou-platform.io/iou/internal/pkg/errors"
	"iou-platform.io/iou/internal/service"
)

type createObjectRequest struct {
	DomainID        string                 `json:"domain_id" binding:"required"`
	ObjectType      string                 `json:"object_type" binding:"required"`
	Title           string                 `json:"title" binding:"required"`
	Description     string                 `json:"description"`
	ContentText     string                 `json:"content_text"`
	ContentLocation string                 `json:"content_location"`
	MimeType        string                 `json:"mime_type"`
	FileSize        int64                  `json:"file_size"`
	Classification  string                 `json:"classification"`
	PrivacyLevel    string                 `json:"privacy_level"`
	Tags            []string               `json:"tags"`
	Metadata        map[string]interface{} `json:"metadata"`
}

// CreateObject handles POST /api/v1/objects. Analysis runs
// asynchronously; the response carries the object as stored.
func (s *Server) CreateObject(c *gin.Context) {
	var req createObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	obj, err := s.objects.Create(c.Request.Context(), service.CreateObjectInput{
		DomainID:        req.DomainID,
		ObjectType:      req.ObjectType,
		Title:           req.Title,
		Description:     req.Description,
		ContentText:     req.ContentText,
		ContentLocation: req.ContentLocation,
		MimeType:        req.MimeType,
		FileSize:        req.FileSize,
		Classification:  req.Classification,
		PrivacyLevel:    req.PrivacyLevel,
		Tags:            req.Tags,
		Metadata:        req.Metadata,
		CreatedBy:       middleware.GetActor(c.Request.Context()),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, obj)
}

// GetObject handles GET /api/v1/objects/:id.
func (s *Server) GetObject(c *gin.Context) {
	obj, err := s.objects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, obj)
}

// ListObjectVersions handles GET /api/v1/objects/:id/versions.
func (s *Server) ListObjectVersions(c *gin.Context) {
	chain, err := s.objects.Versions(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"versions": chain, "count": len(chain)})
}

type createVersionRequest struct {
	ContentText string `json:"content_text" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateObjectVersion handles POST /api/v1/objects/:id/versions.
func (s *Server) CreateObjectVersion(c *gin.Context) {
	var req createVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	next, err := s.objects.NewVersion(c.Request.Context(), c.Param("id"),
		req.ContentText, req.Title, req.Description,
		middleware.GetActor(c.Request.Context()))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, next)
}

// ReprocessObject handles POST /api/v1/objects/:id/reprocess.
func (s *Server) ReprocessObject(c *gin.Context) {
	if err := s.objects.Reprocess(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "scheduled"})
}
