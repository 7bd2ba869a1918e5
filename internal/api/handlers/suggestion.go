package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iou-platform.io/iou/internal/api/middleware"
	apperrors "iou-platform.io/iou/internal/pkg/errors"
)

// ListObjectSuggestions handles GET /api/v1/objects/:id/suggestions.
func (s *Server) ListObjectSuggestions(c *gin.Context) {
	objectID := c.Param("id")
	if _, err := s.objects.Get(c.Request.Context(), objectID); err != nil {
		_ = c.Error(err)
		return
	}
	suggestions, err := s.suggestions.ListForObject(c.Request.Context(), objectID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions, "count": len(suggestions)})
}

type reviewSuggestionRequest struct {
	Action        string      `json:"action" binding:"required"`
	ModifiedValue interface{} `json:"modified_value"`
}

// ReviewSuggestion handles POST /api/v1/suggestions/:id/review.
func (s *Server) ReviewSuggestion(c *gin.Context) {
	var req reviewSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	sug, err := s.suggestions.Review(c.Request.Context(), c.Param("id"),
		req.Action, req.ModifiedValue,
		middleware.GetActor(c.Request.Context()))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, sug)
}

// GetCompliance handles GET /api/v1/compliance/:object_id.
func (s *Server) GetCompliance(c *gin.Context) {
	assessment, err := s.compliance.Assess(c.Request.Context(), c.Param("object_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}
