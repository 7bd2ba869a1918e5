package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "iou-platform.io/iou/internal/pkg/errors"
)

// Search handles GET /api/v1/search.
func (s *Server) Search(c *gin.Context) {
	hits, err := s.search.Search(c.Request.Context(), c.Query("q"), c.Query("domain_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hits": hits, "count": len(hits)})
}

// ListEntities handles GET /api/v1/entities.
func (s *Server) ListEntities(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "limit must be a non-negative integer"))
			return
		}
		limit = n
	}
	entities, err := s.graphs.ListEntities(c.Request.Context(), c.Query("entity_type"), limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entities": entities, "count": len(entities)})
}

// GetEntityRelations handles GET /api/v1/entities/:id/relations.
func (s *Server) GetEntityRelations(c *gin.Context) {
	relations, err := s.graphs.GetEntityRelations(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, relations)
}

// ListCommunities handles GET /api/v1/communities. The optional level
// parameter selects one hierarchy level; without it all levels of the
// latest generation are returned.
func (s *Server) ListCommunities(c *gin.Context) {
	level := -1
	if raw := c.Query("level"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "level must be a non-negative integer"))
			return
		}
		level = n
	}
	communities, err := s.graphs.ListCommunities(c.Request.Context(), level)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"communities": communities, "count": len(communities)})
}

// GetGraphStats handles GET /api/v1/graph/stats.
func (s *Server) GetGraphStats(c *gin.Context) {
	stats, err := s.graphs.Stats(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
