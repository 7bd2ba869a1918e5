// Package handlers implements the HTTP handlers for the IOU platform
// API. Handlers bind and validate the request, delegate to a service,
// and push errors to the centralized error middleware via c.Error.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"iou-platform.io/iou/internal/service"
	"iou-platform.io/iou/internal/suggest"
)

// Server carries the handler dependencies.
type Server struct {
	pool        *pgxpool.Pool
	domains     *service.DomainService
	objects     *service.ObjectService
	search      *service.SearchService
	graphs      *service.GraphService
	compliance  *service.ComplianceService
	suggestions *suggest.Service
}

// NewServer creates the API server.
func NewServer(
	pool *pgxpool.Pool,
	domains *service.DomainService,
	objects *service.ObjectService,
	searchSvc *service.SearchService,
	graphs *service.GraphService,
	compliance *service.ComplianceService,
	suggestions *suggest.Service,
) *Server {
	return &Server{
		pool:        pool,
		domains:     domains,
		objects:     objects,
		search:      searchSvc,
		graphs:      graphs,
		compliance:  compliance,
		suggestions: suggestions,
	}
}

// RegisterRoutes mounts all API routes on the router.
func (s *Server) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", s.GetHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	v1.POST("/domains", s.CreateDomain)
	v1.GET("/domains", s.ListDomains)
	v1.GET("/domains/:id", s.GetDomain)
	v1.GET("/domains/:id/context", s.GetDomainContext)
	v1.GET("/domains/:id/objects", s.ListDomainObjects)
	v1.PUT("/domains/:id/status", s.UpdateDomainStatus)

	v1.POST("/objects", s.CreateObject)
	v1.GET("/objects/:id", s.GetObject)
	v1.GET("/objects/:id/versions", s.ListObjectVersions)
	v1.POST("/objects/:id/versions", s.CreateObjectVersion)
	v1.POST("/objects/:id/reprocess", s.ReprocessObject)
	v1.GET("/objects/:id/suggestions", s.ListObjectSuggestions)

	v1.POST("/suggestions/:id/review", s.ReviewSuggestion)

	v1.GET("/compliance/:object_id", s.GetCompliance)

	v1.GET("/search", s.Search)

	v1.GET("/entities", s.ListEntities)
	v1.GET("/entities/:id/relations", s.GetEntityRelations)
	v1.GET("/communities", s.ListCommunities)
	v1.GET("/graph/stats", s.GetGraphStats)

	v1.GET("/apps/recommend", s.RecommendApps)
}
