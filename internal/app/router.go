package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"iou-platform.io/iou/internal/api/handlers"
	"iou-platform.io/iou/internal/api/middleware"
)

// newRouter builds the gin engine with middleware and routes.
// Authentication is handled upstream by the gateway; the API trusts the
// actor header it forwards.
func newRouter(server *handlers.Server) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID", "X-Actor"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	server.RegisterRoutes(router)
	return router
}
