package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHealth handles GET /healthz. Reports degraded with 503 when the
// database is unreachable.
func (s *Server) GetHealth(c *gin.Context) {
	checks := map[string]string{"database": "ok"}
	status := "ok"
	httpStatus := http.StatusOK

	if s.pool != nil {
		if err := s.pool.Ping(c.Request.Context()); err != nil {
			checks["database"] = "error"
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}
	}

	c.JSON(httpStatus, gin.H{"status": status, "checks": checks})
}
