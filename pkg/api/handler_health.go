package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/johnazariah/aura-sub009/pkg/database"
	"github.com/johnazariah/aura-sub009/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// healthCheck is one named probe inside the health response.
type healthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// healthResponse is the GET /api/health body.
type healthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Agents   int                    `json:"agents"`
	Checks   map[string]healthCheck `json:"checks"`
	Database *database.HealthStatus `json:"database,omitempty"`
}

// health handles GET /api/health. Only Aura's own components are checked;
// the LLM sidecar is excluded so a flaky provider cannot make the service
// look dead.
func (s *Server) health(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]healthCheck)
	status := healthStatusHealthy

	dbHealth, err := s.db.Health(reqCtx)
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = healthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = healthCheck{Status: healthStatusHealthy}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, healthResponse{
		Status:   status,
		Version:  version.GitCommit,
		Agents:   s.registry.Len(),
		Checks:   checks,
		Database: dbHealth,
	})
}
