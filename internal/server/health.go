package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Healthz reports connectivity to the canonical store, the search index,
// and the task broker. One failing probe flips the endpoint to 503.
func (s *Server) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	probes := map[string]HealthProbe{
		"store":  s.Probes.Store,
		"index":  s.Probes.Index,
		"broker": s.Probes.Broker,
	}

	checks := gin.H{}
	healthy := true
	for name, probe := range probes {
		if probe == nil {
			checks[name] = "skipped"
			continue
		}
		if err := probe(ctx); err != nil {
			s.Logger.Warn("health probe failed", "probe", name, "error", err)
			checks[name] = err.Error()
			healthy = false
			continue
		}
		checks[name] = "ok"
	}

	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}
	c.JSON(status, gin.H{"status": overall, "checks": checks})
}
