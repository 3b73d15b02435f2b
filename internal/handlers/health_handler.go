package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	serviceName  = "event-planner"
	readyTimeout = 2 * time.Second
)

// ReadinessCheck reports whether one backing dependency is reachable.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// RoomStats is implemented by the in-memory registry.
type RoomStats interface {
	Stats() (rooms, connections int)
}

type HealthHandler struct {
	checks []ReadinessCheck
	stats  RoomStats
}

func NewHealthHandler(stats RoomStats, checks ...ReadinessCheck) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		stats:  stats,
	}
}

// Health godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200
// @Router       /health [get]
func (hh *HealthHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
}

// Ready godoc
// @Summary      Readiness probe
// @Description  Pings the database and Redis.
// @Tags         health
// @Produce      json
// @Success      200
// @Failure      503
// @Router       /ready [get]
func (hh *HealthHandler) Ready(ctx *gin.Context) {
	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), readyTimeout)
	defer cancel()

	for _, check := range hh.checks {
		if err := check.Check(checkCtx); err != nil {
			slog.Warn("readiness check failed", "dependency", check.Name, "error", err)
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"error":  check.Name + ": " + err.Error(),
			})
			return
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ready", "service": serviceName})
}

// Stats godoc
// @Summary      Live room counters for this process
// @Tags         realtime
// @Produce      json
// @Success      200
// @Router       /api/realtime/stats [get]
func (hh *HealthHandler) Stats(ctx *gin.Context) {
	rooms, connections := hh.stats.Stats()
	ctx.JSON(http.StatusOK, gin.H{"rooms": rooms, "connections": connections})
}
