package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger is the minimal contract the readiness probe needs from the
// cache backend connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler exposes liveness and readiness endpoints.
type HealthHandler struct {
	backend Pinger
}

// NewHealthHandler wires a health handler with its only dependency.
func NewHealthHandler(backend Pinger) *HealthHandler {
	return &HealthHandler{backend: backend}
}

// Liveness responds OK if the process is up; it doesn't check dependencies.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness verifies critical dependencies, currently just Redis.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.backend.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
