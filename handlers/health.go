package handlers

import (
	"net/http"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// HealthReporter exposes the latest dependency check.
type HealthReporter interface {
	Status() utils.HealthStatus
}

type HealthHandler struct {
	Monitor HealthReporter
}

func NewHealthHandler(monitor HealthReporter) *HealthHandler {
	return &HealthHandler{Monitor: monitor}
}

// WelcomeHandler handles GET /.
func (h *HealthHandler) WelcomeHandler(c *gin.Context) {
	c.String(http.StatusOK, "Hello From Doctor Uncle own portal!")
}

// HealthHandler handles GET /health.
func (h *HealthHandler) HealthHandler(c *gin.Context) {
	if h.Monitor == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	status := h.Monitor.Status()
	if !status.Healthy() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "checks": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": status})
}
