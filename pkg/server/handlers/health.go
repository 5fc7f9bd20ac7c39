package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundprediction/herorag"
	"github.com/soundprediction/herorag/pkg/server/dto"
)

// HealthHandler reports service and backend status.
type HealthHandler struct {
	status herorag.StatusReporter
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(status herorag.StatusReporter) *HealthHandler {
	return &HealthHandler{status: status}
}

// HealthCheck handles GET /health. The service is healthy even without
// a language-model backend; the response says which backend, if any, is
// answering.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	desc := h.status.Describe()
	c.JSON(http.StatusOK, dto.StatusResponse{
		Status:  desc.Status,
		Backend: desc.Backend,
		Model:   desc.Model,
	})
}

// ReadinessCheck handles GET /ready. It returns 503 when no backend is
// configured so probes can distinguish simple mode from full operation.
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	if !h.status.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ready": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ready": true})
}
