package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundprediction/herorag"
)

// GraphHandler handles graph setup and export requests.
type GraphHandler struct {
	admin herorag.GraphAdmin
}

// NewGraphHandler creates a new graph handler.
func NewGraphHandler(admin herorag.GraphAdmin) *GraphHandler {
	return &GraphHandler{admin: admin}
}

// Seed handles POST /api/v1/graph/seed. It clears the graph and
// recreates the fixed dataset.
func (h *GraphHandler) Seed(c *gin.Context) {
	if err := h.admin.Seed(c.Request.Context()); err != nil {
		writeGraphError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "seeded"})
}

// Export handles GET /api/v1/graph/export, returning the full graph
// for visualization.
func (h *GraphHandler) Export(c *gin.Context) {
	export, err := h.admin.ExportGraph(c.Request.Context())
	if err != nil {
		writeGraphError(c, err)
		return
	}
	c.JSON(http.StatusOK, export)
}
