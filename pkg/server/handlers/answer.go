// Package handlers implements the HTTP handlers of the demo API.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundprediction/herorag"
	"github.com/soundprediction/herorag/pkg/driver"
	"github.com/soundprediction/herorag/pkg/server/dto"
	"github.com/soundprediction/herorag/pkg/types"
)

// AnswerHandler handles retrieve-and-answer requests.
type AnswerHandler struct {
	rag herorag.HeroRAG
}

// NewAnswerHandler creates a new answer handler.
func NewAnswerHandler(rag herorag.HeroRAG) *AnswerHandler {
	return &AnswerHandler{rag: rag}
}

// Answer handles POST /api/v1/answer.
func (h *AnswerHandler) Answer(c *gin.Context) {
	var req dto.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	switch types.Mode(req.Mode) {
	case types.ModeGraph:
		answer, err := h.rag.AnswerGraph(c.Request.Context(), req.Query)
		if err != nil {
			writeGraphError(c, err)
			return
		}
		c.JSON(http.StatusOK, answer)
	case types.ModeTraditional, "":
		c.JSON(http.StatusOK, h.rag.AnswerTraditional(c.Request.Context(), req.Query, req.TopK))
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_request",
			Message: "mode must be \"traditional\" or \"graph\"",
		})
	}
}

// Search handles POST /api/v1/search, returning raw retrieval results
// without answer generation.
func (h *AnswerHandler) Search(c *gin.Context) {
	var req dto.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	switch types.Mode(req.Mode) {
	case types.ModeGraph:
		results, err := h.rag.SearchGraph(c.Request.Context(), req.Query)
		if err != nil {
			writeGraphError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": results})
	case types.ModeTraditional, "":
		c.JSON(http.StatusOK, gin.H{"results": h.rag.SearchDocuments(req.Query, req.TopK)})
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_request",
			Message: "mode must be \"traditional\" or \"graph\"",
		})
	}
}

// writeGraphError distinguishes an unreachable graph store from other
// failures. There is no fallback for missing entity data, so the
// client sees the outage directly.
func writeGraphError(c *gin.Context, err error) {
	if errors.Is(err, &driver.UnavailableError{}) {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "graph_unavailable", Message: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "search_failed", Message: err.Error()})
}
