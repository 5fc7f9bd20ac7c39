// Package server exposes the retrieval and answer surface over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/soundprediction/herorag"
	"github.com/soundprediction/herorag/pkg/config"
	"github.com/soundprediction/herorag/pkg/server/handlers"
)

// RequestIDHeader carries the per-request identifier assigned by the
// server and echoed back to the client.
const RequestIDHeader = "X-Request-ID"

// Server represents the HTTP server.
type Server struct {
	config *config.Config
	router *gin.Engine
	rag    herorag.HeroRAG
	server *http.Server
}

// New creates a new server instance.
func New(cfg *config.Config, rag herorag.HeroRAG) *Server {
	return &Server{
		config: cfg,
		rag:    rag,
	}
}

// Setup sets up the server routes and middleware.
func (s *Server) Setup() {
	gin.SetMode(s.config.Server.Mode)

	s.router = gin.New()
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(corsMiddleware())
	s.router.Use(requestIDMiddleware())

	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
}

// setupRoutes sets up all the routes.
func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(s.rag)
	answerHandler := handlers.NewAnswerHandler(s.rag)
	graphHandler := handlers.NewGraphHandler(s.rag)

	s.router.GET("/health", healthHandler.HealthCheck)
	s.router.GET("/ready", healthHandler.ReadinessCheck)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/answer", answerHandler.Answer)
		v1.POST("/search", answerHandler.Search)

		graph := v1.Group("/graph")
		{
			graph.POST("/seed", graphHandler.Seed)
			graph.GET("/export", graphHandler.Export)
		}
	}
}

// Start starts the server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Stop stops the server gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// corsMiddleware adds CORS headers so browser UIs can call the API.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware assigns each request a unique ID, honoring one
// supplied by the client.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
