package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/vsinha/stockplan/pkg/application/services"
)

// Server hosts the planning tool endpoints
type Server struct {
	engine *gin.Engine
	ready  *atomic.Bool
}

// New builds the HTTP server around a planning service
func New(planning *services.PlanningService, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), requestLogger(logger))

	s := &Server{
		engine: engine,
		ready:  atomic.NewBool(false),
	}

	handler := NewHandler(planning, logger)

	tools := engine.Group("/api/v1/tools")
	tools.POST("/optimize-safety-stock", handler.OptimizeSafetyStock)
	tools.POST("/simulate-lead-time", handler.SimulateLeadTime)

	engine.GET("/healthz", s.health)

	return s
}

// SetReady marks the server as ready (or not) for traffic
func (s *Server) SetReady(ready bool) {
	s.ready.Store(ready)
}

// Handler exposes the underlying http.Handler
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) health(c *gin.Context) {
	if !s.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
