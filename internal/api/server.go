package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/banshee-data/trackcore/internal/core"
	"github.com/banshee-data/trackcore/internal/monitoring"
	"github.com/banshee-data/trackcore/internal/protocol"
	"github.com/banshee-data/trackcore/internal/version"
)

// Orchestrator is the part of core.Orchestrator the HTTP surface uses.
type Orchestrator interface {
	State(ctx context.Context) (protocol.Experiment, error)
	Command(ctx context.Context, cmd protocol.Command) error
	Heartbeat() error
}

type Server struct {
	o       Orchestrator
	metrics *monitoring.Metrics
	timeout time.Duration
}

func NewServer(o Orchestrator, metrics *monitoring.Metrics) *Server {
	return &Server{o: o, metrics: metrics, timeout: 5 * time.Second}
}

// LoggingMiddleware logs method, path, status and duration.
func LoggingMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("http request",
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.RequestURI()),
			zap.Float64("ms", float64(time.Since(start).Nanoseconds())/1e6),
		)
	}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), LoggingMiddleware(monitoring.L().Named("http")))

	r.GET("/api/ping", s.ping)
	r.GET("/api/state", s.showState)
	r.POST("/api/command", s.sendCommand)
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
	return r
}

func (s *Server) ping(c *gin.Context) {
	status := http.StatusOK
	alive := true
	if err := s.o.Heartbeat(); err != nil {
		status = http.StatusServiceUnavailable
		alive = false
	}
	c.JSON(status, gin.H{
		"message": "pong",
		"running": alive,
		"version": version.Version,
		"git_sha": version.GitSHA,
	})
}

func (s *Server) showState(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()
	st, err := s.o.State(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) sendCommand(c *gin.Context) {
	var cmd protocol.Command
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid command: " + err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()
	if err := s.o.Command(ctx, cmd); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cmd.String()})
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrInvalidCommand):
		status = http.StatusBadRequest
	case errors.Is(err, core.ErrShutdown):
		status = http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
