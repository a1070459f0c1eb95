package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Pinger checks that the database answers
type Pinger interface {
	Ping(ctx context.Context) error
}

// GuildSource reports how many guilds the gateway session sees
type GuildSource interface {
	GuildCount() int
}

// GuildCounter reports how many guilds stored preferences
type GuildCounter interface {
	CountGuilds(ctx context.Context) (int64, error)
}

// Server exposes health and status endpoints
type Server struct {
	engine *gin.Engine
	http   *http.Server
}

// NewServer builds the router. The listener starts with Start.
func NewServer(addr, version string, db Pinger, session GuildSource, guilds GuildCounter) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	status := newStatusController(version, db, session, guilds)
	engine.GET("/healthz", status.Health)
	engine.GET("/status", status.Status)

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:              addr,
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler returns the HTTP handler for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	log.WithField("addr", s.http.Addr).Info("Status server listening")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the listener and waits for requests in flight
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start),
		}).Debug("Status request")
	}
}
