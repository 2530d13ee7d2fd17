package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// NewLookup builds the server for the customer lookup UI and its JSON API.
func NewLookup(addr string, logger *log.Logger, deps LookupDeps) (*Server, error) {
	router, err := buildLookupRouter(logger, deps)
	if err != nil {
		return nil, err
	}
	return newServer(addr, logger, router), nil
}

// NewDirectory builds the server for the reference customer directory.
func NewDirectory(addr string, logger *log.Logger, db Pinger, deps DirectoryDeps) (*Server, error) {
	router, err := buildDirectoryRouter(logger, db, deps)
	if err != nil {
		return nil, err
	}
	return newServer(addr, logger, router), nil
}

func newServer(addr string, logger *log.Logger, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(dep Pinger, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if dep == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": name + " not configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := dep.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": name + " not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
