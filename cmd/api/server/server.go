package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"users-service/cmd/api/di"
	"users-service/internal/config"

	"go.uber.org/zap"
)

// Server owns the HTTP listener for the users API.
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance from the wired container.
func New(cfg *config.Config, l *zap.Logger, c *di.Container) *Server {
	return &Server{
		Config: cfg,
		Logger: l,
		HTTP: SetupGinServer(
			cfg.App.Env,
			cfg.Logger.ServiceName,
			c.GinHandler,
			c.RateLimiter,
			c.Metrics,
			":"+cfg.App.HTTPPort,
			l,
		),
	}
}

// Start listens on the configured port and serves until Shutdown.
// A clean shutdown returns nil.
func (s *Server) Start(ctx context.Context) error {
	lc := net.ListenConfig{}
	lis, err := lc.Listen(ctx, "tcp", s.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.HTTP.Addr, err)
	}

	return s.Serve(lis)
}

// Serve accepts connections on lis.
func (s *Server) Serve(lis net.Listener) error {
	s.Logger.Info("HTTP server running", zap.String("address", lis.Addr().String()))

	if err := s.HTTP.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("shutting down HTTP server...")
	return s.HTTP.Shutdown(ctx)
}
