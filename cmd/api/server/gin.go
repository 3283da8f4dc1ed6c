package server

import (
	"net/http"
	"time"

	ginhandler "users-service/internal/adapter/gin/handler"
	"users-service/internal/adapter/gin/middleware"
	ginrouter "users-service/internal/adapter/gin/router"
	"users-service/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupGinServer creates and configures the Gin REST API server
func SetupGinServer(
	env string,
	serviceName string,
	handler *ginhandler.UserHandler,
	rateLimiter *middleware.RateLimiter,
	m *metrics.Metrics,
	addr string,
	l *zap.Logger,
) *http.Server {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := ginrouter.SetupRouter(handler, ginrouter.Options{
		ServiceName: serviceName,
		RateLimiter: rateLimiter,
		Metrics:     m,
	}, l)

	l.Info("Gin REST API configured",
		zap.String("address", addr),
		zap.Bool("rate_limit", rateLimiter != nil),
		zap.Bool("metrics", m != nil),
	)

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
