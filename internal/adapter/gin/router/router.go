package router

import (
	"net/http"

	"users-service/internal/adapter/gin/handler"
	"users-service/internal/adapter/gin/middleware"
	"users-service/internal/metrics"
	"users-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options carries the optional collaborators of the router.
// A nil RateLimiter or Metrics disables that feature.
type Options struct {
	ServiceName string
	RateLimiter *middleware.RateLimiter
	Metrics     *metrics.Metrics
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(userHandler *handler.UserHandler, opts Options, log *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(logger.RequestIDMiddleware())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": opts.ServiceName,
		})
	})

	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	users := router.Group("/users")
	if opts.RateLimiter != nil {
		users.Use(opts.RateLimiter.Handler())
	}
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
	}

	return router
}
