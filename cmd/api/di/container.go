package di

import (
	"context"
	"fmt"
	"time"

	"users-service/cmd/api/infrastructure"
	"users-service/internal/adapter/db/mongodb"
	"users-service/internal/adapter/db/postgres"
	ginhandler "users-service/internal/adapter/gin/handler"
	"users-service/internal/adapter/gin/middleware"
	"users-service/internal/config"
	"users-service/internal/metrics"
	"users-service/internal/usecase/user"
	redisclient "users-service/pkg/redis"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Mongo       *mongo.Client
	DB          *gorm.DB
	RedisClient *redisclient.Client
	UserUC      user.Usecase
	RateLimiter *middleware.RateLimiter
	Metrics     *metrics.Metrics
	GinHandler  *ginhandler.UserHandler
}

// NewContainer creates and initializes all application dependencies.
// Only the backend named by STORE_DRIVER is opened; Redis is opened only
// when rate limiting is enabled.
func NewContainer(ctx context.Context, cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	c := &Container{
		Config: cfg,
		Logger: l,
	}

	repo, err := c.newRepository(ctx)
	if err != nil {
		c.closeQuietly()
		return nil, err
	}

	if cfg.RateLimit.Enabled {
		rdb, err := infrastructure.NewRedisClient(ctx, cfg, l)
		if err != nil {
			c.closeQuietly()
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		c.RedisClient = rdb
		c.RateLimiter = middleware.NewRateLimiter(
			rdb.Client,
			middleware.RateLimiterConfig{
				RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
				BurstCapacity:     cfg.RateLimit.BurstCapacity,
				Enabled:           cfg.RateLimit.Enabled,
			},
			l,
		)
	}

	if cfg.Metrics.Enabled {
		c.Metrics = metrics.New()
	}

	c.UserUC = user.New(repo, l)
	c.GinHandler = ginhandler.NewUserHandler(c.UserUC, l)

	return c, nil
}

func (c *Container) newRepository(ctx context.Context) (user.Repository, error) {
	switch c.Config.Store.Driver {
	case config.DriverMongo:
		client, err := infrastructure.NewMongoClient(ctx, c.Config, c.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mongo: %w", err)
		}
		c.Mongo = client
		coll := client.Database(c.Config.Mongo.Database).Collection(c.Config.Mongo.Collection)
		return mongodb.NewUserRepoMongo(coll, c.Logger), nil
	default:
		db, err := infrastructure.NewDatabase(c.Config, c.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		c.DB = db
		return postgres.NewUserRepoPG(db, c.Logger), nil
	}
}

func (c *Container) closeQuietly() {
	if err := c.Close(); err != nil {
		c.Logger.Warn("failed to release partially initialized resources", zap.Error(err))
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := infrastructure.DisconnectMongo(ctx, c.Mongo); err != nil {
			errs = append(errs, err)
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
