package infrastructure

import (
	"context"
	"fmt"
	"time"

	"users-service/internal/adapter/db/postgres"
	"users-service/internal/config"
	"users-service/pkg/logger"

	"github.com/glebarez/sqlite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewMongoClient connects to the document store and verifies it with a ping.
func NewMongoClient(ctx context.Context, cfg *config.Config, l *zap.Logger) (*mongo.Client, error) {
	timeout := time.Duration(cfg.Mongo.ConnectTimeoutSeconds) * time.Second

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetAppName(cfg.Logger.ServiceName).
		SetMonitor(logger.NewMongoCommandMonitor(l))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	l.Info("mongo connected successfully",
		zap.String("database", cfg.Mongo.Database),
		zap.String("collection", cfg.Mongo.Collection),
	)

	return client, nil
}

// DisconnectMongo closes the client's connections.
func DisconnectMongo(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongo: %w", err)
	}
	return nil
}

// NewDatabase opens the relational backend selected by STORE_DRIVER and
// creates the users table when it is missing.
func NewDatabase(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	gormLogger := logger.NewGormLogger(l, cfg.Logger.SlowQuerySeconds, cfg.Logger.Level)

	var dialector gorm.Dialector
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		dialector = pgdriver.Open(cfg.DB.DSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLite.Path)
	default:
		return nil, fmt.Errorf("driver %q is not relational", cfg.Store.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.Store.Driver == config.DriverSQLite {
		// single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.DB.ConnMaxLifetime) * time.Second)
		sqlDB.SetConnMaxIdleTime(time.Duration(cfg.DB.ConnMaxIdleTime) * time.Second)
	}

	if err := postgres.EnsureSchema(db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	l.Info("database connected successfully",
		zap.String("driver", cfg.Store.Driver),
		zap.Int("max_open_conns", sqlDB.Stats().MaxOpenConnections),
	)

	return db, nil
}

// CloseDatabase closes the database connection
func CloseDatabase(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
