package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Storage drivers accepted by STORE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application.
// Sections are squashed so the flat env keys decode straight into them.
type Config struct {
	App       AppConfig       `mapstructure:",squash"`
	Store     StoreConfig     `mapstructure:",squash"`
	Mongo     MongoConfig     `mapstructure:",squash"`
	DB        DatabaseConfig  `mapstructure:",squash"`
	SQLite    SQLiteConfig    `mapstructure:",squash"`
	Redis     RedisConfig     `mapstructure:",squash"`
	RateLimit RateLimitConfig `mapstructure:",squash"`
	Metrics   MetricsConfig   `mapstructure:",squash"`
	Logger    LoggerConfig    `mapstructure:",squash"`
}

// AppConfig holds configuration for the application server
type AppConfig struct {
	Env                    string `mapstructure:"APP_ENV"`
	HTTPPort               string `mapstructure:"HTTP_PORT" validate:"required,numeric"`
	ShutdownTimeoutSeconds int    `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS" validate:"gt=0"`
}

// StoreConfig selects the persistence backend
type StoreConfig struct {
	Driver string `mapstructure:"STORE_DRIVER" validate:"oneof=mongo postgres sqlite"`
}

// MongoConfig holds configuration for the document store
type MongoConfig struct {
	URI                   string `mapstructure:"MONGO_URI"`
	Database              string `mapstructure:"MONGO_DATABASE"`
	Collection            string `mapstructure:"MONGO_COLLECTION"`
	ConnectTimeoutSeconds int    `mapstructure:"MONGO_CONNECT_TIMEOUT_SECONDS"`
}

// DatabaseConfig holds configuration for the PostgreSQL database
type DatabaseConfig struct {
	Host            string `mapstructure:"DB_HOST"`
	Port            string `mapstructure:"DB_PORT"`
	User            string `mapstructure:"DB_USER"`
	Password        string `mapstructure:"DB_PASSWORD"`
	Name            string `mapstructure:"DB_NAME"`
	SSLMode         string `mapstructure:"DB_SSLMODE"`
	MaxOpenConns    int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `mapstructure:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `mapstructure:"DB_CONN_MAX_LIFETIME"`
	ConnMaxIdleTime int    `mapstructure:"DB_CONN_MAX_IDLE_TIME"`
}

// SQLiteConfig holds configuration for the embedded database
type SQLiteConfig struct {
	Path string `mapstructure:"SQLITE_PATH"`
}

// RedisConfig holds configuration for Redis
type RedisConfig struct {
	Host        string `mapstructure:"REDIS_HOST"`
	Port        string `mapstructure:"REDIS_PORT"`
	Password    string `mapstructure:"REDIS_PASSWORD"`
	DB          int    `mapstructure:"REDIS_DB"`
	MaxRetries  int    `mapstructure:"REDIS_MAX_RETRIES"`
	PoolSize    int    `mapstructure:"REDIS_POOL_SIZE"`
	MinIdleConn int    `mapstructure:"REDIS_MIN_IDLE_CONN"`
}

// RateLimitConfig holds configuration for request rate limiting
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"RATE_LIMIT_ENABLED"`
	RequestsPerSecond float64 `mapstructure:"RATE_LIMIT_REQUESTS_PER_SECOND"`
	BurstCapacity     int     `mapstructure:"RATE_LIMIT_BURST_CAPACITY"`
}

// MetricsConfig holds configuration for Prometheus metrics
type MetricsConfig struct {
	Enabled bool `mapstructure:"METRICS_ENABLED"`
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level            string  `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn warning error dpanic panic fatal"`
	Format           string  `mapstructure:"LOG_FORMAT" validate:"oneof=json console"`
	OutputPath       string  `mapstructure:"LOG_OUTPUT_PATH"`
	SlowQuerySeconds float64 `mapstructure:"LOG_SLOW_QUERY_SECONDS" validate:"gte=0"`
	EnableSampling   bool    `mapstructure:"LOG_ENABLE_SAMPLING"`
	ServiceName      string  `mapstructure:"SERVICE_NAME"`
	ServiceVersion   string  `mapstructure:"SERVICE_VERSION"`
}

// LoadConfig reads configuration from an optional app.env file in path,
// overridden by environment variables.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("app") // Look for app.env
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay if we have env vars
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	config.Store.Driver = strings.ToLower(config.Store.Driver)

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 15)

	v.SetDefault("STORE_DRIVER", DriverMongo)

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "users_service")
	v.SetDefault("MONGO_COLLECTION", "users")
	v.SetDefault("MONGO_CONNECT_TIMEOUT_SECONDS", 10)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "users_service")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("SQLITE_PATH", "users.db")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_MAX_RETRIES", 3)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_MIN_IDLE_CONN", 2)

	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("RATE_LIMIT_REQUESTS_PER_SECOND", 10.0)
	v.SetDefault("RATE_LIMIT_BURST_CAPACITY", 20)

	v.SetDefault("METRICS_ENABLED", true)

	// Logger defaults
	if v.GetString("APP_ENV") == "production" {
		v.SetDefault("LOG_LEVEL", "info")
		v.SetDefault("LOG_FORMAT", "json")
		v.SetDefault("LOG_ENABLE_SAMPLING", true)
	} else {
		v.SetDefault("LOG_LEVEL", "debug")
		v.SetDefault("LOG_FORMAT", "console")
		v.SetDefault("LOG_ENABLE_SAMPLING", false)
	}
	v.SetDefault("LOG_OUTPUT_PATH", "stdout")
	v.SetDefault("LOG_SLOW_QUERY_SECONDS", 0.2)
	v.SetDefault("SERVICE_NAME", "users-service")
	v.SetDefault("SERVICE_VERSION", "1.0.0")
}

// Validate checks field constraints and the settings the selected backends need.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	switch c.Store.Driver {
	case DriverMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" || c.Mongo.Collection == "" {
			return errors.New("invalid configuration: MONGO_URI, MONGO_DATABASE and MONGO_COLLECTION are required for the mongo driver")
		}
		if c.Mongo.ConnectTimeoutSeconds <= 0 {
			return errors.New("invalid configuration: MONGO_CONNECT_TIMEOUT_SECONDS must be positive")
		}
	case DriverPostgres:
		if c.DB.Host == "" || c.DB.Name == "" {
			return errors.New("invalid configuration: DB_HOST and DB_NAME are required for the postgres driver")
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			return errors.New("invalid configuration: SQLITE_PATH is required for the sqlite driver")
		}
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.BurstCapacity <= 0 {
			return errors.New("invalid configuration: rate limit requires positive RATE_LIMIT_REQUESTS_PER_SECOND and RATE_LIMIT_BURST_CAPACITY")
		}
		if c.Redis.Host == "" || c.Redis.Port == "" {
			return errors.New("invalid configuration: REDIS_HOST and REDIS_PORT are required when rate limiting is enabled")
		}
	}

	return nil
}

// DSN returns the PostgreSQL Data Source Name
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}
