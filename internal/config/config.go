package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the ops HTTP server, the database
// and redis connections, the vote workflows and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the level implied by Environment (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains the ops HTTP server configuration (health, metrics, pprof)
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response.
		// pprof profiles run for up to 30s by default so this must stay above that.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"fanvote" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis holds the leaderboard cache connection
	Redis struct {
		// URL is a redis:// connection URL
		URL string `env:"REDIS_URL" env-default:"redis://localhost:6379/0" yaml:"url"`
		// KeyPrefix namespaces all keys written by this service
		KeyPrefix string `env:"REDIS_KEY_PREFIX" env-default:"fanvote" yaml:"keyPrefix"`
		// DialTimeout bounds connecting to redis
		DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"5s" yaml:"dialTimeout"`
	} `yaml:"redis"`

	// Voting configures the vote and redemption workflows
	Voting struct {
		// MaxConflictRetries is how many times a workflow is retried after losing a concurrent write
		MaxConflictRetries uint64 `env:"VOTING_MAX_CONFLICT_RETRIES" env-default:"5" yaml:"maxConflictRetries"`
		// RetryBaseDelay is the first backoff delay between retries
		RetryBaseDelay time.Duration `env:"VOTING_RETRY_BASE_DELAY" env-default:"10ms" yaml:"retryBaseDelay"`
		// InitialBudget is the balance of a budget created by a grant or a redemption before it is credited
		InitialBudget int64 `env:"VOTING_INITIAL_BUDGET" env-default:"0" yaml:"initialBudget"`
		// LeaderboardJobMaxAttempts is the maximum number of attempts of a leaderboard refresh job
		LeaderboardJobMaxAttempts int `env:"VOTING_LEADERBOARD_JOB_MAX_ATTEMPTS" env-default:"5" yaml:"leaderboardJobMaxAttempts"` //nolint: lll
	} `yaml:"voting"`

	// Codes configures code generation
	Codes struct {
		// Length is the number of characters of a generated code value
		Length int `env:"CODES_LENGTH" env-default:"12" yaml:"length"`
		// DefaultTTL is the validity of generated codes when the caller does not pick one
		DefaultTTL time.Duration `env:"CODES_DEFAULT_TTL" env-default:"720h" yaml:"defaultTTL"`
	} `yaml:"codes"`

	// Worker configures the background job workers
	Worker struct {
		// MaxWorkers is the number of jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// JWT holds the RS256 key pair protecting the ops endpoints
	JWT struct {
		// PublicKey is the PEM encoded public key used to verify admin tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded private key used by the jwt command to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
