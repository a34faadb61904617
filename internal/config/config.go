package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

// Storage drivers supported by the command line tools.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, storage, the
// evaluation pipeline, the identity provider and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the level implied by Environment (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSAllowedOrigins lists the origins allowed by CORS. Empty allows any origin.
		CORSAllowedOrigins []string `env:"HTTP_CORS_ALLOWED_ORIGINS" env-separator:"," yaml:"corsAllowedOrigins"`
	} `yaml:"http"`

	// Storage selects the backend used by the command line tools. The HTTP
	// server always runs on PostgreSQL because it needs the job queue.
	Storage struct {
		// Driver is either "postgres" or "sqlite"
		Driver string `env:"STORAGE_DRIVER" env-default:"postgres" yaml:"driver"`
		// SQLitePath is the database file used by the sqlite driver. Empty means
		// seoeval/seoeval.db under the XDG data home.
		SQLitePath string `env:"STORAGE_SQLITE_PATH" yaml:"sqlitePath"`
		// SQLiteBusyTimeout is how long sqlite statements wait for a lock
		SQLiteBusyTimeout time.Duration `env:"STORAGE_SQLITE_BUSY_TIMEOUT" env-default:"5s" yaml:"sqliteBusyTimeout"`
	} `yaml:"storage"`

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
		DatabaseName string `env:"DATABASE_NAME" env-default:"seoeval" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Evaluator configures evaluation runs
	Evaluator struct {
		// Concurrency bounds the URLs evaluated at once within a run. Zero means unbounded.
		Concurrency int `env:"EVALUATOR_CONCURRENCY" env-default:"16" yaml:"concurrency"`
		// JobTimeout bounds a single background evaluation
		JobTimeout time.Duration `env:"EVALUATOR_JOB_TIMEOUT" env-default:"10m" yaml:"jobTimeout"`
		// JobMaxAttempts is how many times River retries a failed evaluation
		JobMaxAttempts int `env:"EVALUATOR_JOB_MAX_ATTEMPTS" env-default:"5" yaml:"jobMaxAttempts"`
	} `yaml:"evaluator"`

	// Worker configures the background job runner
	Worker struct {
		// MaxWorkers is the number of evaluation jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"4" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// Identity configures the third-party identity provider
	Identity struct {
		// BaseURL overrides the Identity Toolkit endpoint, e.g. for the emulator
		BaseURL string `env:"IDENTITY_BASE_URL" yaml:"baseURL"`
		// APIKey is the web API key of the identity project
		APIKey string `env:"IDENTITY_API_KEY" yaml:"apiKey"`
		// Timeout bounds a single call to the provider
		Timeout time.Duration `env:"IDENTITY_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"identity"`

	// JWT configures the access tokens issued on login
	JWT struct {
		// PrivateKey is the PEM encoded RSA key used to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// TTL is the lifetime of issued tokens
		TTL time.Duration `env:"JWT_TTL" env-default:"24h" yaml:"ttl"`
	} `yaml:"jwt"`

	// Tracing configures OpenTelemetry trace export
	Tracing struct {
		// Endpoint is the OTLP/HTTP collector URL. Empty disables tracing.
		Endpoint string `env:"TRACING_ENDPOINT" yaml:"endpoint"`
		// SampleRatio is the fraction of traces to sample
		SampleRatio float64 `env:"TRACING_SAMPLE_RATIO" env-default:"1" yaml:"sampleRatio"`
	} `yaml:"tracing"`

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
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadEnv fills a Config from environment variables and defaults only.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Evaluator.Concurrency < 0 {
		return fmt.Errorf("evaluator concurrency must not be negative")
	}

	return nil
}

// SQLitePath returns the configured sqlite database file, defaulting to a
// file under the XDG data home.
func (c *Config) SQLitePath() string {
	if c.Storage.SQLitePath != "" {
		return c.Storage.SQLitePath
	}

	return filepath.Join(xdg.DataHome, "seoeval", "seoeval.db")
}
