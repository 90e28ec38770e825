package config

import (
	"strings"
	"time"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverBadger   = "badger"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// StorageConfig selects and configures the slot backend.
type StorageConfig struct {
	Driver       string        `yaml:"driver"        env:"STORAGE_DRIVER"        env-default:"badger"`
	Path         string        `yaml:"path"          env:"STORAGE_PATH"          env-default:"./data"`
	FeedbackSlot string        `yaml:"feedback_slot" env:"STORAGE_FEEDBACK_SLOT" env-default:"fixure_feedback"`
	PulseSlot    string        `yaml:"pulse_slot"    env:"STORAGE_PULSE_SLOT"    env-default:"fixure_pulse"`
	SyncWrites   bool          `yaml:"sync_writes"   env:"STORAGE_SYNC_WRITES"`
	GCInterval   time.Duration `yaml:"gc_interval"   env:"STORAGE_GC_INTERVAL"   env-default:"5m"`
	Watch        bool          `yaml:"watch"         env:"STORAGE_WATCH"`
	PatternCache bool          `yaml:"pattern_cache" env:"STORAGE_PATTERN_CACHE"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only used by the
// postgres storage driver.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id,X-Confirm"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig bounds submissions per client IP.
type RateLimitConfig struct {
	SubmissionsPerMinute int           `yaml:"submissions_per_minute" env:"RATE_LIMIT_SUBMISSIONS_PER_MINUTE" env-default:"30"`
	Burst                int           `yaml:"burst"                  env:"RATE_LIMIT_BURST"                  env-default:"10"`
	CleanupInterval      time.Duration `yaml:"cleanup_interval"       env:"RATE_LIMIT_CLEANUP_INTERVAL"       env-default:"5m"`
}

// Enabled reports whether submissions are rate limited at all.
func (c RateLimitConfig) Enabled() bool { return c.SubmissionsPerMinute > 0 }

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// SplitList splits a comma-separated setting, trimming blanks.
func SplitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
