package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	MigrateOnStart bool   `toml:"migrate_on_start"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// http
	AllowedOrigins              []string `toml:"allowed_origins"`
	WriteRateLimitAllowedPerMin int      `toml:"write_rate_limit_allowed_per_min"`

	// gymtrack
	CurrentSessionTTLHours  int `toml:"current_session_ttl_hours"`
	ProgressCacheSizeMB     int `toml:"progress_cache_size_mb"`
	ProgressCacheTTLSeconds int `toml:"progress_cache_ttl_seconds"`
	ProgressSessionsLimit   int `toml:"progress_sessions_limit"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Load reads the TOML file at path and returns the config section of env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.WriteRateLimitAllowedPerMin <= 0 {
		c.WriteRateLimitAllowedPerMin = 120
	}
	if c.CurrentSessionTTLHours <= 0 {
		c.CurrentSessionTTLHours = 24
	}
	if c.ProgressCacheSizeMB <= 0 {
		c.ProgressCacheSizeMB = 8
	}
	if c.ProgressCacheTTLSeconds <= 0 {
		c.ProgressCacheTTLSeconds = 600
	}
	if c.ProgressSessionsLimit <= 0 {
		c.ProgressSessionsLimit = 8
	}
}

func (c *Config) CurrentSessionTTL() time.Duration {
	return time.Duration(c.CurrentSessionTTLHours) * time.Hour
}

func (c *Config) ProgressCacheTTL() time.Duration {
	return time.Duration(c.ProgressCacheTTLSeconds) * time.Second
}
