package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitlog/internal/store"

	"github.com/BurntSushi/toml"
)

const (
	StorageBackendPostgres  = store.BackendPostgres
	StorageBackendFirestore = store.BackendFirestore
	StorageBackendMemory    = store.BackendMemory
)

type Config struct {
	Environment    string   `toml:"environment"`
	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// history storage
	StorageBackend         string `toml:"storage_backend"`
	FirestoreProjectID     string `toml:"firestore_project_id"`
	HistoryCacheTTLSeconds int    `toml:"history_cache_ttl_seconds"`
	SuggestionsCacheMB     int    `toml:"suggestions_cache_mb"`
	// the zone every calendar date is interpreted in
	Timezone string `toml:"timezone"`
	// rate limits
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
	ApiRateLimitAllowedPerMin   int `toml:"api_rate_limit_allowed_per_min"`
	// backups
	BackupDriveFolder string `toml:"backup_drive_folder"`
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
		return nil, fmt.Errorf("env %s not configured", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env, with
// defaults applied.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.StorageBackend == "" {
		c.StorageBackend = StorageBackendPostgres
	}
	if c.HistoryCacheTTLSeconds == 0 {
		c.HistoryCacheTTLSeconds = 300
	}
	if c.SuggestionsCacheMB == 0 {
		c.SuggestionsCacheMB = 10
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
	if c.ApiRateLimitAllowedPerMin == 0 {
		c.ApiRateLimitAllowedPerMin = 300
	}
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageBackendPostgres, StorageBackendMemory:
	case StorageBackendFirestore:
		if c.FirestoreProjectID == "" {
			return fmt.Errorf("storage backend %s requires firestore_project_id", c.StorageBackend)
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", c.StorageBackend)
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured time zone, the process local zone when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) HistoryCacheTTL() time.Duration {
	return time.Duration(c.HistoryCacheTTLSeconds) * time.Second
}
