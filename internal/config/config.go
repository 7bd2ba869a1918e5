// Package config provides configuration management for the IOU platform.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (standard names like DATABASE_URL, SERVER_PORT)
// 3. Default values
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	River     RiverConfig     `mapstructure:"river"`
	Worker    WorkerConfig    `mapstructure:"worker"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Graph     GraphConfig     `mapstructure:"graph"`
	Retention RetentionConfig `mapstructure:"retention"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains PostgreSQL connection settings.
// One pgx pool is shared by Ent and River.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`

	// Pool configuration (shared by Ent and River)
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`

	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
// Priority: DATABASE_URL > constructed from individual fields.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslmode,
	)
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// RiverConfig contains River Queue settings.
type RiverConfig struct {
	MaxWorkers                  int           `mapstructure:"max_workers"`
	CompletedJobRetentionPeriod time.Duration `mapstructure:"completed_job_retention_period"`
}

// WorkerConfig contains worker pool settings.
type WorkerConfig struct {
	IngestPoolSize   int `mapstructure:"ingest_pool_size"`
	AnalysisPoolSize int `mapstructure:"analysis_pool_size"`
}

// AnalysisConfig tunes the per-object pipeline.
type AnalysisConfig struct {
	// RulesPath points at the YAML rule seed file loaded on boot.
	RulesPath string `mapstructure:"rules_path"`

	// SuggestionApplyThreshold auto-applies suggestions at or above this
	// confidence. Below it they stay proposed for manual review.
	SuggestionApplyThreshold float64 `mapstructure:"suggestion_apply_threshold"`

	// CooccurrenceWindow is the character distance within which two
	// entity mentions count as co-occurring.
	CooccurrenceWindow int `mapstructure:"cooccurrence_window"`

	// KeylockShards sizes the per-canonical-key mutex table.
	KeylockShards int `mapstructure:"keylock_shards"`

	// DedupInterval between entity dedup sweeps.
	DedupInterval time.Duration `mapstructure:"dedup_interval"`
}

// GraphConfig tunes community detection.
type GraphConfig struct {
	// DetectionInterval between periodic full detection runs.
	DetectionInterval time.Duration `mapstructure:"detection_interval"`

	// MaxLevels caps the community hierarchy depth.
	MaxLevels int `mapstructure:"max_levels"`

	// DetectionBudget bounds a single detection run; exceeding it
	// publishes the best partition found so far.
	DetectionBudget time.Duration `mapstructure:"detection_budget"`

	// MinCommunitySize below which a leaf community is dropped from
	// the published generation.
	MinCommunitySize int `mapstructure:"min_community_size"`
}

// RetentionConfig tunes the retention sweep job.
type RetentionConfig struct {
	// SweepInterval between destruction-date sweeps.
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// Load reads configuration from file and environment variables.
// Standard environment variables without prefix (DATABASE_URL, SERVER_PORT, etc.).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/iou")

	// Environment variable override.
	// No prefix: uses standard names like DATABASE_URL, SERVER_PORT, LOG_LEVEL
	// Maps nested config: database.max_conns → DATABASE_MAX_CONNS
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	if c.Analysis.SuggestionApplyThreshold < 0 || c.Analysis.SuggestionApplyThreshold > 1 {
		return fmt.Errorf("analysis.suggestion_apply_threshold must be in [0,1]")
	}
	if c.Analysis.CooccurrenceWindow <= 0 {
		return fmt.Errorf("analysis.cooccurrence_window must be positive")
	}
	if c.Graph.MaxLevels < 1 {
		return fmt.Errorf("graph.max_levels must be at least 1")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Database (shared pool)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "iou")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "iou")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 50)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "10m")
	v.SetDefault("database.auto_migrate", false)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// River
	v.SetDefault("river.max_workers", 10)
	v.SetDefault("river.completed_job_retention_period", "24h")

	// Worker Pool
	v.SetDefault("worker.ingest_pool_size", 100)
	v.SetDefault("worker.analysis_pool_size", 50)

	// Analysis pipeline
	v.SetDefault("analysis.rules_path", "config/rules.yaml")
	v.SetDefault("analysis.suggestion_apply_threshold", 0.9)
	v.SetDefault("analysis.cooccurrence_window", 300)
	v.SetDefault("analysis.keylock_shards", 256)
	v.SetDefault("analysis.dedup_interval", "24h")

	// Graph
	v.SetDefault("graph.detection_interval", "1h")
	v.SetDefault("graph.max_levels", 3)
	v.SetDefault("graph.detection_budget", "5m")
	v.SetDefault("graph.min_community_size", 2)

	// Retention
	v.SetDefault("retention.sweep_interval", "24h")
}
