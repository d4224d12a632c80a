// Package config handles global configuration loading using viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"firestige.xyz/encounter/internal/core"
)

// GlobalConfig represents the top-level configuration.
// Maps to the `encounter:` root key in YAML.
type GlobalConfig struct {
	Log      LogConfig      `mapstructure:"log"`
	Feature  FeatureConfig  `mapstructure:"feature"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Pokemon  PokemonConfig  `mapstructure:"pokemon"`
	Ingest   IngestConfig   `mapstructure:"ingest"`
	EventBus EventBusConfig `mapstructure:"eventbus"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// ─── Feature Gates ───

// FeatureConfig holds the two user toggles. Both are read per event, so a
// reload takes effect on the next message without restarting the feature.
type FeatureConfig struct {
	NotificationEnabled bool `mapstructure:"notification_enabled"`
	DismissEnabled      bool `mapstructure:"dismiss_enabled"`
}

// ─── Notification Sink ───

// NotifyConfig selects the sink and its rate limit.
type NotifyConfig struct {
	Sink         string                 `mapstructure:"sink"`           // console | log
	MaxPerSecond float64                `mapstructure:"max_per_second"` // 0 = unlimited
	Options      map[string]interface{} `mapstructure:"options"`        // sink specific, decoded by the sink
}

// ─── Species Catalog ───

// PokemonConfig points at an optional species overlay file.
type PokemonConfig struct {
	SpeciesFile string `mapstructure:"species_file"` // Empty = built-in table only
}

// ─── Ingest ───

// IngestConfig configures the transports fed by the interception layer.
type IngestConfig struct {
	Socket         string            `mapstructure:"socket"`          // Empty = socket disabled
	MaxConnections int               `mapstructure:"max_connections"` // 0 = unlimited
	Kafka          KafkaIngestConfig `mapstructure:"kafka"`
}

// KafkaIngestConfig configures frame consumption from a Kafka topic.
type KafkaIngestConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Brokers     []string      `mapstructure:"brokers"`
	Topic       string        `mapstructure:"topic"`
	GroupID     string        `mapstructure:"group_id"`
	StartOffset string        `mapstructure:"start_offset"` // earliest / latest
	MaxAge      time.Duration `mapstructure:"max_age"`      // Older frames are skipped; 0 = keep all
}

// ─── Event Bus ───

// EventBusConfig sizes the in-memory bus.
type EventBusConfig struct {
	Partitions int `mapstructure:"partitions"`
	QueueSize  int `mapstructure:"queue_size"`
}

// ─── Metrics ───

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
	Path    string `mapstructure:"path"`
}

// ─── Log ───

// LogConfig contains logging settings.
type LogConfig struct {
	Level   string           `mapstructure:"level"`   // debug / info / warn / error
	Format  string           `mapstructure:"format"`  // json / text
	Pattern string           `mapstructure:"pattern"` // text only: %time %level %field %msg %n
	Time    string           `mapstructure:"time"`    // Go time layout
	Outputs LogOutputsConfig `mapstructure:"outputs"`
}

// LogOutputsConfig contains structured log output destinations.
type LogOutputsConfig struct {
	File FileOutputConfig `mapstructure:"file"`
}

// FileOutputConfig configures file log output.
type FileOutputConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Path     string         `mapstructure:"path"`
	Rotation RotationConfig `mapstructure:"rotation"`
}

// RotationConfig configures log file rotation.
type RotationConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`  // MB
	MaxAgeDays int  `mapstructure:"max_age_days"` // Days
	MaxBackups int  `mapstructure:"max_backups"`
	Compress   bool `mapstructure:"compress"`
}

// ─── Loading ───

// configRoot is the top-level wrapper matching the YAML structure `encounter: ...`.
type configRoot struct {
	Encounter GlobalConfig `mapstructure:"encounter"`
}

// Load loads configuration from file.
// The YAML file uses `encounter:` as root key; env vars use the ENCOUNTER_ prefix (e.g., ENCOUNTER_LOG_LEVEL).
func Load(path string) (*GlobalConfig, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return decode(v)
}

// Default returns the configuration built from defaults and environment only.
func Default() *GlobalConfig {
	cfg, err := decode(newViper())
	if err != nil {
		// defaults are always valid unless the environment overrides them badly
		panic(err)
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()

	// The `encounter.` key prefix maps to `ENCOUNTER_` in env vars via the key replacer
	// (e.g., key "encounter.log.level" → env "ENCOUNTER_LOG_LEVEL").
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

func decode(v *viper.Viper) (*GlobalConfig, error) {
	var root configRoot
	if err := v.Unmarshal(&root); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg := root.Encounter

	if err := cfg.ValidateAndApplyDefaults(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration.
// All keys use "encounter." prefix to match the YAML root wrapper.
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("encounter.log.level", "info")
	v.SetDefault("encounter.log.format", "text")
	v.SetDefault("encounter.log.pattern", "%time [%level] %field %msg%n")
	v.SetDefault("encounter.log.time", "2006-01-02 15:04:05.000")
	v.SetDefault("encounter.log.outputs.file.enabled", false)
	v.SetDefault("encounter.log.outputs.file.path", "/var/log/encounter/encounter.log")
	v.SetDefault("encounter.log.outputs.file.rotation.max_size_mb", 100)
	v.SetDefault("encounter.log.outputs.file.rotation.max_age_days", 30)
	v.SetDefault("encounter.log.outputs.file.rotation.max_backups", 5)
	v.SetDefault("encounter.log.outputs.file.rotation.compress", true)

	// Feature gates
	v.SetDefault("encounter.feature.notification_enabled", true)
	v.SetDefault("encounter.feature.dismiss_enabled", true)

	// Notification sink
	v.SetDefault("encounter.notify.sink", "console")
	v.SetDefault("encounter.notify.max_per_second", 5)

	// Species catalog
	v.SetDefault("encounter.pokemon.species_file", "")

	// Ingest
	v.SetDefault("encounter.ingest.socket", "/var/run/encounter.sock")
	v.SetDefault("encounter.ingest.max_connections", 16)
	v.SetDefault("encounter.ingest.kafka.enabled", false)
	v.SetDefault("encounter.ingest.kafka.topic", "encounter-frames")
	v.SetDefault("encounter.ingest.kafka.group_id", "encounter")
	v.SetDefault("encounter.ingest.kafka.start_offset", "latest")
	v.SetDefault("encounter.ingest.kafka.max_age", "30s")

	// Event bus
	v.SetDefault("encounter.eventbus.partitions", 4)
	v.SetDefault("encounter.eventbus.queue_size", 1024)

	// Metrics defaults
	v.SetDefault("encounter.metrics.enabled", true)
	v.SetDefault("encounter.metrics.listen", ":9091")
	v.SetDefault("encounter.metrics.path", "/metrics")
}

// ValidateAndApplyDefaults validates configuration and applies runtime defaults.
func (cfg *GlobalConfig) ValidateAndApplyDefaults() error {
	// ── Log validation ──
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("%w: invalid log level: %s (must be debug/info/warn/error)", core.ErrConfigInvalid, cfg.Log.Level)
	}
	if cfg.Log.Format != "json" && cfg.Log.Format != "text" {
		return fmt.Errorf("%w: invalid log format: %s (must be json/text)", core.ErrConfigInvalid, cfg.Log.Format)
	}
	if cfg.Log.Outputs.File.Enabled && cfg.Log.Outputs.File.Path == "" {
		return fmt.Errorf("%w: log.outputs.file.path is required when file output is enabled", core.ErrConfigInvalid)
	}

	// ── Notify validation ──
	switch cfg.Notify.Sink {
	case "console", "log":
	default:
		return fmt.Errorf("%w: unsupported notify.sink: %s (must be console/log)", core.ErrConfigInvalid, cfg.Notify.Sink)
	}
	if cfg.Notify.MaxPerSecond < 0 {
		return fmt.Errorf("%w: notify.max_per_second must not be negative", core.ErrConfigInvalid)
	}

	// ── Ingest validation ──
	if cfg.Ingest.MaxConnections < 0 {
		return fmt.Errorf("%w: ingest.max_connections must not be negative", core.ErrConfigInvalid)
	}
	if k := cfg.Ingest.Kafka; k.Enabled {
		if len(k.Brokers) == 0 || k.Topic == "" || k.GroupID == "" {
			return fmt.Errorf("%w: ingest.kafka requires brokers, topic and group_id when enabled", core.ErrConfigInvalid)
		}
		if k.StartOffset != "earliest" && k.StartOffset != "latest" {
			return fmt.Errorf("%w: invalid ingest.kafka.start_offset: %s (must be earliest/latest)", core.ErrConfigInvalid, k.StartOffset)
		}
	}
	if cfg.Ingest.Kafka.MaxAge < 0 {
		return fmt.Errorf("%w: ingest.kafka.max_age must not be negative", core.ErrConfigInvalid)
	}

	// ── Event bus validation ──
	if cfg.EventBus.Partitions < 1 {
		return fmt.Errorf("%w: eventbus.partitions must be at least 1", core.ErrConfigInvalid)
	}
	if cfg.EventBus.QueueSize < 1 {
		return fmt.Errorf("%w: eventbus.queue_size must be at least 1", core.ErrConfigInvalid)
	}

	// ── Metrics ──
	if cfg.Metrics.Enabled && cfg.Metrics.Listen == "" {
		return fmt.Errorf("%w: metrics.listen is required when metrics.enabled=true", core.ErrConfigInvalid)
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	return nil
}
