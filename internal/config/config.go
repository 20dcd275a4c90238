// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Store engine names accepted for STORE_ENGINE.
const (
	EngineFile  = "file"
	EngineGorm  = "gorm"
	EngineRedis = "redis"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port string `mapstructure:"PORT"`
	// RemoteURL is the base URL of the remote data service the gateway
	// probes at startup.
	RemoteURL      string `mapstructure:"REMOTE_URL"`
	ProbeTimeoutMS int    `mapstructure:"PROBE_TIMEOUT_MS"`
	// DataDir is where the file store keeps its JSON documents.
	DataDir string `mapstructure:"DATA_DIR"`
	// StoreEngine selects the document store backing: file, gorm or redis.
	StoreEngine    string `mapstructure:"STORE_ENGINE"`
	DBDriver       string `mapstructure:"DB_DRIVER"`
	DBDSN          string `mapstructure:"DB_DSN"`
	RedisURL       string `mapstructure:"REDIS_URL"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	Env            string `mapstructure:"APP_ENV"`
	ShellPath      string `mapstructure:"SHELL_PATH"`
	TraceEnabled   bool   `mapstructure:"TRACE_ENABLED"`
	TraceExporter  string `mapstructure:"TRACE_EXPORTER"`
	OTLPEndpoint   string `mapstructure:"OTLP_ENDPOINT"`
}

// ProbeTimeout returns the reachability-probe timeout as a duration.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutMS) * time.Millisecond
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; env vars and defaults cover everything.
	_ = viper.ReadInConfig()

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env != "development" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err != nil {
			log.Printf("No profile-specific config.%s.yml found, using base configuration", env)
		}
	}

	viper.SetDefault("PORT", "3001")
	viper.SetDefault("REMOTE_URL", "http://localhost:3001")
	viper.SetDefault("PROBE_TIMEOUT_MS", 2000)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("STORE_ENGINE", EngineFile)
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "file:retrospace.db")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SHELL_PATH", "./index.html")
	viper.SetDefault("TRACE_ENABLED", false)
	viper.SetDefault("TRACE_EXPORTER", "stdout")
	viper.SetDefault("OTLP_ENDPOINT", "localhost:4318")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.RemoteURL == "" {
		return errors.New("REMOTE_URL is required")
	}
	switch c.StoreEngine {
	case EngineFile, EngineGorm, EngineRedis:
	default:
		return fmt.Errorf("STORE_ENGINE must be one of %q, %q or %q", EngineFile, EngineGorm, EngineRedis)
	}
	if c.ProbeTimeoutMS <= 0 {
		return errors.New("PROBE_TIMEOUT_MS must be positive")
	}
	return nil
}
