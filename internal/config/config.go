// Package config provides application configuration loading from
// environment variables and .env files via viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all server configuration. Priority: environment variables >
// .env file > defaults.
type Config struct {
	AppEnv         string // Application environment (dev, staging, prod)
	HTTPAddr       string // HTTP server bind address (e.g., ":8080")
	MetricsAddr    string // Metrics server bind address
	APIKey         string // Optional bearer token required on build requests
	AuditQueueSize int    // Buffer size of the async audit queue
}

// Load reads configuration from environment variables and an optional .env
// file. It never fails on a missing .env.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	_ = v.ReadInConfig() // .env is optional
	v.AutomaticEnv()

	setDefaults(v)

	return &Config{
		AppEnv:         v.GetString("APP_ENV"),
		HTTPAddr:       v.GetString("APP_HTTP_ADDR"),
		MetricsAddr:    v.GetString("METRICS_ADDR"),
		APIKey:         v.GetString("API_KEY"),
		AuditQueueSize: v.GetInt("AUDIT_QUEUE_SIZE"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("APP_HTTP_ADDR", ":8080")
	v.SetDefault("METRICS_ADDR", ":9090")
	v.SetDefault("API_KEY", "")
	v.SetDefault("AUDIT_QUEUE_SIZE", 256)
}

// ValidationError describes one configuration constraint violation.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation failed [%s]: %s", e.Field, e.Message)
}

// Validate checks startup constraints and returns the first violation.
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return ValidationError{Field: "APP_HTTP_ADDR", Message: "HTTP server address cannot be empty"}
	}
	if c.MetricsAddr == "" {
		return ValidationError{Field: "METRICS_ADDR", Message: "metrics server address cannot be empty"}
	}
	if c.AuditQueueSize <= 0 {
		return ValidationError{Field: "AUDIT_QUEUE_SIZE", Message: "audit queue size must be positive"}
	}
	return nil
}
