package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Album metadata backends.
const (
	BackendFS       = "fs"
	BackendPostgres = "postgres"
)

// Config holds all configuration for the slide album service
type Config struct {
	// Server
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	LogLevel string `yaml:"log_level"`

	// External authentication service
	AuthAPIBaseURL string        `yaml:"auth_api_base_url"`
	AuthTimeout    time.Duration `yaml:"auth_timeout"`

	// Slide album storage
	UploadDir    string `yaml:"upload_dir"`
	AlbumBackend string `yaml:"album_backend"`

	// Database (required only for the postgres backend)
	DatabaseURL string `yaml:"database_url"`

	// CORS
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Load reads configuration from environment variables, with an optional YAML
// overlay selected by CONFIG_FILE. Environment values win over the file so a
// deployment can still override single settings.
func Load() (*Config, error) {
	config := &Config{
		Port:         "6789",
		Host:         "0.0.0.0",
		LogLevel:     "info",
		AuthTimeout:  5 * time.Second,
		UploadDir:    "upload",
		AlbumBackend: BackendFS,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := config.loadFile(path); err != nil {
			return nil, err
		}
	}

	config.Port = getEnvOrDefault("PORT", config.Port)
	config.Host = getEnvOrDefault("HOST", config.Host)
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", config.LogLevel)

	config.AuthAPIBaseURL = getEnvOrDefault("AUTH_API_BASE_URL", config.AuthAPIBaseURL)
	if config.AuthAPIBaseURL == "" {
		return nil, fmt.Errorf("AUTH_API_BASE_URL is required")
	}

	if timeoutStr := os.Getenv("AUTH_TIMEOUT"); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTH_TIMEOUT: %w", err)
		}
		config.AuthTimeout = timeout
	}

	config.UploadDir = getEnvOrDefault("UPLOAD_DIR", config.UploadDir)
	config.AlbumBackend = getEnvOrDefault("ALBUM_BACKEND", config.AlbumBackend)
	config.DatabaseURL = getEnvOrDefault("DATABASE_URL", config.DatabaseURL)

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		config.AllowedOrigins = splitAndTrim(origins)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFile overlays values from a YAML config file.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.AuthTimeout < time.Second {
		return fmt.Errorf("auth timeout must be at least 1s, got: %v", c.AuthTimeout)
	}

	if c.UploadDir == "" {
		return fmt.Errorf("upload dir must not be empty")
	}

	switch c.AlbumBackend {
	case BackendFS:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres album backend")
		}
	default:
		return fmt.Errorf("invalid album backend: %s (must be %q or %q)", c.AlbumBackend, BackendFS, BackendPostgres)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
