package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/globalnotes/notes-workspace/internal/localstate"
)

// Config holds the configuration for the notes service.
// Environment variables are parsed from the NOTES_ prefix,
// e.g. NOTES_HTTP_PORT, NOTES_SHARE_ORIGIN.
type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"notes-service"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// DBPath overrides the default local store location
	// (~/.notes-workspace/notes.db).
	DBPath string `envconfig:"DB_PATH" default:""`

	// Share link assembly
	ShareOrigin string `envconfig:"SHARE_ORIGIN" default:"http://localhost:8080"`
	SharePath   string `envconfig:"SHARE_PATH" default:"/"`
	Company     string `envconfig:"COMPANY" default:"Global Notes Workspace"`

	// External auth provider (optional; local accounts work without it)
	AuthBaseURL string `envconfig:"AUTH_BASE_URL" default:""`
	AuthAnonKey string `envconfig:"AUTH_ANON_KEY" default:""`
}

// ResolveDefaults fills derived values that envconfig cannot express,
// currently only the database path.
func (c *Config) ResolveDefaults() error {
	if c.DBPath == "" {
		p, err := localstate.DBPath()
		if err != nil {
			return fmt.Errorf("resolve local db path: %w", err)
		}
		c.DBPath = p
	}
	return nil
}

// New creates a new Config by parsing environment variables.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("NOTES", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("service", cfg.ServiceName).
		Int("port", cfg.HTTPPort).
		Str("db_path", cfg.DBPath).
		Str("share_origin", cfg.ShareOrigin).
		Str("auth_configured", func() string {
			if cfg.AuthBaseURL != "" {
				return "true"
			}
			return "false"
		}()).
		Msg("Configuration loaded")

	return &cfg, nil
}

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
