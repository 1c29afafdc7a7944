package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	// HTTP server configuration
	Server ServerConfig `toml:"server"`

	// Deck source configuration
	Deck DeckConfig `toml:"deck"`

	// Logging configuration
	Log LogConfig `toml:"log"`

	// Application configuration
	App AppConfig `toml:"app"`
}

// ServerConfig contains REST API settings.
type ServerConfig struct {
	Port           int      `toml:"port" env:"COMBAT_CALC_PORT"`                                        // Listen port
	AllowedOrigins []string `toml:"allowed_origins" env:"COMBAT_CALC_ALLOWED_ORIGINS" envSeparator:","` // CORS origins
	RequestTimeout string   `toml:"request_timeout"`                                                    // Per-request timeout (e.g., "60s")
}

// DeckConfig contains deck source settings.
type DeckConfig struct {
	DefaultID    string `toml:"default_id" env:"DECK_ID"`          // Deck served at /api/deck
	BaseURL      string `toml:"base_url" env:"ARCHIDEKT_BASE_URL"` // Archidekt host
	Timeout      string `toml:"timeout"`                           // Upstream request timeout (e.g., "30s")
	RateInterval string `toml:"rate_interval"`                     // Minimum gap between upstream requests
	UserAgent    string `toml:"user_agent"`                        // User-Agent sent upstream
}

// LogConfig contains logging settings.
type LogConfig struct {
	Format string `toml:"format" env:"COMBAT_CALC_LOG_FORMAT"` // "text" or "json"
}

// AppConfig contains general application settings.
type AppConfig struct {
	DebugMode bool `toml:"debug_mode" env:"COMBAT_CALC_DEBUG"` // Enable debug logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*", "https://localhost:*"},
			RequestTimeout: "60s",
		},
		Deck: DeckConfig{
			DefaultID:    "",
			BaseURL:      "https://archidekt.com",
			Timeout:      "30s",
			RateInterval: "500ms",
			UserAgent:    "combat-calc/1.0",
		},
		Log: LogConfig{
			Format: "text",
		},
		App: AppConfig{
			DebugMode: false,
		},
	}
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".combat-calc", "config.toml"), nil
}

// Load reads the configuration file at path, falling back to defaults when
// the file does not exist, and then applies environment overrides. An empty
// path means DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := ApplyEnv(config); err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyEnv overrides fields tagged with env from the process environment.
// Unset variables leave the current values in place.
func ApplyEnv(c *Config) error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Save writes the configuration to path, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Server.Port)
	}

	if _, err := time.ParseDuration(c.Server.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request timeout %q: %w", c.Server.RequestTimeout, err)
	}

	if _, err := time.ParseDuration(c.Deck.Timeout); err != nil {
		return fmt.Errorf("invalid deck timeout %q: %w", c.Deck.Timeout, err)
	}

	if d, err := time.ParseDuration(c.Deck.RateInterval); err != nil {
		return fmt.Errorf("invalid rate interval %q: %w", c.Deck.RateInterval, err)
	} else if d < 0 {
		return fmt.Errorf("rate interval cannot be negative: %s", c.Deck.RateInterval)
	}

	if !strings.HasPrefix(c.Deck.BaseURL, "http://") && !strings.HasPrefix(c.Deck.BaseURL, "https://") {
		return fmt.Errorf("invalid deck base URL %q: must start with http:// or https://", c.Deck.BaseURL)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", c.Log.Format)
	}

	return nil
}

// GetRequestTimeout returns the per-request timeout as a duration.
func (c *Config) GetRequestTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Server.RequestTimeout)
}

// GetDeckTimeout returns the upstream timeout as a duration.
func (c *Config) GetDeckTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Deck.Timeout)
}

// GetRateInterval returns the minimum gap between upstream requests.
func (c *Config) GetRateInterval() (time.Duration, error) {
	return time.ParseDuration(c.Deck.RateInterval)
}
