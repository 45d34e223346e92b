// Package config provides configuration loading and validation for the API
// server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Store backends for verification session state.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Config represents the application configuration. It can be loaded from a
// JSON file, from environment variables, or both; missing values use
// defaults or must be provided via CLI flags.
type Config struct {
	// Server
	ListenAddr string `json:"listen_addr,omitempty"` // host:port the HTTP server binds to

	// State store
	StoreBackend string `json:"store_backend,omitempty"` // memory, file, or redis
	StateFile    string `json:"state_file,omitempty"`    // path for the file backend
	RedisURL     string `json:"redis_url,omitempty"`     // connection URL for the redis backend

	// Jobs
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; empty uses the in-memory store

	// Verification
	VerifyEndpoint string `json:"verify_endpoint,omitempty"` // remote verification service URL; empty uses the mock
	MockSeed       int64  `json:"mock_seed,omitempty"`       // deterministic seed for the mock strategy (0 = time-based)

	// AI
	APIKey string `json:"api_key,omitempty"` // Gemini API key; empty uses canned AI responses

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Every field has an
// env counterpart so containerized deployments need no config file.
// Unparseable MOCK_SEED or VERBOSE values are ignored.
func FromEnv() *Config {
	cfg := &Config{
		ListenAddr:     os.Getenv("LISTEN_ADDR"),
		StoreBackend:   os.Getenv("STORE_BACKEND"),
		StateFile:      os.Getenv("STATE_FILE"),
		RedisURL:       os.Getenv("REDIS_URL"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		VerifyEndpoint: os.Getenv("VERIFY_ENDPOINT"),
		APIKey:         os.Getenv("GEMINI_API_KEY"),
	}

	if raw := os.Getenv("MOCK_SEED"); raw != "" {
		if seed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.MockSeed = seed
		}
	}
	if raw := os.Getenv("VERBOSE"); raw != "" {
		if verbose, err := strconv.ParseBool(raw); err == nil {
			cfg.Verbose = verbose
		}
	}

	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case "", StoreMemory, StoreFile, StoreRedis:
	default:
		return fmt.Errorf("config error: unknown store_backend %q (must be %s, %s, or %s)",
			c.StoreBackend, StoreMemory, StoreFile, StoreRedis)
	}

	if c.StoreBackend == StoreRedis && c.RedisURL == "" {
		return fmt.Errorf("config error: 'redis_url' is required for the redis backend")
	}

	if c.MockSeed < 0 {
		return fmt.Errorf("config error: 'mock_seed' must be non-negative")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags and environment variables.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.StoreBackend == "" {
		result.StoreBackend = defaults.StoreBackend
	}
	if result.StateFile == "" {
		result.StateFile = defaults.StateFile
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.VerifyEndpoint == "" {
		result.VerifyEndpoint = defaults.VerifyEndpoint
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Int fields: use default if zero
	if result.MockSeed == 0 {
		result.MockSeed = defaults.MockSeed
	}

	// Final fallbacks
	if result.ListenAddr == "" {
		result.ListenAddr = ":8080"
	}
	if result.StoreBackend == "" {
		result.StoreBackend = StoreMemory
	}
	if result.StoreBackend == StoreFile && result.StateFile == "" {
		result.StateFile = "hirelogic_state.json"
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
