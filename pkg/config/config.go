package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prevostc/graph-tooling/pkg/validate"
	"gopkg.in/yaml.v3"
)

// Config represents the structure of a graph.yaml configuration file.
type Config struct {
	Node           string `yaml:"node"`
	RequestTimeout string `yaml:"request-timeout"`
	Keystore       string `yaml:"keystore"`
}

// DefaultRequestTimeout bounds a single JSON-RPC round trip.
const DefaultRequestTimeout = 2 * time.Minute

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = "graph.yaml"

// Loaded holds the currently loaded configuration (populated after Load).
var Loaded *Config

// Load reads and parses the config file at the given path.
// If the file does not exist and the path is the default, an empty config is returned without error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 -- config file path is intentionally user-specified via CLI flag
	if err != nil {
		if os.IsNotExist(err) && path == DefaultConfigFile {
			// Default config file is optional
			Loaded = cfg
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error in %s: %w", path, err)
	}

	Loaded = cfg
	return cfg, nil
}

// Validate checks that all configured values are well-formed.
func (c *Config) Validate() error {
	if c.Node != "" {
		if _, err := validate.NodeURL(c.Node); err != nil {
			return fmt.Errorf("node: %w", err)
		}
	}

	if c.RequestTimeout != "" {
		d, err := time.ParseDuration(c.RequestTimeout)
		if err != nil {
			return fmt.Errorf("request-timeout must be a duration such as 30s, got: %s", c.RequestTimeout)
		}
		if d <= 0 {
			return fmt.Errorf("request-timeout must be positive, got: %s", c.RequestTimeout)
		}
	}

	return nil
}

// GetNode returns the configured default node, or "" when none is set.
func (c *Config) GetNode() string {
	if c != nil {
		return c.Node
	}
	return ""
}

// GetRequestTimeout returns the configured request timeout, falling back to default.
func (c *Config) GetRequestTimeout() time.Duration {
	if c != nil && c.RequestTimeout != "" {
		if d, err := time.ParseDuration(c.RequestTimeout); err == nil && d > 0 {
			return d
		}
	}
	return DefaultRequestTimeout
}

// GetKeystore returns the configured keystore path, or "" to use the default location.
func (c *Config) GetKeystore() string {
	if c != nil {
		return c.Keystore
	}
	return ""
}
