// Package config handles configuration for the MockView terminal client:
// defaults, an environment overlay, an optional JSON file, and flags,
// applied in that order.
package config

import "os"

// Config holds runtime settings for the MockView CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - SessionDBPath: sqlite file holding the persisted session (token + user).
type Config struct {
	APIBaseURL    string
	SessionDBPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.SessionDBPath = "mockview.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present), and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

func parseEnv(config *Config) {
	if v := os.Getenv("MOCKVIEW_API_URL"); v != "" {
		config.APIBaseURL = v
	}
	if v := os.Getenv("MOCKVIEW_SESSION_DB"); v != "" {
		config.SessionDBPath = v
	}
}
