// Package config assembles runtime settings for the admin client from
// defaults, an optional JSON file, environment variables, and flags.
// Later sources win.
package config

import "time"

// Config holds runtime settings for the skilladmin CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend (scheme included).
//   - RequestTimeout: per-request deadline delegated to the HTTP transport.
//   - DatabaseDSN: sqlite file holding the persisted session credential.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	DatabaseDSN        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:5000"
	c.RequestTimeout = 10 * time.Second
	c.DatabaseDSN = "skilladmin.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
