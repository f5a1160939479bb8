package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	ServerEndpointAddr string        `env:"SKILLADMIN_SERVER_ADDR"`
	RequestTimeout     time.Duration `env:"SKILLADMIN_REQUEST_TIMEOUT"`
	DatabaseDSN        string        `env:"SKILLADMIN_DATABASE_DSN"`
}

// parseEnv overlays Config with values from the environment. Unset
// variables leave the current values alone.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = ec.ServerEndpointAddr
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.DatabaseDSN != "" {
		cfg.DatabaseDSN = ec.DatabaseDSN
	}
}
