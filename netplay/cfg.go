package netplay

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RelayURL    string        `env:"WOLFCHASE_RELAY_URL" envDefault:"ws://127.0.0.1:8080/play"`
	DialTimeout time.Duration `env:"WOLFCHASE_DIAL_TIMEOUT" envDefault:"2s"`
}

// ParseConfig loads client configuration from environment variables.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
