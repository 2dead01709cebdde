package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Defaults holds the environment overrides for command line flag defaults.
// Flags given on the command line still win.
type Defaults struct {
	Tuning  string `env:"FRETDEX_TUNING" envDefault:"E,A,D,G,B,E"`
	Debug   bool   `env:"FRETDEX_DEBUG"`
	Compact bool   `env:"FRETDEX_COMPACT"`
	Limit   int    `env:"FRETDEX_LIMIT" envDefault:"0"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Defaults from the environment.
func Load() (Defaults, error) {
	var d Defaults
	err := ParseEnv(&d)
	return d, err
}
