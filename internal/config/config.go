// Package config loads the demo driver settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the driver configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"COR_LOG_LEVEL" envDefault:"info"`
	// Foods is the request sequence fed to the chain.
	Foods []string `env:"COR_FOODS" envSeparator:"," envDefault:"Nut,Banana,Cup of coffee"`
	// ExtraEaters appends animals to the demo chain, as name=food pairs.
	ExtraEaters []string `env:"COR_EXTRA_EATERS" envSeparator:","`
}

// Eater is a parsed ExtraEaters entry.
type Eater struct {
	Name string
	Food string
}

// Load reads a .env file when present and parses the environment.
func Load() (*Config, error) {
	// the .env file is optional
	_ = godotenv.Load()

	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := cfg.Eaters(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Eaters parses ExtraEaters.
func (c *Config) Eaters() ([]Eater, error) {
	eaters := make([]Eater, 0, len(c.ExtraEaters))
	for _, raw := range c.ExtraEaters {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		name, food, ok := strings.Cut(raw, "=")
		name, food = strings.TrimSpace(name), strings.TrimSpace(food)
		if !ok || name == "" || food == "" {
			return nil, fmt.Errorf("invalid extra eater %q: want name=food", raw)
		}
		eaters = append(eaters, Eater{Name: name, Food: food})
	}
	return eaters, nil
}
