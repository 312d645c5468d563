// Package config reads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds settings that flags may override.
type Config struct {
	HistoryFile string `env:"PCOSCARE_HISTORY_FILE" envDefault:"pcos_assessment_history.txt"`
	Guide       string `env:"PCOSCARE_GUIDE" envDefault:"general"`
	LogFile     string `env:"PCOSCARE_LOG_FILE"`
	Debug       bool   `env:"PCOSCARE_DEBUG" envDefault:"false"`
}

// Load reads an optional .env file from dotenvPath, then the environment.
// A missing .env file is not an error.
func Load(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config.Load: %w", err)
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}
