// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/robalobadob/wordle/apps/go-console/internal/words"
)

// ErrInvalidSecret is returned when WORDLE_SECRET is not a 5-letter word.
var ErrInvalidSecret = errors.New("WORDLE_SECRET must be exactly five letters")

// Config holds the game's environment settings.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL"          envDefault:"warn"`
	WordsFile string `env:"WORDS_ANSWERS_FILE"`
	Secret    string `env:"WORDLE_SECRET"`
	Daily     bool   `env:"WORDLE_DAILY"       envDefault:"false"`
	DailySalt string `env:"DAILY_SALT"         envDefault:"local_dev_salt"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	cfg.Secret = strings.ToLower(strings.TrimSpace(cfg.Secret))
	if cfg.Secret != "" && !words.IsWord(cfg.Secret) {
		return cfg, ErrInvalidSecret
	}
	return cfg, nil
}
