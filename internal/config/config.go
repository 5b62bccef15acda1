// Package config provides YAML-based configuration loading for tilescore,
// with .env and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Config is the full tilescore configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Replay  ReplayConfig  `yaml:"replay"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig locates the score database.
type StorageConfig struct {
	Path string `yaml:"path"` // "~" expands to the home directory
}

// ReplayConfig controls verification.
type ReplayConfig struct {
	Variant  string `yaml:"variant"`
	MaxMoves uint64 `yaml:"max_moves"` // 0 = no cap
}

// ViewerConfig controls the replay viewer.
type ViewerConfig struct {
	StepRate int `yaml:"step_rate"` // steps per second
}

// LogConfig controls the logger.
type LogConfig struct {
	Level      string `yaml:"level"`
	Timestamps bool   `yaml:"timestamps"`
}

// Validation errors.
var (
	ErrEmptyStoragePath = errors.New("config: storage.path is empty")
	ErrInvalidStepRate  = errors.New("config: viewer.step_rate must be positive")
	ErrInvalidLogLevel  = errors.New("config: unknown log level")
)

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Storage.Path) == "" {
		return ErrEmptyStoragePath
	}
	if c.Viewer.StepRate <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidStepRate, c.Viewer.StepRate)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

// ParseLevel converts the configured level name to a log.Level.
// An empty level means info.
func (l LogConfig) ParseLevel() (log.Level, error) {
	if l.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(l.Level))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w %q", ErrInvalidLogLevel, l.Level)
	}
	return lvl, nil
}
