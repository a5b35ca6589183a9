package app

import (
	"errors"

	"github.com/specialistvlad/buildplan/internal/plan"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // manifest file or directory holding one
	OutputPath   string // empty writes the plan to the app's output writer

	Format     plan.Format
	DigestOnly bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if cfg.Format == "" {
		cfg.Format = plan.FormatJSON
	}
	if _, err := plan.ParseFormat(string(cfg.Format)); err != nil {
		return nil, err
	}
	return &cfg, nil
}
