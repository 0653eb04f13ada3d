package app

import (
	"errors"
	"fmt"
)

// Output formats accepted by Config.OutputFormat.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	StudyPath string // hcl file or directory

	LogFormat       string
	LogLevel        string
	OutputFormat    string
	HealthcheckPort int
	MetricsFile     string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.StudyPath == "" {
		return nil, errors.New("StudyPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = OutputText
	}
	if cfg.OutputFormat != OutputText && cfg.OutputFormat != OutputYAML {
		return nil, fmt.Errorf("invalid output format %q: must be %q or %q", cfg.OutputFormat, OutputText, OutputYAML)
	}
	if cfg.HealthcheckPort < 0 {
		return nil, fmt.Errorf("invalid healthcheck port %d", cfg.HealthcheckPort)
	}
	return &cfg, nil
}
