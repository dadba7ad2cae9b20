package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvPipelineValidatorTimeout = "QUILL_PIPELINE_VALIDATOR_TIMEOUT"
	EnvPipelineTemperature      = "QUILL_PIPELINE_TEMPERATURE"
	EnvPipelineContextLimit     = "QUILL_PIPELINE_CONTEXT_LIMIT"
)

// PipelineConfig holds generation pipeline tuning parameters.
type PipelineConfig struct {
	ValidatorTimeout string  `toml:"validator_timeout"`
	Temperature      float64 `toml:"temperature"`
	ContextLimit     int     `toml:"context_limit"`
}

// ValidatorTimeoutDuration returns ValidatorTimeout as a time.Duration.
func (c *PipelineConfig) ValidatorTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ValidatorTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *PipelineConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *PipelineConfig) Merge(overlay *PipelineConfig) {
	if overlay.ValidatorTimeout != "" {
		c.ValidatorTimeout = overlay.ValidatorTimeout
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
	if overlay.ContextLimit != 0 {
		c.ContextLimit = overlay.ContextLimit
	}
}

func (c *PipelineConfig) loadDefaults() {
	if c.ValidatorTimeout == "" {
		c.ValidatorTimeout = "45s"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.7
	}
	if c.ContextLimit == 0 {
		c.ContextLimit = 5
	}
}

func (c *PipelineConfig) loadEnv() {
	if v := os.Getenv(EnvPipelineValidatorTimeout); v != "" {
		c.ValidatorTimeout = v
	}
	if v := os.Getenv(EnvPipelineTemperature); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			c.Temperature = t
		}
	}
	if v := os.Getenv(EnvPipelineContextLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.ContextLimit = n
		}
	}
}

func (c *PipelineConfig) validate() error {
	if _, err := time.ParseDuration(c.ValidatorTimeout); err != nil {
		return fmt.Errorf("invalid validator_timeout: %w", err)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature out of range: %f", c.Temperature)
	}
	if c.ContextLimit < 1 {
		return fmt.Errorf("context_limit must be positive")
	}
	return nil
}
