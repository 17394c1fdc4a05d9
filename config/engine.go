package config

import (
	"fmt"

	"github.com/skillsenselab/speakerkit/analysis"
	"github.com/skillsenselab/speakerkit/logger"
)

// EngineConfig is the root configuration for an application embedding the
// analysis engine. Consumers with their own concerns extend it by embedding:
//
//	type AppConfig struct {
//	    config.EngineConfig `yaml:",inline" mapstructure:",squash"`
//	    Listen string `yaml:"listen" mapstructure:"listen"`
//	}
type EngineConfig struct {
	Name        string           `yaml:"name" mapstructure:"name"`
	Environment string           `yaml:"environment" mapstructure:"environment"`
	Debug       bool             `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config    `yaml:"logging" mapstructure:"logging"`
	Analysis    analysis.Options `yaml:"analysis" mapstructure:"analysis"`
}

// LoadEngineConfig loads an EngineConfig with defaults applied and
// validated.
func LoadEngineConfig(opts ...LoaderOption) (*EngineConfig, error) {
	var cfg EngineConfig
	if err := Load(&cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults applies default values to the configuration.
func (c *EngineConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "speakerkit"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	c.Analysis.ApplyDefaults()
}

// Validate validates the configuration.
func (c *EngineConfig) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Analysis.Validate(); err != nil {
		return fmt.Errorf("config.analysis: %w", err)
	}
	return nil
}
