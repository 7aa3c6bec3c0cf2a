package config

import (
	"fmt"

	"github.com/soundscribe/soundscribe/logger"
	"github.com/soundscribe/soundscribe/observability"
	"github.com/soundscribe/soundscribe/server"
	"github.com/soundscribe/soundscribe/transcription"
	"github.com/soundscribe/soundscribe/transcription/groq"
	"github.com/soundscribe/soundscribe/transcription/openai"
)

// Config is the full service configuration.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging       logger.Config        `yaml:"logging" mapstructure:"logging"`
	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`

	// Groq and OpenAI carry the provider credentials and endpoints. A provider
	// with an empty API key is disabled, not an error.
	Groq   groq.Config   `yaml:"groq" mapstructure:"groq"`
	OpenAI openai.Config `yaml:"openai" mapstructure:"openai"`

	// Defaults are the default provider, model, and language selections.
	Defaults transcription.Defaults `yaml:"defaults" mapstructure:"defaults"`

	// SpoolDir is the scratch directory for uploaded audio. Empty uses the
	// system temp directory.
	SpoolDir string `yaml:"spool_dir" mapstructure:"spool_dir"`
}

// ApplyDefaults fills in zero-value fields with development defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "soundscribe"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Observability.ApplyDefaults()
	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = c.Name
	}
	if c.Observability.Environment == "" {
		c.Observability.Environment = c.Environment
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
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
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	return nil
}
