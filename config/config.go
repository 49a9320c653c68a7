// Package config loads the YAML configuration of the bean mapper: the engine
// provider, logger settings and metrics.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bean-mapper/engine"
	"bean-mapper/internal/diagnostic"
	"bean-mapper/internal/logging"
)

const DefaultNamespace = "beanmapper"

type Config struct {
	// Provider names the mapping engine: auto, reflect, json or yaml.
	Provider string        `yaml:"provider"`
	Logger   LoggerConfig  `yaml:"logger"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File, when set, sends log output to a size-rotated file instead of stderr.
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
}

type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var c Config
	applyDefaults(&c)

	return &c
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

func applyDefaults(c *Config) {
	if c.Provider == "" {
		c.Provider = engine.ProviderAuto.String()
	}

	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}

	if c.Logger.Format == "" {
		c.Logger.Format = logging.FormatJSON
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	p, err := engine.ParseProvider(c.Provider)
	switch {
	case err != nil:
		d.AddError("unknown_provider", fmt.Sprintf("provider %q is not registered", c.Provider), "provider", engine.Names()...)
	case p == engine.ProviderAuto:
		d.AddWarning("auto_provider", fmt.Sprintf("auto resolves to %v", p.Resolve()), "provider")
	}

	if _, err := logging.ParseLevel(c.Logger.Level); err != nil {
		d.AddError("invalid_level", fmt.Sprintf("level %q is not supported", c.Logger.Level), "logger.level",
			"debug", "info", "warn", "error")
	}

	if c.Logger.Format != logging.FormatJSON && c.Logger.Format != logging.FormatConsole {
		d.AddError("invalid_format", fmt.Sprintf("format %q is not supported", c.Logger.Format), "logger.format",
			logging.FormatJSON, logging.FormatConsole)
	}

	if c.Logger.MaxSizeMB < 0 || c.Logger.MaxBackups < 0 {
		d.AddError("invalid_rotation", "rotation limits must not be negative", "logger")
	}

	if c.Logger.File == "" && (c.Logger.MaxSizeMB != 0 || c.Logger.MaxBackups != 0) {
		d.AddWarning("unused_rotation", "rotation limits are set but no log file is configured", "logger.file")
	}

	if !c.Metrics.Enabled && c.Metrics.Namespace != DefaultNamespace {
		d.AddWarning("unused_namespace", "namespace is set but metrics are disabled", "metrics.namespace")
	}

	return d
}

// ProviderValue returns the parsed provider.
func (c *Config) ProviderValue() (engine.Provider, error) {
	return engine.ParseProvider(c.Provider)
}
