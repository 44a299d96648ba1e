// Package config loads and validates strfind configuration.
//
// Precedence, lowest to highest: built-in defaults, the YAML config file
// (.strfind.yaml), then STRFIND_* environment variables. CLI flags override
// all of these at the command layer.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/strfind/strfind/internal/errors"
)

// DefaultConfigFile is the config file name looked up in the working
// directory.
const DefaultConfigFile = ".strfind.yaml"

// Config is the complete strfind configuration.
type Config struct {
	Bench   BenchConfig   `yaml:"bench"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// BenchConfig configures the benchmark command.
type BenchConfig struct {
	// Trials is the number of repetitions per (algorithm, combination).
	Trials int `yaml:"trials"`

	// Texts are the files searched during benchmarking.
	Texts []string `yaml:"texts"`

	// PresentPattern is a substring known to occur in the texts.
	PresentPattern string `yaml:"present_pattern"`

	// AbsentPattern is a substring known not to occur in the texts.
	AbsentPattern string `yaml:"absent_pattern"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	// Color is "auto", "always", or "never".
	Color string `yaml:"color"`
}

// LoggingConfig configures file logging.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level"`
}

// NewConfig returns the built-in defaults.
func NewConfig() *Config {
	return &Config{
		Bench: BenchConfig{
			Trials: 100,
		},
		Output: OutputConfig{
			Color: "auto",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path, falling back to defaults when the
// file does not exist, and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeConfigNotFound, err).WithDetail("path", path)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.ConfigError(fmt.Sprintf("cannot parse %s", path), err).
				WithDetail("path", path).
				WithSuggestion("check the YAML syntax of the config file")
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies STRFIND_* environment variables.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STRFIND_TRIALS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Bench.Trials = n
		}
	}
	if v := os.Getenv("STRFIND_COLOR"); v != "" {
		cfg.Output.Color = v
	}
	if v := os.Getenv("STRFIND_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks the configuration for values no command could run with.
func (c *Config) Validate() error {
	if c.Bench.Trials < 1 {
		return errors.New(errors.ErrCodeInvalidTrials,
			fmt.Sprintf("trials must be at least 1, got %d", c.Bench.Trials), nil).
			WithDetail("trials", strconv.Itoa(c.Bench.Trials))
	}

	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return errors.ConfigError(
			fmt.Sprintf("color must be auto, always, or never, got %q", c.Output.Color), nil)
	}

	return nil
}
