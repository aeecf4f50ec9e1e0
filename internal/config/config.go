// Package config provides configuration loading for the popnet CLI.
// It supports loading from YAML files and POPNET_* environment variables.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/popnet/internal/logging"
)

// Layer kinds understood by the synthesizer.
const (
	KindRandom   = "random"
	KindClusters = "clusters"
)

// Config contains all popnet configuration settings.
type Config struct {
	// Size is the number of agents to synthesize.
	Size int `json:"size" yaml:"size" env:"POPNET_SIZE"`

	// Seed drives every random draw; equal seeds give equal populations.
	Seed int64 `json:"seed" yaml:"seed" env:"POPNET_SEED"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Layers lists the contact layers to generate, in order.
	Layers []LayerConfig `json:"layers" yaml:"layers"`
}

// LoggingConfig configures popnet's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "error", "warn", "info" (default),
	// "debug" or "trace".
	Level string `json:"level" yaml:"level" env:"POPNET_LOG_LEVEL"`
}

// LayerConfig describes one generated contact layer.
type LayerConfig struct {
	// Key names the layer ("h", "s", "w", "c", ...).
	Key string `json:"key" yaml:"key"`

	// Kind selects the generator: "random" or "clusters".
	Kind string `json:"kind" yaml:"kind"`

	// Mean is the mean contacts per agent (random) or mean cluster size (clusters).
	Mean float64 `json:"mean" yaml:"mean"`

	// Beta is the per-edge weight; nil selects contacts.DefaultBeta.
	Beta *float64 `json:"beta,omitempty" yaml:"beta,omitempty"`
}

// BetaOr returns the configured weight, or def when none is set.
func (l LayerConfig) BetaOr(def float64) float64 {
	if l.Beta == nil {
		return def
	}
	return *l.Beta
}

func beta(v float64) *float64 { return &v }

// Default returns a Config with a household / school / work / community
// layout on 1000 agents.
func Default() *Config {
	return &Config{
		Size: 1000,
		Seed: 1,
		Logging: LoggingConfig{
			Level: "info",
		},
		Layers: []LayerConfig{
			{Key: "h", Kind: KindClusters, Mean: 2, Beta: beta(3.0)},
			{Key: "s", Kind: KindClusters, Mean: 20, Beta: beta(0.6)},
			{Key: "w", Kind: KindClusters, Mean: 16, Beta: beta(0.6)},
			{Key: "c", Kind: KindRandom, Mean: 20, Beta: beta(0.3)},
		},
	}
}

// Load returns the defaults, overlaid with path when it is not empty, then
// with environment variables.
// Order: defaults -> file -> environment variables
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file. Keys the file
// omits keep their defaults; a file that lists layers replaces the default
// layer list.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides cfg with any POPNET_* variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("size must be non-negative, got %d", c.Size)
	}

	if c.Logging.Level != "" && !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: error, warn, info, debug, trace, or empty for default)", c.Logging.Level)
	}

	seen := make(map[string]bool, len(c.Layers))
	for i, l := range c.Layers {
		if l.Key == "" {
			return fmt.Errorf("layers[%d]: key is empty", i)
		}
		if seen[l.Key] {
			return fmt.Errorf("layers[%d]: duplicate key %q", i, l.Key)
		}
		seen[l.Key] = true

		if l.Kind != KindRandom && l.Kind != KindClusters {
			return fmt.Errorf("layers[%d]: invalid kind %q (valid: %s, %s)", i, l.Kind, KindRandom, KindClusters)
		}
		if !(l.Mean > 0) || math.IsInf(l.Mean, 0) {
			return fmt.Errorf("layers[%d]: mean must be positive and finite, got %g", i, l.Mean)
		}
		if l.Beta != nil && (*l.Beta < 0 || math.IsNaN(*l.Beta) || math.IsInf(*l.Beta, 0)) {
			return fmt.Errorf("layers[%d]: beta must be finite and non-negative, got %g", i, *l.Beta)
		}
	}

	return nil
}

// LayerKeys returns the configured layer keys in order.
func (c *Config) LayerKeys() []string {
	keys := make([]string, len(c.Layers))
	for i, l := range c.Layers {
		keys[i] = l.Key
	}
	return keys
}
