package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/infosieve/corex"
	"github.com/katalvlaran/infosieve/sieve"
)

// Config is the YAML configuration surface. Zero fields fall back to the
// library defaults, so a partial file is fine.
type Config struct {
	MaxLayers int         `yaml:"max_layers"`
	KMax      int         `yaml:"k_max"`
	CorEx     CorExConfig `yaml:"corex"`
}

// CorExConfig configures the per-layer factor extractor.
type CorExConfig struct {
	Dim      int     `yaml:"dim"`
	MaxIter  int     `yaml:"max_iter"`
	Tol      float64 `yaml:"tol"`
	Restarts int     `yaml:"restarts"`
	Seed     int64   `yaml:"seed"`
}

// LoadConfig reads a YAML configuration file; an empty path yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cli: could not read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("cli: could not parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Options maps the configuration onto sieve options, filling every zero
// field with the library default.
func (c Config) Options() sieve.Options {
	opts := sieve.DefaultOptions()
	if c.MaxLayers > 0 {
		opts.MaxLayers = c.MaxLayers
	}
	if c.KMax > 0 {
		opts.KMax = c.KMax
	}
	opts.CorEx = c.CorEx.options()
	return opts
}

// options maps the extractor configuration onto corex options.
func (c CorExConfig) options() corex.Options {
	opts := corex.DefaultOptions()
	if c.Dim > 0 {
		opts.Dim = c.Dim
	}
	if c.MaxIter > 0 {
		opts.MaxIter = c.MaxIter
	}
	if c.Tol > 0 {
		opts.Tol = c.Tol
	}
	if c.Restarts > 0 {
		opts.Restarts = c.Restarts
	}
	if c.Seed != 0 {
		opts.Seed = c.Seed
	}
	return opts
}
