// Package config loads the xsddump configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	xsd "github.com/claudiobogossian/terralib5-sub033"
)

const (
	DefaultLogLevel = "warn"
	DefaultFormat   = "yaml"
)

// Config holds the settings shared by every xsddump command. Command line
// flags override the values read from the file.
type Config struct {
	LogLevel         string `yaml:"log_level"`
	LogPretty        bool   `yaml:"log_pretty"`
	Format           string `yaml:"format"`
	MaxDepth         int    `yaml:"max_depth"`
	PermissiveOccurs bool   `yaml:"permissive_occurs"`
	AnonymousBase    bool   `yaml:"anonymous_restriction_base"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the YAML file at path. An empty path or an empty file yields
// the defaults; unknown keys are rejected.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Format != "yaml" {
		return fmt.Errorf("unsupported format %q", c.Format)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0, got %d", c.MaxDepth)
	}
	return nil
}

// ReadOptions converts the reader settings.
func (c *Config) ReadOptions() xsd.ReadOptions {
	return xsd.NewReadOptions().
		WithMaxDepth(c.MaxDepth).
		WithPermissiveOccurs(c.PermissiveOccurs).
		WithAnonymousRestrictionBase(c.AnonymousBase)
}
