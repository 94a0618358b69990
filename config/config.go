// Package config loads host configuration for the patcher engine.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dudk/patcher/graph"
)

// Config holds engine settings for hosts and the command line tool.
type Config struct {
	// MaxDepth bounds dispatch recursion. Zero falls back to the
	// engine default.
	MaxDepth int `yaml:"max_depth"`
	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
	// Patch is an optional path to a patch document to load.
	Patch string `yaml:"patch"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		MaxDepth: graph.DefaultMaxDepth,
	}
}

// Load parses configuration content. Unknown fields are rejected.
func Load(content []byte) (Config, error) {
	c := Default()
	d := yaml.NewDecoder(bytes.NewReader(content))
	d.KnownFields(true)
	if err := d.Decode(&c); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = graph.DefaultMaxDepth
	}
	return c, nil
}

// LoadFile reads and parses a configuration file.
func LoadFile(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Load(content)
}
