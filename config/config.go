// Package config holds the driver settings: player count, seed, content
// directory, logging and UI options.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Players int       `yaml:"players"`
	Seed    int64     `yaml:"seed"`              // 0 picks a seed at startup
	Content string    `yaml:"content,omitempty"` // empty uses the embedded classic content
	Log     LogConfig `yaml:"log"`
	UI      UIConfig  `yaml:"ui"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"` // empty logs to stderr
}

type UIConfig struct {
	Plain bool `yaml:"plain"`
	Trace bool `yaml:"trace"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Players: 2,
		Log:     LogConfig{Level: "warn"},
	}
}

// ApplyDefaults fills fields left empty by a partial file.
func (c *Config) ApplyDefaults() {
	if c.Players == 0 {
		c.Players = 2
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// Validate reports settings no game can start with.
func (c Config) Validate() error {
	if c.Players < 2 || c.Players > 4 {
		return fmt.Errorf("players must be between 2 and 4, got %d", c.Players)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

// Load reads a YAML config file. Keys present in the file override the
// environment, which overrides the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := FromEnv(Default())
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	c.ApplyDefaults()
	return &c, nil
}
