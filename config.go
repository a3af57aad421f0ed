package cilisp

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the interpreter settings that may be read from a YAML file.
type Config struct {
	Prompt     string `yaml:"prompt"`
	ReadPrompt string `yaml:"read_prompt"`
	// Color is one of auto, always or never.
	Color string `yaml:"color"`
	// Seed for rand. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`
	// MaxNodes limits the number of live AST nodes. Zero is unlimited.
	MaxNodes int    `yaml:"max_nodes"`
	EchoRead bool   `yaml:"echo_read"`
	History  string `yaml:"history"`
}

func DefaultConfig() *Config {
	return &Config{
		Prompt:     "> ",
		ReadPrompt: "read :: ",
		Color:      "auto",
	}
}

// LoadConfig reads path over the defaults.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeConfig(f)
}

func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	err := yaml.NewDecoder(r).Decode(cfg)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode: %q", c.Color)
	}
	if c.MaxNodes < 0 {
		return fmt.Errorf("invalid max_nodes: %d", c.MaxNodes)
	}
	return nil
}
