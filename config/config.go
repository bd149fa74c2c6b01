// Package config provides configuration loading for semdocs.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the file-level defaults for the semdocs commands. Command
// flags override anything set here.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Polish     PolishConfig     `yaml:"polish"`
	SHACL      SHACLConfig      `yaml:"shacl"`
}

// GenerationConfig configures documentation generation.
type GenerationConfig struct {
	// Format is the output serialization: "turtle" or "ntriples".
	Format string `yaml:"format"`
}

// PolishConfig configures the pass-2 copy-edit.
type PolishConfig struct {
	// Provider names the registered LLM provider ("openai", "anthropic",
	// "ollama").
	Provider string `yaml:"provider"`

	// Model is the provider-side model identifier.
	Model string `yaml:"model"`

	// Endpoint overrides the provider's default base URL when non-empty.
	Endpoint string `yaml:"endpoint"`

	// Lang tags polished literals with a language. Empty writes plain
	// literals.
	Lang string `yaml:"lang"`

	// Timeout bounds each copy-edit HTTP call.
	Timeout time.Duration `yaml:"timeout"`
}

// SHACLConfig configures constraint generation.
type SHACLConfig struct {
	// IRIBase resolves bare property names given on the command line.
	IRIBase string `yaml:"iri_base"`

	// IRISep joins IRIBase and a bare name, "#" or "/". Empty infers it
	// from the ontology.
	IRISep string `yaml:"iri_sep"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Generation: GenerationConfig{
			Format: "turtle",
		},
		Polish: PolishConfig{
			Provider: "ollama",
			Model:    "qwen2.5-coder:32b",
			Timeout:  5 * time.Minute,
		},
		SHACL: SHACLConfig{},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Generation.Format {
	case "turtle", "ttl", "ntriples", "nt", "n-triples":
	default:
		return fmt.Errorf("generation.format must be turtle or ntriples, got %q", c.Generation.Format)
	}
	if c.Polish.Provider == "" {
		return fmt.Errorf("polish.provider is required")
	}
	if c.Polish.Model == "" {
		return fmt.Errorf("polish.model is required")
	}
	if c.Polish.Timeout <= 0 {
		return fmt.Errorf("polish.timeout must be positive")
	}
	if sep := c.SHACL.IRISep; sep != "" && sep != "#" && sep != "/" {
		return fmt.Errorf("shacl.iri_sep must be \"#\" or \"/\", got %q", sep)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return config, nil
}

// Merge merges another config into this one. Non-zero values in other take
// precedence.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Generation.Format != "" {
		c.Generation.Format = other.Generation.Format
	}

	if other.Polish.Provider != "" {
		c.Polish.Provider = other.Polish.Provider
	}
	if other.Polish.Model != "" {
		c.Polish.Model = other.Polish.Model
	}
	if other.Polish.Endpoint != "" {
		c.Polish.Endpoint = other.Polish.Endpoint
	}
	if other.Polish.Lang != "" {
		c.Polish.Lang = other.Polish.Lang
	}
	if other.Polish.Timeout != 0 {
		c.Polish.Timeout = other.Polish.Timeout
	}

	if other.SHACL.IRIBase != "" {
		c.SHACL.IRIBase = other.SHACL.IRIBase
	}
	if other.SHACL.IRISep != "" {
		c.SHACL.IRISep = other.SHACL.IRISep
	}
}
