// File: config.go
// Role: the ambient CLI configuration loader (SPEC_FULL.md's Ambient
// Stack): a YAML file plus environment overrides via viper, with a
// yaml.v3-based writer for `rewritectl config init`.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds rewritectl's ambient settings.
type Config struct {
	// Directed is read and written with the config file; no rewritectl
	// command consults it, since every command loads its hierarchy
	// (and its directedness) from a document.
	Directed bool `mapstructure:"directed" yaml:"directed"`
	// LogLevel is passed to internal/logging.SetLevel at startup.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns rewritectl's built-in configuration.
func Default() *Config {
	return &Config{Directed: true, LogLevel: "info"}
}

// Load reads path (a YAML file) over Default's values, then applies
// REWRITECTL_-prefixed environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("directed", true)
	v.SetDefault("log_level", "info")
	v.SetEnvPrefix("rewritectl")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}

	return &cfg, nil
}

// Save writes cfg to path as YAML, for `rewritectl config init`.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %q: %w", path, err)
	}

	return nil
}
