/*
File    : di/config/config.go
Project : di compiler front-end
*/

// Package config loads the dlc configuration: an optional YAML file merged
// with the command-line flags, flags taking precedence over the file.
package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds the dlc settings.
type Config struct {
	// Color controls diagnostic coloring: auto, always or never.
	Color string `koanf:"color"`
	// WarnErrors treats unused-binding warnings as errors.
	WarnErrors bool `koanf:"warn-errors"`
	// LogLevel sets the slog level: debug, info, warn or error.
	LogLevel string `koanf:"log-level"`
}

// Load reads the optional YAML config file at path (skipped when empty)
// and overlays the given flag set. Flags that were not set on the command
// line do not override file values.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}
	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}
	cfg := &Config{Color: "auto", LogLevel: "warn"}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("bad color mode %q (want auto, always or never)", cfg.Color)
	}
	return cfg, nil
}
