// Package config loads CLI settings from defaults and HOURS_* environment
// variables.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
	"github.com/user/hours-cli/pkg/timeutil"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "HOURS_"

// Config holds the CLI settings.
type Config struct {
	Log      LogConfig `koanf:"log"`
	Overflow string    `koanf:"overflow"`
	Color    bool      `koanf:"color"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Pretty bool   `koanf:"pretty"`
}

// OverflowPolicy returns the parsed overflow policy.
func (c *Config) OverflowPolicy() (timeutil.OverflowPolicy, error) {
	return timeutil.ParseOverflowPolicy(c.Overflow)
}

// Load loads configuration with priority:
// 1. Environment variables (HOURS_LOG_LEVEL, HOURS_OVERFLOW, ...)
// 2. Default values
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			// HOURS_LOG_LEVEL -> log.level
			key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func defaults() map[string]any {
	return map[string]any{
		"log.level":  "error",
		"log.pretty": true,
		"overflow":   timeutil.OverflowReset.String(),
		"color":      true,
	}
}

// Validate checks that the configured values are usable.
func Validate(cfg *Config) error {
	if _, err := cfg.OverflowPolicy(); err != nil {
		return err
	}
	return nil
}
