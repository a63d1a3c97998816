// SPDX-License-Identifier: MIT

// Package config loads the application configuration shared by the CLI and
// the HTTP server.
//
// Sources, lowest precedence first: Default(), a YAML file, then PRESSES_*
// environment variables. Command-line flags are applied on top by cmd.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/presses/batch"
	"github.com/katalvlaran/presses/presses"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the root configuration document.
type Config struct {
	// Variant is the default variant for server requests that omit one.
	Variant string `yaml:"variant" validate:"oneof=lights joltage"`

	// Workers bounds concurrently solved systems; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0,lte=4096"`

	// Policy is "skip" (infeasible systems add 0) or "fail".
	Policy string `yaml:"policy" validate:"oneof=skip fail"`

	Search SearchConfig `yaml:"search"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

// SearchConfig maps onto presses.Options.
type SearchConfig struct {
	Prune     bool          `yaml:"prune"`
	TimeLimit time.Duration `yaml:"time_limit" validate:"gte=0"`
	MaxNodes  int64         `yaml:"max_nodes" validate:"gte=0"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required,hostname_port"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" validate:"gt=0"`
	MaxSystems      int           `yaml:"max_systems" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Variant: "joltage",
		Workers: 0,
		Policy:  "skip",
		Search: SearchConfig{
			Prune:     true,
			TimeLimit: 0,
			MaxNodes:  0,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr:            "127.0.0.1:8080",
			MaxBodyBytes:    1 << 20,
			MaxSystems:      1000,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates. An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err = yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// defaults
		default:
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse decodes a YAML document over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from PRESSES_VARIANT, PRESSES_WORKERS,
// PRESSES_POLICY, PRESSES_LOG_LEVEL, PRESSES_LOG_FORMAT and
// PRESSES_SERVER_ADDR. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"PRESSES_VARIANT":     &c.Variant,
		"PRESSES_POLICY":      &c.Policy,
		"PRESSES_LOG_LEVEL":   &c.Log.Level,
		"PRESSES_LOG_FORMAT":  &c.Log.Format,
		"PRESSES_SERVER_ADDR": &c.Server.Addr,
	}
	for key, dst := range str {
		if v, ok := lookup(key); ok && v != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	if v, ok := lookup("PRESSES_WORKERS"); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("PRESSES_WORKERS=%q: %w: %w", v, ErrInvalidConfig, err)
		}
		c.Workers = n
	}

	return nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// SearchOptions returns the presses options for this configuration.
func (c Config) SearchOptions() presses.Options {
	return presses.Options{
		Prune:     c.Search.Prune,
		TimeLimit: c.Search.TimeLimit,
		MaxNodes:  c.Search.MaxNodes,
	}
}

// Batch returns a batch configuration for variant v. Logger and metrics are
// left to the caller.
func (c Config) Batch(v presses.Variant) (batch.Config, error) {
	policy, err := batch.ParsePolicy(c.Policy)
	if err != nil {
		return batch.Config{}, err
	}

	return batch.Config{
		Variant: v,
		Policy:  policy,
		Options: c.SearchOptions(),
		Workers: c.Workers,
	}, nil
}

// DefaultVariant parses Variant.
func (c Config) DefaultVariant() (presses.Variant, error) {
	return presses.ParseVariant(c.Variant)
}

// SlogLevel maps Log.Level onto slog; unknown levels mean info.
func (c Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the slog logger described by Log, writing to w.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
