// Package config loads transitnet settings from a YAML file, an optional .env
// file and TRANSITNET_* environment variables, in that order of precedence
// (later wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix marks environment variables that override file settings.
const EnvPrefix = "TRANSITNET_"

// Movement log backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the full set of runtime settings.
type Config struct {
	DataDir         string `yaml:"data_dir" mapstructure:"data_dir"`
	NetworkFile     string `yaml:"network_file" mapstructure:"network_file"`
	FleetFile       string `yaml:"fleet_file" mapstructure:"fleet_file"`
	MovementLog     string `yaml:"movement_log" mapstructure:"movement_log"`
	MovementBackend string `yaml:"movement_backend" mapstructure:"movement_backend"`
	RedisAddr       string `yaml:"redis_addr" mapstructure:"redis_addr"`
	RedisKey        string `yaml:"redis_key" mapstructure:"redis_key"`
	LogLevel        string `yaml:"log_level" mapstructure:"log_level"`
	Color           string `yaml:"color" mapstructure:"color"`
	GraphCapacity   int    `yaml:"graph_capacity" mapstructure:"graph_capacity"`
	FleetCapacity   int    `yaml:"fleet_capacity" mapstructure:"fleet_capacity"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		DataDir:         "data",
		NetworkFile:     "network",
		FleetFile:       "vehicles",
		MovementLog:     ".movements",
		MovementBackend: BackendFile,
		RedisAddr:       "localhost:6379",
		RedisKey:        "transitnet:movements",
		LogLevel:        "info",
		Color:           ColorAuto,
		GraphCapacity:   50,
		FleetCapacity:   101,
	}
}

// Load reads path (a missing file yields defaults), then applies .env found
// next to it and the process environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// defaults
		default:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}

		envFile := filepath.Join(filepath.Dir(path), ".env")
		if _, err := os.Stat(envFile); err == nil {
			// Load never overrides variables already present in the environment.
			if err := godotenv.Load(envFile); err != nil {
				return cfg, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
	}

	if err := ApplyEnv(&cfg, os.Environ()); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overlays TRANSITNET_* entries from environ ("KEY=value" pairs) onto cfg.
// TRANSITNET_GRAPH_CAPACITY=80 sets GraphCapacity; numbers are decoded from strings.
func ApplyEnv(cfg *Config, environ []string) error {
	overrides := make(map[string]interface{})
	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		overrides[strings.ToLower(strings.TrimPrefix(key, EnvPrefix))] = val
	}
	if len(overrides) == 0 {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(overrides); err != nil {
		return fmt.Errorf("invalid %s environment: %w", EnvPrefix, err)
	}
	return nil
}

// Validate rejects settings no store can run with.
func (c Config) Validate() error {
	if c.GraphCapacity <= 0 {
		return fmt.Errorf("graph_capacity must be positive, got %d", c.GraphCapacity)
	}
	if c.FleetCapacity <= 0 {
		return fmt.Errorf("fleet_capacity must be positive, got %d", c.FleetCapacity)
	}
	switch c.MovementBackend {
	case BackendFile, BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("unknown movement_backend %q", c.MovementBackend)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	return nil
}
