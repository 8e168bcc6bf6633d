package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/ending-sim/internal/session"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ENDING_SIM_"

// #region config
// Config holds runtime settings for the simulator.
type Config struct {
	// Pacing is the pause between story beats. Zero disables pauses.
	Pacing time.Duration `yaml:"pacing" env:"PACING"`
	// DBPath enables the session archive when set.
	DBPath string `yaml:"db_path" env:"DB"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	// AffinityPolicy is "skip" or "retry".
	AffinityPolicy string `yaml:"affinity_policy" env:"AFFINITY_POLICY"`
}

// Default returns the interactive defaults.
func Default() Config {
	return Config{
		Pacing:         time.Second,
		LogLevel:       "info",
		AffinityPolicy: string(session.AffinitySkip),
	}
}

// #endregion config

// #region load
// Load starts from Default, applies the YAML file at path if it exists, then
// environment overrides, and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// #endregion load

// #region validate
// Validate rejects settings the simulator cannot run with.
func (c Config) Validate() error {
	if c.Pacing < 0 {
		return fmt.Errorf("pacing must not be negative, got %s", c.Pacing)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if _, err := session.ParseAffinityPolicy(c.AffinityPolicy); err != nil {
		return err
	}
	return nil
}

// Policy returns the parsed affinity policy. Call Validate first.
func (c Config) Policy() session.AffinityPolicy {
	p, _ := session.ParseAffinityPolicy(c.AffinityPolicy)
	return p
}

// #endregion validate
