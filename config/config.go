// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

// Package config loads the application configuration with layered
// sources: built-in defaults, an optional YAML file, and environment
// variables, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/mithrangowda07/reelrank/logging"
	"github.com/mithrangowda07/reelrank/recommend"
)

// DefaultConfigPaths lists where config files are searched, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"reelrank.yaml",
	"reelrank.yml",
	"/etc/reelrank/config.yaml",
	"/etc/reelrank/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "REELRANK_CONFIG"

// envPrefix namespaces the override variables, e.g.
// REELRANK_ENGINE_RATING_MAX or REELRANK_LOGGING_LEVEL.
const envPrefix = "REELRANK_"

// Config is the full application configuration.
type Config struct {
	// Engine configures training and serving.
	Engine recommend.Config `koanf:"engine"`

	// Logging configures the structured logger.
	Logging logging.Config `koanf:"logging"`

	// Data points at the training inputs.
	Data DataConfig `koanf:"data"`
}

// DataConfig locates the training data files.
type DataConfig struct {
	// MoviesPath is the JSON catalog file.
	MoviesPath string `koanf:"movies_path"`

	// RatingsPath is the CSV ratings file.
	RatingsPath string `koanf:"ratings_path"`
}

// defaultConfig returns the built-in defaults, applied before file and
// environment overrides.
func defaultConfig() *Config {
	return &Config{
		Engine:  recommend.DefaultConfig(),
		Logging: logging.DefaultConfig(),
		Data: DataConfig{
			MoviesPath:  "data/movies.json",
			RatingsPath: "data/ratings.csv",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file,
// and REELRANK_* environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Engine.Validate(); err != nil {
		return nil, fmt.Errorf("validate configuration: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first config file that exists, or empty.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransform maps an environment variable name to a koanf path. The
// first underscore after the prefix separates the section from the
// field, e.g. REELRANK_ENGINE_RATING_MIN -> engine.rating_min.
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}
