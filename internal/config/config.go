// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package config loads the profiler configuration from defaults, an
// optional TOML file, and PROFILER_-prefixed environment variables,
// in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/enersight/profiler/energy"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "profiler.toml"

const envPrefix = "PROFILER_"

type Config struct {
	// APIKey authenticates against the assistant service. Required.
	// Taken from PROFILER_API_KEY, or OPENAI_API_KEY as a fallback.
	APIKey  string `koanf:"api_key"`
	BaseURL string `koanf:"base_url"`

	Model       string `koanf:"model"`
	DatasetPath string `koanf:"dataset_path"`

	PollInterval time.Duration `koanf:"poll_interval"`
	RunTimeout   time.Duration `koanf:"run_timeout"`

	// KeepResources leaves the created assistant on the server after a run.
	KeepResources bool `koanf:"keep_resources"`
}

// Load reads the configuration. A .env file in the working directory is
// loaded into the environment first, if present. The config file at path
// is required when explicitly given; the default path is optional.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")

	_ = k.Load(confmap.Provider(map[string]interface{}{
		"base_url":      "https://api.openai.com/v1",
		"model":         energy.DefaultModel,
		"dataset_path":  energy.DefaultDatasetPath,
		"poll_interval": "10s",
		"run_timeout":   "30m",
	}, "."), nil)

	required := path != ""
	if path == "" {
		path = DefaultPath
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		if required || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if config.APIKey == "" {
		config.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	return &config, nil
}

// Validate reports whether the configuration is usable.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("api key is required: set PROFILER_API_KEY or OPENAI_API_KEY")
	}
	if c.DatasetPath == "" {
		return errors.New("dataset path is required")
	}
	if c.PollInterval <= 0 {
		return errors.New("poll interval must be positive")
	}

	return nil
}
