// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enersight/profiler/energy"
	"github.com/enersight/profiler/internal/config"
)

func TestLoad_defaults(t *testing.T) {
	t.Setenv("PROFILER_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.openai.com/v1", cfg.BaseURL)
	assert.Equal(t, energy.DefaultModel, cfg.Model)
	assert.Equal(t, energy.DefaultDatasetPath, cfg.DatasetPath)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, 30*time.Minute, cfg.RunTimeout)
	assert.False(t, cfg.KeepResources)
	assert.Empty(t, cfg.APIKey)
}

func TestLoad_environment(t *testing.T) {
	t.Setenv("PROFILER_API_KEY", "sk-profiler")
	t.Setenv("PROFILER_MODEL", "gpt-4o")
	t.Setenv("PROFILER_POLL_INTERVAL", "2s")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "sk-profiler", cfg.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
}

func TestLoad_openAIKeyFallback(t *testing.T) {
	t.Setenv("PROFILER_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-openai")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "sk-openai", cfg.APIKey)
}

func TestLoad_file(t *testing.T) {
	t.Setenv("PROFILER_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "profiler.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"api_key = \"sk-file\"\nmodel = \"gpt-4o\"\nrun_timeout = \"5m\"\nkeep_resources = true\n",
	), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-file", cfg.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 5*time.Minute, cfg.RunTimeout)
	assert.True(t, cfg.KeepResources)
}

func TestLoad_missingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := config.Config{
		APIKey:       "sk-test",
		DatasetPath:  "data/energy_data.txt",
		PollInterval: 10 * time.Second,
	}
	require.NoError(t, valid.Validate())

	missingKey := valid
	missingKey.APIKey = ""
	require.ErrorContains(t, missingKey.Validate(), "api key is required")

	missingDataset := valid
	missingDataset.DatasetPath = ""
	require.ErrorContains(t, missingDataset.Validate(), "dataset path is required")

	badInterval := valid
	badInterval.PollInterval = 0
	require.ErrorContains(t, badInterval.Validate(), "poll interval")
}
