package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strfind/strfind/internal/errors"
)

func TestNewConfig_ReturnsDefaults(t *testing.T) {
	cfg := NewConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, 100, cfg.Bench.Trials)
	assert.Empty(t, cfg.Bench.Texts)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultConfigFile))

	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Bench.Trials)
}

func TestLoad_ReadsYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)
	content := `
bench:
  trials: 25
  texts:
    - article1.txt
    - article2.txt
  present_pattern: "елемент"
  absent_pattern: "підрядcalifragilistic"
output:
  color: never
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Bench.Trials)
	assert.Equal(t, []string{"article1.txt", "article2.txt"}, cfg.Bench.Texts)
	assert.Equal(t, "елемент", cfg.Bench.PresentPattern)
	assert.Equal(t, "never", cfg.Output.Color)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("bench: [not a map"), 0o644))

	_, err := Load(path)

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STRFIND_TRIALS", "7")
	t.Setenv("STRFIND_COLOR", "always")
	t.Setenv("STRFIND_LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), DefaultConfigFile))

	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Bench.Trials)
	assert.Equal(t, "always", cfg.Output.Color)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_EnvOverridesBeatFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("bench:\n  trials: 50\n"), 0o644))
	t.Setenv("STRFIND_TRIALS", "3")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Bench.Trials)
}

func TestValidate(t *testing.T) {
	t.Run("zero trials rejected", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Bench.Trials = 0

		err := cfg.Validate()

		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeInvalidTrials, errors.GetCode(err))
	})

	t.Run("bad color mode rejected", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Output.Color = "sometimes"

		err := cfg.Validate()

		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
	})

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, NewConfig().Validate())
	})
}
