package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file with every key set
		path := writeConfig(t, `
log-level: debug
game:
  human-symbol: O
output:
  format: json
  color: true
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the values come from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "O", conf.Game.HumanSymbol)
		assert.Equal(t, FormatJSON, conf.Output.Format)
		assert.True(t, conf.Output.Color)
	})

	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		// When: the config path does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Empty(t, conf.Game.HumanSymbol)
		assert.Equal(t, FormatText, conf.Output.Format)
		assert.False(t, conf.Output.Color)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an env override
		path := writeConfig(t, "log-level: debug\n")
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("HUMAN_SYMBOL", "O")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: env wins
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, "O", conf.Game.HumanSymbol)
	})

	t.Run("Unknown output format", func(t *testing.T) {
		path := writeConfig(t, "output:\n  format: xml\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownFormat)
	})
}

func TestMustLoad(t *testing.T) {
	path := writeConfig(t, "output:\n  format: xml\n")

	assert.Panics(t, func() {
		MustLoad(path)
	})
}
