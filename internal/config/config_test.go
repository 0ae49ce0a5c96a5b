package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
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
	t.Run("Defaults from empty environment", func(t *testing.T) {
		// When: no file is given
		conf, err := Load("")

		// Then: the defaults apply
		require.NoError(t, err)
		assert.Equal(t, &Config{LogLevel: "info", Dimension: 3, LockFinishedGame: false}, conf)
	})

	t.Run("Values from yaml file", func(t *testing.T) {
		// Given: a config file
		path := writeConfig(t, "log-level: debug\ndimension: 5\nlock-finished-game: true\n")

		// When: it is loaded
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, &Config{LogLevel: "debug", Dimension: 5, LockFinishedGame: true}, conf)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "dimension: 5\n")
		t.Setenv("BOARD_DIMENSION", "7")
		t.Setenv("LOG_LEVEL", "debug")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 7, conf.Dimension)
		assert.Equal(t, "debug", conf.LogLevel)
	})

	t.Run("Error on missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
	})

	t.Run("Error on non-positive dimension", func(t *testing.T) {
		path := writeConfig(t, "dimension: -4\n")

		_, err := Load(path)

		require.ErrorIs(t, err, apperror.ErrInvalidDimension)
	})
}

func TestMustLoad(t *testing.T) {
	t.Setenv("BOARD_DIMENSION", "-2")

	assert.Panics(t, func() {
		MustLoad("")
	})
}
