package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pomodoro/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	config, err := LoadTimerConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTimerConfig(), config)
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, "work_minutes: 50\nbreak_minutes: 10\nrestart_delay_seconds: 0\n")

	config, err := LoadTimerConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 50*time.Minute, config.Work)
	assert.Equal(t, 10*time.Minute, config.Break)
	assert.Equal(t, time.Duration(0), config.RestartDelay)
}

func TestLoadIgnoresOutOfRangeFields(t *testing.T) {
	path := writeConfig(t, "work_minutes: -5\nbreak_minutes: 0\nrestart_delay_seconds: -1\n")

	config, err := LoadTimerConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTimerConfig(), config)
}

func TestLoadIgnoresOversizedFields(t *testing.T) {
	path := writeConfig(t, "work_minutes: 400000000\nbreak_minutes: 1441\nrestart_delay_seconds: 9999999999999\n")

	config, err := LoadTimerConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTimerConfig(), config)
}

func TestLoadPartialFile(t *testing.T) {
	path := writeConfig(t, "break_minutes: 15\n")

	config, err := LoadTimerConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultWork, config.Work)
	assert.Equal(t, 15*time.Minute, config.Break)
	assert.Equal(t, model.DefaultRestartDelay, config.RestartDelay)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "work_minutes: [not a number\n")

	config, err := LoadTimerConfigFile(path)
	assert.ErrorContains(t, err, "parse config yaml")
	assert.Equal(t, model.DefaultTimerConfig(), config)
}

func TestLoadTimerConfigUsesUserConfigDir(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	t.Setenv("HOME", root)
	t.Setenv("AppData", root)

	path, err := ResolveConfigPath("PomodoroTest")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("work_minutes: 45\n"), 0o644))

	config, err := LoadTimerConfig("PomodoroTest")
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, config.Work)
}
