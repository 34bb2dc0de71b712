package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/storage"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConfigShowDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	out, _, err := execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Pomodoro:    25 min")
	assert.Contains(t, out, "Short break: 5 min")
	assert.Contains(t, out, "Long break:  15 min")
}

func TestConfigSetClampsAndSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	out, errOut, err := execute(t, "--config", path, "config", "set", "--work", "200", "--short", "10")
	require.NoError(t, err)
	assert.Contains(t, errOut, "out of range, using 120")
	assert.Contains(t, out, "Pomodoro:    120 min")

	settings, err := storage.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 120, settings.WorkMinutes)
	assert.Equal(t, 10, settings.ShortBreakMinutes)
	assert.Equal(t, 15, settings.LongBreakMinutes)
}

func TestConfigSetRequiresFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	_, _, err := execute(t, "--config", path, "config", "set")
	assert.Error(t, err)
}

func TestConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	out, _, err := execute(t, "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}
