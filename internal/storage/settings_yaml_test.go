package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/ui/preferences"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveAndLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Pomodoro", settingsFileName)
	want := preferences.Settings{WorkMinutes: 50, ShortBreakMinutes: 10, LongBreakMinutes: 30, StartHidden: true}

	require.NoError(t, SaveSettings(path, want))

	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "work_minutes: 50")
}

func TestLoadSettingsClampsAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("work_minutes: 300\nshort_break_minutes: -1\n"), 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 120, settings.WorkMinutes)
	assert.Equal(t, 1, settings.ShortBreakMinutes)
	assert.Equal(t, 15, settings.LongBreakMinutes)
}

func TestLoadSettingsInvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("work_minutes: [oops"), 0o644))

	settings, err := LoadSettings(path)
	assert.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	path, err := ConfigPath("Pomodoro")
	require.NoError(t, err)
	assert.Equal(t, settingsFileName, filepath.Base(path))
	assert.Equal(t, "Pomodoro", filepath.Base(filepath.Dir(path)))
}
