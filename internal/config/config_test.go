package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "> ", cfg.Prompt)
	assert.True(t, cfg.Color)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "history", filepath.Base(cfg.History.File))
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Log.File)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
prompt: "$ "
history:
  file: /tmp/bsh-history
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "$ ", cfg.Prompt)
	assert.True(t, cfg.Color)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "/tmp/bsh-history", cfg.History.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_HistoryDisabled(t *testing.T) {
	path := writeConfig(t, `
color: false
history:
  enabled: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Color)
	assert.False(t, cfg.History.Enabled)
	assert.Empty(t, cfg.History.File)
}

func TestLoad_Invalid(t *testing.T) {

	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "empty prompt",
			content: `prompt: ""`,
			errMsg:  "prompt must not be empty",
		},
		{
			name:    "unknown level",
			content: "log:\n  level: loud\n",
			errMsg:  `unknown log level "loud"`,
		},
		{
			name:    "unknown format",
			content: "log:\n  format: xml\n",
			errMsg:  `unknown log format "xml"`,
		},
		{
			name:    "malformed yaml",
			content: "prompt: [unterminated",
			errMsg:  "failed to load config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestPath(t *testing.T) {
	t.Run("environment override", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/etc/bsh.yaml")

		path, err := Path()
		require.NoError(t, err)
		assert.Equal(t, "/etc/bsh.yaml", path)
	})

	t.Run("user config directory", func(t *testing.T) {
		if runtime.GOOS != "linux" {
			t.Skip("XDG_CONFIG_HOME is only honoured on linux")
		}

		dir := t.TempDir()
		t.Setenv(EnvConfigPath, "")
		t.Setenv("XDG_CONFIG_HOME", dir)

		path, err := Path()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "bsh", "config.yaml"), path)
	})
}
