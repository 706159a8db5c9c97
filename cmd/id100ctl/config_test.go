package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempConfig writes TOML content to a temp file and returns its path.
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Port)
	assert.Equal(t, 115200, cfg.Baud)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
	assert.Equal(t, time.Duration(0), cfg.CommandDelay)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadConfigOverlay(t *testing.T) {
	path := writeTempConfig(t, `
port = "/dev/ttyACM1"
baud = 57600
command_delay_ms = 10
log_level = "debug"
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyACM1", cfg.Port)
	assert.Equal(t, 57600, cfg.Baud)
	assert.Equal(t, 10*time.Millisecond, cfg.CommandDelay)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Keys the file does not set keep their defaults
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "bad baud", content: "baud = 0\n", errMsg: "baud must be positive"},
		{name: "bad read timeout", content: "read_timeout_ms = -5\n", errMsg: "read_timeout_ms must be positive"},
		{name: "bad command delay", content: "command_delay_ms = -1\n", errMsg: "command_delay_ms cannot be negative"},
		{name: "bad toml", content: "port = \n", errMsg: "load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeTempConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
