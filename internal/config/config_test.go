package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, DefaultLocalPort, cfg.LocalPort)
	assert.Equal(t, DefaultGUIPort, cfg.GUIPort)
	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.MaxBodyBytes)
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
	assert.False(t, cfg.Docs)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load([]string{"-l", "9090", "--gui-port=4000", "--docs", "--shutdown-timeout", "3s"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.LocalPort)
	assert.Equal(t, 4000, cfg.GUIPort)
	assert.True(t, cfg.Docs)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_EnvAndPrecedence(t *testing.T) {
	t.Setenv("CALENDAR_LOCAL_PORT", "7070")
	t.Setenv("CALENDAR_LOG_LEVEL", "debug")

	cfg, err := Load(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.LocalPort)
	assert.Equal(t, "debug", cfg.LogLevel)

	cfg, err = Load([]string{"--local-port", "6060"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.LocalPort, "flag must win over env")
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("local-port: 5050\nhost: 0.0.0.0\nlog-format: json\n"), 0o600))

	cfg, err := Load([]string{"--config", path}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 5050, cfg.LocalPort)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, DefaultGUIPort, cfg.GUIPort)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "port zero", args: []string{"--local-port", "0"}},
		{name: "port too large", args: []string{"--gui-port", "70000"}},
		{name: "non numeric port", args: []string{"--local-port", "abc"}},
		{name: "negative body limit", args: []string{"--max-body-bytes", "-1"}},
		{name: "unknown flag", args: []string{"--bogus"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.args, &bytes.Buffer{})
			assert.Error(t, err)
		})
	}
}

func TestLoad_Help(t *testing.T) {
	var usage bytes.Buffer
	_, err := Load([]string{"--help"}, &usage)
	require.ErrorIs(t, err, ErrHelp)
	assert.Contains(t, usage.String(), "local-port")
	assert.Contains(t, usage.String(), "gui-port")
}
