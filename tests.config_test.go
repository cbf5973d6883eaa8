package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestLoadAndInitConfigs_Defaults ensures the server runs without any configuration file.
func TestLoadAndInitConfigs_Defaults(t *testing.T) {
	dir := t.TempDir()
	config, err := LoadAndInitConfigs(filepath.Join(dir, "config.yml"), filepath.Join(dir, "config.env"), "abc123", "", "")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
	assert.Equal(t, "8000", config.Server.Port)
	assert.Equal(t, "../frontend/dist/", config.Assets.Root)
	assert.Equal(t, zapcore.InfoLevel, config.LogLevel)
	assert.Equal(t, "abc123", config.GitCommit)
	assert.False(t, config.OpsEndpointsEnable)
}

// TestLoadAndInitConfigs_Sources ensures the file, the env file and the
// environment override the defaults in that order.
func TestLoadAndInitConfigs_Sources(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yml")
	envFile := filepath.Join(dir, "config.env")
	yml := `
log_level: debug
ops_endpoints_enable: true
server:
  host: 127.0.0.1
  port: "9000"
  shutdown_timeout: 3s
assets:
  root: ./public
`
	require.NoError(t, os.WriteFile(configFile, []byte(yml), 0o644))
	require.NoError(t, os.WriteFile(envFile, []byte("BKSH_ASSETS_ROOT=./www\n"), 0o644))
	t.Setenv("BKSH_SERVER_PORT", "9100")
	t.Cleanup(func() { os.Unsetenv("BKSH_ASSETS_ROOT") })

	config, err := LoadAndInitConfigs(configFile, envFile, "", "v1.2.3", "2023-07-02")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, config.LogLevel)
	assert.True(t, config.OpsEndpointsEnable)
	assert.Equal(t, "127.0.0.1", config.Server.Host)
	assert.Equal(t, "9100", config.Server.Port)
	assert.Equal(t, 3*time.Second, config.Server.ShutdownTimeout)
	assert.Equal(t, 45*time.Second, config.Server.RequestTimeout)
	assert.Equal(t, "./www", config.Assets.Root)
	assert.Equal(t, "v1.2.3", config.GitTag)
	assert.Equal(t, "2023-07-02", config.BuildTime)
}

// TestLoadConfigFile_Invalid ensures a malformed file is reported.
func TestLoadConfigFile_Invalid(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("server: [\n"), 0o644))
	err := LoadConfigFile(configFile, DefaultConfig())
	assert.Error(t, err)
}

// TestLoadConfigFile_Empty ensures an empty file keeps the defaults.
func TestLoadConfigFile_Empty(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configFile, nil, 0o644))
	config := DefaultConfig()
	require.NoError(t, LoadConfigFile(configFile, config))
	assert.Equal(t, DefaultConfig(), config)
}

// TestInitConfig ensures mandatory settings are checked.
func TestInitConfig(t *testing.T) {
	testCases := []struct {
		name   string
		update func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"missing host", func(c *Config) { c.Server.Host = "" }, false},
		{"missing port", func(c *Config) { c.Server.Port = "" }, false},
		{"missing assets root", func(c *Config) { c.Assets.Root = "" }, false},
		{"invalid log max size", func(c *Config) { c.LogMaxSize = 0 }, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.update(config)
			err := InitConfig(config, "", "", "")
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
