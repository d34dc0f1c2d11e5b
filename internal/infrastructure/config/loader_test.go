package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  host: 127.0.0.1
  port: 9090
  readTimeout: 5
  writeTimeout: 6
  shutdownTimeout: 3
logger:
  level: debug
  format: json
raceBook:
  maxSprinters: 10
  seed:
    - "Usain Bolt 0:00:09"
    - "Florence Griffith Joyner 0:00:10"
`

func writeConfig(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))
	return dir
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := writeConfig(t, Test, testYAML)

	cfg, err := LoadConfig([]string{"--env", "test", "--config-dir", dir})
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 6*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, 10, cfg.RaceBook.MaxSprinters)
	assert.Equal(t, []string{"Usain Bolt 0:00:09", "Florence Griffith Joyner 0:00:10"}, cfg.RaceBook.Seed)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	dir := writeConfig(t, Test, testYAML)
	t.Setenv("RB_SERVER_PORT", "7070")
	t.Setenv("RB_LOGGER_LEVEL", "warn")
	t.Setenv("RB_RACEBOOK_MAX_SPRINTERS", "0")
	t.Setenv("RB_RACEBOOK_SEED", "Carl Lewis 0:00:10; ;Jesse Owens 0:00:11")

	cfg, err := LoadConfig([]string{"--env", "test", "--config-dir", dir})
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, 0, cfg.RaceBook.MaxSprinters)
	assert.Equal(t, []string{"Carl Lewis 0:00:10", "Jesse Owens 0:00:11"}, cfg.RaceBook.Seed)
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	dir := writeConfig(t, Test, testYAML)
	t.Setenv("RB_SERVER_PORT", "7070")

	cfg, err := LoadConfig([]string{"--env=test", "--config-dir", dir, "--port", "6060", "--log-level", "error"})
	require.NoError(t, err)

	assert.Equal(t, 6060, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Logger.Level)
}

func TestLoadConfig_EnvironmentSelection(t *testing.T) {
	dir := writeConfig(t, Production, "server:\n  port: 8181\n")
	t.Setenv("RB_ENV", "PRODUCTION")

	cfg, err := LoadConfig([]string{"--config-dir", dir})
	require.NoError(t, err)

	assert.Equal(t, Production, cfg.Environment)
	assert.Equal(t, 8181, cfg.Server.Port)
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig([]string{"--env", "test", "--config-dir", t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Zero(t, cfg.RaceBook.MaxSprinters)
	assert.Empty(t, cfg.RaceBook.Seed)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("Unknown flag", func(t *testing.T) {
		_, err := LoadConfig([]string{"--no-such-flag"})
		assert.Error(t, err)
	})

	t.Run("Malformed file", func(t *testing.T) {
		dir := writeConfig(t, Test, "server: [unclosed")
		_, err := LoadConfig([]string{"--env", "test", "--config-dir", dir})
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment: Development,
			Server: ServerConfig{
				Port:            8080,
				ReadTimeout:     time.Second,
				WriteTimeout:    time.Second,
				ShutdownTimeout: time.Second,
			},
			Logger: LoggerConfig{Level: "info"},
		}
	}

	assert.NoError(t, valid().Validate())

	testCases := []struct {
		description string
		mutate      func(c *Config)
	}{
		{"Missing port", func(c *Config) { c.Server.Port = 0 }},
		{"Port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"Missing read timeout", func(c *Config) { c.Server.ReadTimeout = 0 }},
		{"Missing log level", func(c *Config) { c.Logger.Level = "" }},
		{"Missing environment", func(c *Config) { c.Environment = "" }},
		{"Unknown environment", func(c *Config) { c.Environment = "staging" }},
		{"Negative capacity", func(c *Config) { c.RaceBook.MaxSprinters = -1 }},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
