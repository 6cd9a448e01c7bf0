package app

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultHolidayRegion, cfg.Holidays.Region)
	assert.Equal(t, DefaultWeatherTTL, cfg.Weather.TTL)
	assert.False(t, cfg.Weather.Enabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 9090
log_level: debug
log_format: json
private: true
holidays:
  region: ""
weather:
  api_key: from-file
  lat: 52.52
  lon: 13.40
  timezone: Europe/Berlin
  ttl: 15m
`), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.Private)
	assert.Equal(t, "", cfg.Holidays.Region)
	assert.Equal(t, "from-file", cfg.Weather.APIKey)
	assert.Equal(t, 52.52, cfg.Weather.Lat)
	assert.Equal(t, 15*time.Minute, cfg.Weather.TTL)
	require.NoError(t, cfg.Validate())

	t.Setenv(EnvPort, "7070")
	t.Setenv(EnvWeatherAPIKey, "from-env")
	t.Setenv(EnvAuthFile, "/run/secrets/auth")
	t.Setenv(EnvHolidayRegion, "de-nw")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "from-env", cfg.Weather.APIKey)
	assert.Equal(t, "/run/secrets/auth", cfg.AuthFile)
	assert.Equal(t, "de-nw", cfg.Holidays.Region)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [1, 2"), 0600))
	_, err = LoadConfig(path)
	assert.Error(t, err)

	t.Setenv(EnvPort, "eighty")
	_, err = LoadConfig("")
	assert.ErrorContains(t, err, EnvPort)
}

func TestConfigValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"port", func(c *Config) { c.Port = 0 }, "port 0 out of range"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
		{"log format", func(c *Config) { c.LogFormat = "xml" }, "unknown log format"},
		{"holidays", func(c *Config) { c.Holidays.Region = "fr-idf" }, "unknown holiday region"},
		{"timezone", func(c *Config) {
			c.Weather.APIKey = "k"
			c.Weather.Timezone = "Nowhere/Land"
		}, "weather timezone"},
		{"ttl", func(c *Config) {
			c.Weather.APIKey = "k"
			c.Weather.TTL = 0
		}, "weather ttl"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.want)
		})
	}
}

func TestConfigLogValueMasksAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weather.APIKey = "super-secret"

	var buf bytes.Buffer
	slog.New(slog.NewJSONHandler(&buf, nil)).Info("config", "config", cfg)
	assert.NotContains(t, buf.String(), "super-secret")
	assert.Contains(t, buf.String(), `"api_key":"****"`)
	assert.Contains(t, buf.String(), `"port":8080`)
}

func TestSlogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "warn"
	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
