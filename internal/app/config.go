package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Constants
const (
	DefaultPort          = 8080
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultHolidayRegion = "de-nw"
	DefaultTimezone      = "Europe/Berlin"
	DefaultWeatherTTL    = 30 * time.Minute

	// Error messages
	ErrInvalidMonth   = "Invalid month"
	ErrInvalidWeek    = "Invalid week"
	ErrInvalidYear    = "Invalid year"
	ErrInternalServer = "Internal server error"
	ErrFailedToRender = "Failed to render page"

	// ICS constants
	ICSProductID = "-//klabast//calendar-views//EN"
	ICSCalName   = "ISO week numbers"
	ICSUIDDomain = "calendar-views"
)

// Environment variables that override the config file.
const (
	EnvPort          = "CALENDAR_PORT"
	EnvLogLevel      = "CALENDAR_LOG_LEVEL"
	EnvLogFormat     = "CALENDAR_LOG_FORMAT"
	EnvHolidayRegion = "CALENDAR_HOLIDAYS"
	EnvWeatherAPIKey = "WEATHER_API_KEY"
	EnvAuthFile      = "AUTH_FILE"
)

// Global variables
var (
	// Now is the clock used for "today" and the current hour.
	Now = time.Now

	// Weather is nil when no API key is configured.
	Weather *WeatherService

	// HolidayRegion selects the public holiday table, empty disables it.
	HolidayRegion = DefaultHolidayRegion
)

// Config holds the server settings. Values are layered: defaults, then the
// YAML file, then the environment, then command line flags.
type Config struct {
	Port      int           `yaml:"port"`
	LogLevel  string        `yaml:"log_level"`
	LogFormat string        `yaml:"log_format"`
	Private   bool          `yaml:"private"`
	AuthFile  string        `yaml:"auth_file"`
	Holidays  HolidayConfig `yaml:"holidays"`
	Weather   WeatherConfig `yaml:"weather"`
}

type HolidayConfig struct {
	Region string `yaml:"region"`
}

// WeatherConfig configures the optional forecast overlay. It is disabled
// when APIKey is empty.
type WeatherConfig struct {
	APIKey   string        `yaml:"api_key"`
	Lat      float64       `yaml:"lat"`
	Lon      float64       `yaml:"lon"`
	Timezone string        `yaml:"timezone"`
	TTL      time.Duration `yaml:"ttl"`
}

func (w WeatherConfig) Enabled() bool {
	return w.APIKey != ""
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Port:      DefaultPort,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Holidays:  HolidayConfig{Region: DefaultHolidayRegion},
		Weather: WeatherConfig{
			Lat:      51.19,
			Lon:      8.53,
			Timezone: DefaultTimezone,
			TTL:      DefaultWeatherTTL,
		},
	}
}

// LoadConfig returns the defaults overlaid with the YAML file at path, if
// path is not empty, and then with the environment.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		c.Port = port
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	if v, ok := os.LookupEnv(EnvHolidayRegion); ok {
		c.Holidays.Region = v
	}
	if v := os.Getenv(EnvWeatherAPIKey); v != "" {
		c.Weather.APIKey = v
	}
	if v := os.Getenv(EnvAuthFile); v != "" {
		c.AuthFile = v
	}
	return nil
}

// Validate checks the settings that cannot be caught by the YAML decoder.
func (c Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	if c.Holidays.Region != "" && !KnownHolidayRegion(c.Holidays.Region) {
		errs = append(errs, fmt.Errorf("unknown holiday region %q", c.Holidays.Region))
	}
	if c.Weather.Enabled() {
		if _, err := time.LoadLocation(c.Weather.Timezone); err != nil {
			errs = append(errs, fmt.Errorf("weather timezone: %w", err))
		}
		if c.Weather.TTL <= 0 {
			errs = append(errs, fmt.Errorf("weather ttl must be positive"))
		}
	}
	return errors.Join(errs...)
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger returns a logger writing to stderr in the configured format.
func (c Config) NewLogger() *slog.Logger {
	level, _ := c.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// LogValue implements slog.LogValuer and masks the weather API key.
func (c Config) LogValue() slog.Value {
	key := ""
	if c.Weather.APIKey != "" {
		key = "****"
	}
	return slog.GroupValue(
		slog.Int("port", c.Port),
		slog.String("log_level", c.LogLevel),
		slog.String("log_format", c.LogFormat),
		slog.Bool("private", c.Private),
		slog.String("auth_file", c.AuthFile),
		slog.String("holidays", c.Holidays.Region),
		slog.Group("weather",
			slog.String("api_key", key),
			slog.Float64("lat", c.Weather.Lat),
			slog.Float64("lon", c.Weather.Lon),
			slog.String("timezone", c.Weather.Timezone),
			slog.Duration("ttl", c.Weather.TTL),
		),
	)
}
