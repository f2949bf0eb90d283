// Package config resolves run settings from defaults, a YAML file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds everything a run needs.
type Config struct {
	// APIKey authenticates against the Steam Web API.
	APIKey string `env:"KEY" yaml:"key"`
	// TeamsPath points at the JSON file listing team ids.
	TeamsPath string `env:"TEAMS" yaml:"teams"`
	// Output is where the result set is written.
	Output string `env:"OUTPUT" yaml:"output"`

	CamelCase bool `env:"CAMELCASE" yaml:"camelcase"`
	Pretty    bool `env:"PRETTY" yaml:"pretty"`

	// Provider selects the upstream: "steam" or "fixture".
	Provider string `env:"PROVIDER" yaml:"provider"`

	Steam     SteamConfig     `envPrefix:"STEAM_" yaml:"steam"`
	RateLimit RateLimitConfig `envPrefix:"RATE_" yaml:"rate_limit"`
	Log       LogConfig       `envPrefix:"LOG_" yaml:"log"`
	Metrics   MetricsConfig   `envPrefix:"METRICS_" yaml:"metrics"`
}

// SteamConfig controls how we talk to the Steam Web API.
type SteamConfig struct {
	BaseURL string        `env:"BASE_URL" yaml:"base_url"`
	Timeout time.Duration `env:"TIMEOUT" yaml:"timeout"`
}

// RateLimitConfig bounds how fast requests leave the process.
type RateLimitConfig struct {
	Interval time.Duration `env:"INTERVAL" yaml:"interval"`
	Burst    int           `env:"BURST" yaml:"burst"`
}

// LogConfig is the logger configuration.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `env:"LEVEL" yaml:"level"`
	// Format is one of json, text, console.
	Format string `env:"FORMAT" yaml:"format"`
}

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	// File receives a Prometheus textfile dump at the end of the run.
	File         string `env:"FILE" yaml:"file"`
	OtlpEndpoint string `env:"OTLP_ENDPOINT" yaml:"otlp_endpoint"`
	OtlpInsecure bool   `env:"OTLP_INSECURE" yaml:"otlp_insecure"`
	ServiceName  string `env:"SERVICE_NAME" yaml:"service_name"`
}

// Enabled reports whether any exporter is configured.
func (m MetricsConfig) Enabled() bool {
	return m.File != "" || m.OtlpEndpoint != ""
}

// UsageError reports a missing or invalid setting. Callers print usage and
// exit without fetching anything.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// AsUsageError extracts a *UsageError from err.
func AsUsageError(err error) (*UsageError, bool) {
	var ue *UsageError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

func usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Output:   defaultOutput,
		Provider: defaultProvider,
		Steam: SteamConfig{
			BaseURL: defaultSteamBaseURL,
			Timeout: defaultSteamTimeout,
		},
		RateLimit: RateLimitConfig{
			Interval: defaultRateInterval,
			Burst:    defaultRateBurst,
		},
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Metrics: MetricsConfig{
			ServiceName: defaultMetricsSvc,
		},
	}
}

// Load layers the YAML file at path (when non-empty) and then the
// environment over the defaults. It does not validate: flags still apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := cfg.ParseFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ParseEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseFile decodes the YAML file at path over c.
func (c *Config) ParseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close() // nolint: errcheck

	if err := yaml.NewDecoder(f).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// ParseEnv applies TEAMINFO_* environment variables over c.
func (c *Config) ParseEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse environment variables: %w", err)
	}
	return nil
}

// Validate checks required settings and normalizes paths. Every failure is
// a *UsageError.
func (c *Config) Validate() error {
	c.TeamsPath = strings.TrimSpace(c.TeamsPath)
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))

	if c.TeamsPath == "" {
		return usagef("--teams is required")
	}
	if !slices.Contains(validProviders, c.Provider) {
		return usagef("unknown provider %q (want one of %s)", c.Provider, strings.Join(validProviders, ", "))
	}
	if c.APIKey == "" && c.Provider == ProviderSteam {
		return usagef("--key is required")
	}
	if c.RateLimit.Interval <= 0 {
		return usagef("rate interval must be positive, got %s", c.RateLimit.Interval)
	}
	if c.RateLimit.Burst < 1 {
		return usagef("burst must be at least 1, got %d", c.RateLimit.Burst)
	}
	if c.Steam.Timeout <= 0 {
		return usagef("steam timeout must be positive, got %s", c.Steam.Timeout)
	}
	if !slices.Contains(validLogLevels, c.Log.Level) {
		return usagef("unknown log level %q", c.Log.Level)
	}
	if !slices.Contains(validLogFormats, c.Log.Format) {
		return usagef("unknown log format %q", c.Log.Format)
	}

	if c.Output == "" {
		c.Output = defaultOutput
	}
	for _, p := range []*string{&c.TeamsPath, &c.Output, &c.Metrics.File} {
		if *p == "" || filepath.IsAbs(*p) {
			continue
		}
		abs, err := filepath.Abs(*p)
		if err != nil {
			return err
		}
		*p = abs
	}
	c.Steam.BaseURL = strings.TrimSuffix(strings.TrimSpace(c.Steam.BaseURL), "/")
	return nil
}
