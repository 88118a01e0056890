// Package config assembles the catalog CLI's configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	pkgconfig "magazine-catalog/internal/pkg/config"
)

// Environment variables read by LoadCatalogConfig.
const (
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
	EnvSeedFile     = "CATALOG_SEED_FILE"
	EnvOutputFormat = "CATALOG_OUTPUT_FORMAT"
	EnvTrace        = "CATALOG_TRACE"
	EnvMetricsFile  = "CATALOG_METRICS_FILE"
)

// CatalogConfig holds the CLI settings. Command-line flags override these.
type CatalogConfig struct {
	LogLevel     string
	LogFormat    string
	SeedFile     string
	OutputFormat string

	// Trace enables the stdout span exporter.
	Trace bool

	// MetricsFile, when set, receives a Prometheus text dump on exit.
	MetricsFile string
}

// Defaults returns the configuration used when nothing is set.
func Defaults() CatalogConfig {
	return CatalogConfig{
		LogLevel:     "info",
		LogFormat:    "text",
		OutputFormat: "json",
	}
}

// LoadCatalogConfig reads the configuration from the environment.
// Invalid values fall back to their defaults; each fallback is returned as a
// warning and counted in cm when cm is non-nil.
func LoadCatalogConfig(cm *pkgconfig.ConfigMetrics) (CatalogConfig, []string) {
	def := Defaults()
	cfg := def
	var warnings []string

	apply := func(field string, r pkgconfig.ConfigLoadResult) interface{} {
		if r.FallbackApplied {
			warnings = append(warnings, r.Warnings...)
			if cm != nil {
				cm.RecordFallback(field)
			}
		}
		return r.Value
	}

	cfg.LogLevel = apply("log_level", pkgconfig.LoadEnvWithFallback(EnvLogLevel, def.LogLevel, pkgconfig.ValidateLogLevel)).(string)
	cfg.LogFormat = apply("log_format", pkgconfig.LoadEnvWithFallback(EnvLogFormat, def.LogFormat, pkgconfig.ValidateLogFormat)).(string)
	cfg.OutputFormat = apply("output_format", pkgconfig.LoadEnvWithFallback(EnvOutputFormat, def.OutputFormat, pkgconfig.ValidateOutputFormat)).(string)
	cfg.Trace = apply("trace", pkgconfig.LoadEnvBool(EnvTrace, def.Trace)).(bool)
	cfg.SeedFile = pkgconfig.LoadEnvString(EnvSeedFile, def.SeedFile)
	cfg.MetricsFile = pkgconfig.LoadEnvString(EnvMetricsFile, def.MetricsFile)

	if cm != nil {
		cm.RecordLoadTimestamp()
	}
	return cfg.Normalize(), warnings
}

// Normalize lowercases the enumerated values. Validation accepts any case,
// so it must run after every override and before the values are switched on.
func (c CatalogConfig) Normalize() CatalogConfig {
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)
	c.OutputFormat = strings.ToLower(c.OutputFormat)
	return c
}

// Validate checks values that may have been overridden by flags.
func (c CatalogConfig) Validate() error {
	if err := pkgconfig.ValidateLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	if err := pkgconfig.ValidateLogFormat(c.LogFormat); err != nil {
		return fmt.Errorf("log format %q: %w", c.LogFormat, err)
	}
	if err := pkgconfig.ValidateOutputFormat(c.OutputFormat); err != nil {
		return fmt.Errorf("output format %q: %w", c.OutputFormat, err)
	}
	return nil
}

// LogValue implements slog.LogValuer.
func (c CatalogConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("log_level", c.LogLevel),
		slog.String("log_format", c.LogFormat),
		slog.String("seed_file", c.SeedFile),
		slog.String("output_format", c.OutputFormat),
		slog.Bool("trace", c.Trace),
		slog.String("metrics_file", c.MetricsFile),
	)
}
