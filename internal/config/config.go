// Package config loads loccy settings from .loccy.yaml and LOCCY_* variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mouse-blink/loccy/internal/adapter"
)

// Default configuration values.
const (
	DefaultMaxFileSize  = "16MiB"
	DefaultReportFormat = string(adapter.FormatJSON)
	DefaultLogLevel     = "warn"
)

// Sentinel validation errors.
var (
	// ErrInvalidParallel indicates a negative worker count.
	ErrInvalidParallel = errors.New("count.parallel must be non-negative")
	// ErrInvalidMaxFileSize indicates a size string go-humanize cannot parse.
	ErrInvalidMaxFileSize = errors.New("count.max_file_size is not a valid size")
	// ErrInvalidReportFormat indicates an unknown report format.
	ErrInvalidReportFormat = errors.New("output.report_format is not a known format")
	// ErrInvalidLogLevel indicates an unknown log level.
	ErrInvalidLogLevel = errors.New("logging.level must be one of debug, info, warn, error")
)

// Config is the top-level configuration struct.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Count   CountConfig   `mapstructure:"count"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CountConfig holds walking and gate settings.
type CountConfig struct {
	Parallel       int      `mapstructure:"parallel"`
	MaxFileSize    string   `mapstructure:"max_file_size"`
	ExcludeDirs    []string `mapstructure:"exclude_dirs"`
	Exclude        []string `mapstructure:"exclude"`
	NoRecurse      bool     `mapstructure:"no_recurse"`
	SkipVendor     bool     `mapstructure:"skip_vendor"`
	SkipUniqueness bool     `mapstructure:"skip_uniqueness"`
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	ByFile       bool   `mapstructure:"by_file"`
	ShowSkipped  bool   `mapstructure:"show_skipped"`
	ReportFormat string `mapstructure:"report_format"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if c.Count.Parallel < 0 {
		return ErrInvalidParallel
	}

	if _, err := c.MaxFileSizeBytes(); err != nil {
		return err
	}

	if _, err := adapter.ParseReportFormat(c.Output.ReportFormat); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidReportFormat, c.Output.ReportFormat)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// MaxFileSizeBytes parses Count.MaxFileSize. An empty value or "0" disables
// the limit.
func (c *Config) MaxFileSizeBytes() (int64, error) {
	raw := strings.TrimSpace(c.Count.MaxFileSize)
	if raw == "" {
		return 0, nil
	}

	size, err := humanize.ParseBytes(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMaxFileSize, raw)
	}

	return int64(size), nil
}

// LogLevel maps Logging.Level to a slog level. Empty means warn.
func (c *Config) LogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
}
