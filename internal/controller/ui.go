// Package controller provides the terminal front-ends that present counting
// progress and results.
package controller

import (
	"time"

	m "github.com/mouse-blink/loccy/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeCount StartMode = iota
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithCountMode sets the UI to live counting mode.
func WithCountMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCount
	}
}

// WithViewMode sets the UI to show a previously saved report.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// DisplayOption is a functional option for DisplaySummary.
type DisplayOption func(*DisplayConfig)

// DisplayConfig holds what DisplaySummary should include.
type DisplayConfig struct {
	byFile      bool
	showSkipped bool
	elapsed     time.Duration
}

// WithByFile adds the per-file breakdown.
func WithByFile(enabled bool) DisplayOption {
	return func(c *DisplayConfig) {
		c.byFile = enabled
	}
}

// WithSkipped lists the files dropped before classification.
func WithSkipped(enabled bool) DisplayOption {
	return func(c *DisplayConfig) {
		c.showSkipped = enabled
	}
}

// WithElapsed reports the wall time of the run.
func WithElapsed(d time.Duration) DisplayOption {
	return func(c *DisplayConfig) {
		c.elapsed = d
	}
}

func newDisplayConfig(options []DisplayOption) DisplayConfig {
	var cfg DisplayConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for presenting counting runs.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayConcurrencyInfo(threads int, files int)
	DisplayProgress(done int, total int, path m.Path)
	DisplaySummary(summary m.Summary, options ...DisplayOption) error
	DisplayLanguages(languages []m.Language) error
}
