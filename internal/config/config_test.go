package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/loccy/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Count: config.CountConfig{
			Parallel:    4,
			MaxFileSize: "1MiB",
		},
		Output: config.OutputConfig{
			ReportFormat: "yaml",
		},
		Logging: config.LoggingConfig{
			Level: "info",
		},
	}
}

func TestValidate_ValidConfig_NoError(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidate_ZeroConfig_NoError(t *testing.T) {
	t.Parallel()

	cfg := config.Config{}
	require.NoError(t, cfg.Validate())
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{name: "negative parallel", mutate: func(c *config.Config) { c.Count.Parallel = -1 }, want: config.ErrInvalidParallel},
		{name: "bad size", mutate: func(c *config.Config) { c.Count.MaxFileSize = "lots" }, want: config.ErrInvalidMaxFileSize},
		{name: "bad format", mutate: func(c *config.Config) { c.Output.ReportFormat = "pdf" }, want: config.ErrInvalidReportFormat},
		{name: "bad level", mutate: func(c *config.Config) { c.Logging.Level = "loud" }, want: config.ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestMaxFileSizeBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int64
	}{
		{raw: "", want: 0},
		{raw: "0", want: 0},
		{raw: "16MiB", want: 16 << 20},
		{raw: "2 KB", want: 2000},
		{raw: "512", want: 512},
	}

	for _, tt := range tests {
		cfg := config.Config{Count: config.CountConfig{MaxFileSize: tt.raw}}

		got, err := cfg.MaxFileSizeBytes()
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestLogLevel(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]slog.Level{
		"":        slog.LevelWarn,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		cfg := config.Config{Logging: config.LoggingConfig{Level: raw}}

		got, err := cfg.LogLevel()
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultMaxFileSize, cfg.Count.MaxFileSize)
	assert.Equal(t, config.DefaultReportFormat, cfg.Output.ReportFormat)
	assert.Equal(t, config.DefaultLogLevel, cfg.Logging.Level)
	assert.Zero(t, cfg.Count.Parallel)
	assert.False(t, cfg.Count.SkipVendor)
}

func TestLoadConfig_SearchesWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	writeConfig(t, filepath.Join(dir, ".loccy.yaml"), `
count:
  parallel: 2
  exclude_dirs: [dist, build]
  exclude: ['\.min\.js$']
  skip_vendor: true
output:
  by_file: true
  report_format: md
logging:
  level: debug
`)

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Count.Parallel)
	assert.Equal(t, []string{"dist", "build"}, cfg.Count.ExcludeDirs)
	assert.Equal(t, []string{`\.min\.js$`}, cfg.Count.Exclude)
	assert.True(t, cfg.Count.SkipVendor)
	assert.True(t, cfg.Output.ByFile)
	assert.Equal(t, "md", cfg.Output.ReportFormat)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_ExplicitPathAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	writeConfig(t, path, "count:\n  parallel: 2\n  max_file_size: 1MiB\n")
	t.Setenv("LOCCY_COUNT_PARALLEL", "6")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Count.Parallel)
	assert.Equal(t, "1MiB", cfg.Count.MaxFileSize)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := config.LoadConfig(filepath.Join(dir, "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		writeConfig(t, path, "count: [\n")

		_, err := config.LoadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})

	t.Run("invalid value", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		writeConfig(t, path, "count:\n  max_file_size: huge\n")

		_, err := config.LoadConfig(path)
		require.ErrorIs(t, err, config.ErrInvalidMaxFileSize)
	})
}

func writeConfig(t *testing.T, path, contents string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
