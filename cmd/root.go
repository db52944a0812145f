// Package cmd provides the root command and CLI setup for loccy.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/loccy/internal/adapter"
	"github.com/mouse-blink/loccy/internal/config"
	"github.com/mouse-blink/loccy/internal/controller"
	"github.com/mouse-blink/loccy/internal/domain"
	m "github.com/mouse-blink/loccy/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var detector adapter.LanguageDetector
var decoder adapter.TextDecoder
var reportStore adapter.ReportStore
var metricsSink adapter.MetricsSink
var registry *domain.Registry
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

// settings is loaded before any command runs.
var settings = &config.Config{}

func init() {
	ui = controller.NewUI(rootCmd)
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	detector = adapter.NewEnryLanguageDetector()
	decoder = adapter.NewCharsetTextDecoder()
	reportStore = adapter.NewReportStore()
	metricsSink = adapter.NewPrometheusTextfileSink()
	registry = domain.NewRegistry(detector)
	orchestrator = domain.NewOrchestrator(fsAdapter, decoder, registry)
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		metricsSink,
		detector,
		ui,
		orchestrator,
		registry,
	)
}

var configFlag string
var verboseFlag bool

var excludeFlags []string
var excludeDirFlags []string
var parallelFlag int
var maxFileSizeFlag string
var noRecurseFlag bool
var skipVendorFlag bool
var skipUniquenessFlag bool
var byFileFlag bool
var showSkippedFlag bool
var reportFlag string
var formatFlag string
var metricsFileFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `Loccy counts blank, comment and code lines in source files.

Every path may be a file or a directory. Directories are scanned
recursively unless --no-recurse is given; a trailing /... always recurses:
  - .              count the current directory
  - ./pkg/...      count the pkg directory
  - main.go lib    count a file and a directory

Settings are read from .loccy.yaml in the current directory or $HOME
(or --config), then LOCCY_* environment variables, then flags.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "loccy [paths...]",
		Short:         "Count lines of code",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadSettings(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			countArgs, err := buildCountArgs(cmd, args)
			if err != nil {
				return err
			}

			return workflow.Count(cmd.Context(), countArgs)
		},
	}

	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default .loccy.yaml in . or $HOME)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log skipped files and other details to stderr")

	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude paths matching regex (can be repeated)")
	cmd.Flags().StringArrayVar(&excludeDirFlags, "exclude-dir", nil, "exclude directories with this name (can be repeated)")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 0, "number of parallel workers (default: number of CPUs)")
	cmd.Flags().StringVar(&maxFileSizeFlag, "max-file-size", config.DefaultMaxFileSize, "skip files larger than this, 0 disables")
	cmd.Flags().BoolVar(&noRecurseFlag, "no-recurse", false, "do not descend into subdirectories")
	cmd.Flags().BoolVar(&skipVendorFlag, "skip-vendor", false, "skip vendored and generated third-party code")
	cmd.Flags().BoolVar(&skipUniquenessFlag, "skip-uniqueness", false, "count files with identical content more than once")
	cmd.Flags().BoolVar(&byFileFlag, "by-file", false, "report results for every source file")
	cmd.Flags().BoolVar(&showSkippedFlag, "show-skipped", false, "list skipped files and the reason")
	cmd.Flags().StringVarP(&reportFlag, "report", "o", "", "write the summary to this file")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", config.DefaultReportFormat, "report format: json, yaml, markdown, csv or html")
	cmd.Flags().StringVar(&metricsFileFlag, "metrics-file", "", "write Prometheus textfile metrics to this file")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadSettings(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		return err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	if verboseFlag {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	settings = cfg

	return nil
}

// buildCountArgs merges settings with the flags set on the command line.
// Repeatable flags extend the configured lists; scalar flags replace them.
func buildCountArgs(cmd *cobra.Command, args []string) (domain.CountArgs, error) {
	flags := cmd.Flags()
	cfg := *settings

	if flags.Changed("parallel") {
		cfg.Count.Parallel = parallelFlag
	}

	if flags.Changed("max-file-size") {
		cfg.Count.MaxFileSize = maxFileSizeFlag
	}

	if flags.Changed("format") {
		cfg.Output.ReportFormat = formatFlag
	}

	cfg.Count.NoRecurse = cfg.Count.NoRecurse || noRecurseFlag
	cfg.Count.SkipVendor = cfg.Count.SkipVendor || skipVendorFlag
	cfg.Count.SkipUniqueness = cfg.Count.SkipUniqueness || skipUniquenessFlag
	cfg.Output.ByFile = cfg.Output.ByFile || byFileFlag
	cfg.Output.ShowSkipped = cfg.Output.ShowSkipped || showSkippedFlag

	if err := cfg.Validate(); err != nil {
		return domain.CountArgs{}, err
	}

	maxFileSize, err := cfg.MaxFileSizeBytes()
	if err != nil {
		return domain.CountArgs{}, err
	}

	format, err := adapter.ParseReportFormat(cfg.Output.ReportFormat)
	if err != nil {
		return domain.CountArgs{}, err
	}

	return domain.CountArgs{
		Paths:          parsePaths(args),
		Exclude:        append(append([]string{}, cfg.Count.Exclude...), excludeFlags...),
		ExcludeDirs:    append(append([]string{}, cfg.Count.ExcludeDirs...), excludeDirFlags...),
		NoRecurse:      cfg.Count.NoRecurse,
		SkipVendor:     cfg.Count.SkipVendor,
		SkipUniqueness: cfg.Count.SkipUniqueness,
		MaxFileSize:    maxFileSize,
		Threads:        cfg.Count.Parallel,
		ByFile:         cfg.Output.ByFile,
		ShowSkipped:    cfg.Output.ShowSkipped,
		Report:         m.Path(reportFlag),
		ReportFormat:   format,
		MetricsFile:    m.Path(metricsFileFlag),
	}, nil
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
