package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/loccy/internal/adapter"
	"github.com/mouse-blink/loccy/internal/controller"
	m "github.com/mouse-blink/loccy/internal/model"
)

// CountArgs holds everything a counting run needs.
type CountArgs struct {
	Paths          []m.Path
	Exclude        []string
	ExcludeDirs    []string
	NoRecurse      bool
	SkipVendor     bool
	SkipUniqueness bool
	MaxFileSize    int64
	Threads        int
	ByFile         bool
	ShowSkipped    bool
	Report         m.Path
	ReportFormat   adapter.ReportFormat
	MetricsFile    m.Path
}

// ViewArgs selects saved reports to display. Several reports are summed.
type ViewArgs struct {
	Reports     []m.Path
	ByFile      bool
	ShowSkipped bool
	MetricsFile m.Path
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	Count(ctx context.Context, args CountArgs) error
	View(args ViewArgs) error
	Languages() error
}

type workflow struct {
	fsAdapter    adapter.SourceFSAdapter
	reportStore  adapter.ReportStore
	metricsSink  adapter.MetricsSink
	detector     adapter.LanguageDetector
	ui           controller.UI
	orchestrator Orchestrator
	registry     *Registry
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	metricsSink adapter.MetricsSink,
	detector adapter.LanguageDetector,
	ui controller.UI,
	orchestrator Orchestrator,
	registry *Registry,
) Workflow {
	return &workflow{
		fsAdapter:    fsAdapter,
		reportStore:  reportStore,
		metricsSink:  metricsSink,
		detector:     detector,
		ui:           ui,
		orchestrator: orchestrator,
		registry:     registry,
	}
}

// Count walks the paths, counts every recognized file and presents the summary.
func (w *workflow) Count(ctx context.Context, args CountArgs) error {
	started := time.Now()

	files, err := w.collect(args)
	if err != nil {
		return err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	if err := w.ui.Start(controller.WithCountMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	w.ui.DisplayConcurrencyInfo(threads, len(files))

	results, err := w.countFiles(ctx, files, threads, CountOptions{MaxFileSize: args.MaxFileSize})
	if err != nil {
		return err
	}

	w.relativize(results)

	if !args.SkipUniqueness {
		if err := dedupe(results, dedupeCapacity); err != nil {
			return err
		}
	}

	summary := Aggregate(results)
	elapsed := time.Since(started)

	slog.Debug("count finished",
		"candidates", len(files),
		"counted", summary.UniqueFiles,
		"ignored", summary.IgnoredFiles,
		"elapsed", elapsed)

	if err := w.export(summary, args.Report, args.ReportFormat, args.MetricsFile); err != nil {
		return err
	}

	if err := w.ui.DisplaySummary(summary,
		controller.WithByFile(args.ByFile),
		controller.WithSkipped(args.ShowSkipped),
		controller.WithElapsed(elapsed),
	); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// View loads one or more saved reports, sums them and presents the result.
func (w *workflow) View(args ViewArgs) error {
	if len(args.Reports) == 0 {
		return fmt.Errorf("no report to view")
	}

	summaries := make([]m.Summary, 0, len(args.Reports))

	for _, path := range args.Reports {
		summary, err := w.reportStore.LoadReport(path)
		if err != nil {
			return err
		}

		summaries = append(summaries, summary)
	}

	summary := summaries[0]
	if len(summaries) > 1 {
		summary = MergeSummaries(summaries...)
	}

	if err := w.export(summary, "", "", args.MetricsFile); err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	if err := w.ui.DisplaySummary(summary,
		controller.WithByFile(args.ByFile),
		controller.WithSkipped(args.ShowSkipped),
	); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// Languages lists the built-in language table.
func (w *workflow) Languages() error {
	return w.ui.DisplayLanguages(w.registry.Languages())
}

func (w *workflow) collect(args CountArgs) ([]m.Path, error) {
	var vendor adapter.LanguageDetector
	if args.SkipVendor {
		vendor = w.detector
	}

	rule, err := newIgnoreRule(mergeExcludeDirs(args.ExcludeDirs), args.Exclude, vendor)
	if err != nil {
		return nil, err
	}

	files, err := w.fsAdapter.Get(args.Paths, rule.filter(!args.NoRecurse))
	if err != nil {
		return nil, err
	}

	slog.Debug("collected candidate files", "roots", len(args.Paths), "files", len(files))

	return files, nil
}

func (w *workflow) countFiles(ctx context.Context, files []m.Path, threads int, opts CountOptions) ([]FileResult, error) {
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	var done atomic.Int64

	for i, path := range files {
		g.Go(func() error {
			res, err := w.orchestrator.CountFile(gctx, path, opts)
			if err != nil {
				return fmt.Errorf("count %s: %w", path, err)
			}

			results[i] = res
			w.ui.DisplayProgress(int(done.Add(1)), len(files), path)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// relativize rewrites result paths relative to the working directory when
// they live below it.
func (w *workflow) relativize(results []FileResult) {
	wd, err := w.fsAdapter.WorkingDir()
	if err != nil {
		slog.Debug("keeping absolute paths", "error", err)

		return
	}

	for i := range results {
		res := &results[i]

		rel, err := w.fsAdapter.RelPath(wd, res.Path)
		if err != nil || rel == ".." || strings.HasPrefix(string(rel), ".."+string(filepath.Separator)) {
			continue
		}

		res.Path = rel
		if res.Tally != nil {
			res.Tally.Path = rel
		}

		if res.Skip != nil {
			res.Skip.Path = rel
		}
	}
}

func (w *workflow) export(summary m.Summary, report m.Path, format adapter.ReportFormat, metrics m.Path) error {
	if report != "" {
		if err := w.reportStore.SaveReport(report, format, summary); err != nil {
			return err
		}

		slog.Debug("report written", "path", report, "format", format)
	}

	if metrics != "" {
		if err := w.metricsSink.WriteSummary(metrics, summary); err != nil {
			return err
		}

		slog.Debug("metrics written", "path", metrics)
	}

	return nil
}
