package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/loccy/internal/adapter"
	adaptermocks "github.com/mouse-blink/loccy/internal/adapter/mocks"
	"github.com/mouse-blink/loccy/internal/controller"
	uimocks "github.com/mouse-blink/loccy/internal/controller/mocks"
	m "github.com/mouse-blink/loccy/internal/model"
)

func newTestWorkflow(ui controller.UI, store adapter.ReportStore, sink adapter.MetricsSink) Workflow {
	fsAdapter := adapter.NewLocalSourceFSAdapter()
	detector := adapter.NewEnryLanguageDetector()
	registry := NewRegistry(detector)

	if store == nil {
		store = adapter.NewReportStore()
	}

	if sink == nil {
		sink = adapter.NewPrometheusTextfileSink()
	}

	return NewWorkflow(
		fsAdapter,
		store,
		sink,
		detector,
		ui,
		NewOrchestrator(fsAdapter, adapter.NewCharsetTextDecoder(), registry),
		registry,
	)
}

// writeProject lays out a small tree with four candidate files: two Go files
// with identical content, a Python file and a text file. Vendored and
// node_modules files are expected to be pruned.
func writeProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	goSource := "package main\n\n// entry point\nfunc main() {}\n"

	writeFile(t, filepath.Join(root, "main.go"), goSource)
	writeFile(t, filepath.Join(root, "copy.go"), goSource)
	writeFile(t, filepath.Join(root, "util.py"), "# helpers\ndef f():\n    return 1\n")
	writeFile(t, filepath.Join(root, "notes.txt"), "not code\n")
	writeFile(t, filepath.Join(root, "node_modules", "dep", "index.js"), "module.exports = 1;\n")
	writeFile(t, filepath.Join(root, "vendor", "lib", "lib.go"), "package lib\n")

	return root
}

func expectCountRun(ui *uimocks.MockUI, threads, files int, captured *m.Summary) {
	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().DisplayConcurrencyInfo(threads, files).Return()
	ui.EXPECT().DisplayProgress(mock.Anything, files, mock.Anything).Return()
	ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(summary m.Summary, options ...controller.DisplayOption) {
			*captured = summary
		}).
		Return(nil)
	ui.EXPECT().Wait().Return()
	ui.EXPECT().Close().Return()
}

func TestWorkflow_Count(t *testing.T) {
	root := writeProject(t)
	out := t.TempDir()

	ui := uimocks.NewMockUI(t)

	var summary m.Summary
	expectCountRun(ui, 2, 4, &summary)

	wf := newTestWorkflow(ui, nil, nil)

	err := wf.Count(context.Background(), CountArgs{
		Paths:        []m.Path{m.Path(root)},
		SkipVendor:   true,
		Threads:      2,
		ByFile:       true,
		Report:       m.Path(filepath.Join(out, "report.json")),
		ReportFormat: adapter.FormatJSON,
		MetricsFile:  m.Path(filepath.Join(out, "loccy.prom")),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TextFiles)
	assert.Equal(t, 2, summary.UniqueFiles)
	assert.Equal(t, 2, summary.IgnoredFiles)

	require.Len(t, summary.Languages, 2)
	assert.Equal(t, m.LanguageTotals{Language: "Go", Files: 1, Blank: 1, Comment: 1, Code: 2}, summary.Languages[0])
	assert.Equal(t, m.LanguageTotals{Language: "Python", Files: 1, Comment: 1, Code: 2}, summary.Languages[1])

	require.Len(t, summary.Skipped, 1)
	assert.Equal(t, m.SkipDuplicate, summary.Skipped[0].Reason)
	assert.Equal(t, m.Path(filepath.Join(root, "main.go")), summary.Skipped[0].Path)
	assert.Contains(t, summary.Skipped[0].Detail, "copy.go")

	saved, err := adapter.NewReportStore().LoadReport(m.Path(filepath.Join(out, "report.json")))
	require.NoError(t, err)
	assert.Equal(t, summary.Total, saved.Total)
	assert.Equal(t, summary.Languages, saved.Languages)

	metrics, err := os.ReadFile(filepath.Join(out, "loccy.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `loccy_lines{kind="code",language="Go"} 2`)
}

func TestWorkflow_Count_SkipUniquenessAndDefaultThreads(t *testing.T) {
	root := writeProject(t)

	ui := uimocks.NewMockUI(t)

	var summary m.Summary
	expectCountRun(ui, runtime.NumCPU(), 5, &summary)

	wf := newTestWorkflow(ui, nil, nil)

	err := wf.Count(context.Background(), CountArgs{
		Paths:          []m.Path{m.Path(root)},
		SkipUniqueness: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, summary.UniqueFiles)
	assert.Equal(t, 4, summary.TextFiles)
	assert.Empty(t, summary.Skipped)
	assert.Equal(t, 3, summary.Languages[0].Files)
}

func TestWorkflow_Count_RelativizesPathsBelowWorkingDir(t *testing.T) {
	root := writeProject(t)
	t.Chdir(root)

	ui := uimocks.NewMockUI(t)

	var summary m.Summary
	expectCountRun(ui, 1, 4, &summary)

	wf := newTestWorkflow(ui, nil, nil)

	err := wf.Count(context.Background(), CountArgs{
		Paths:      []m.Path{"."},
		SkipVendor: true,
		Threads:    1,
	})
	require.NoError(t, err)

	require.Len(t, summary.Files, 2)
	assert.Equal(t, m.Path("copy.go"), summary.Files[0].Path)
	assert.Equal(t, m.Path("util.py"), summary.Files[1].Path)
	assert.Equal(t, m.Skip{Path: "main.go", Reason: m.SkipDuplicate, Detail: "same content as copy.go"}, summary.Skipped[0])
}

func TestWorkflow_Count_Errors(t *testing.T) {
	t.Run("invalid exclude pattern", func(t *testing.T) {
		wf := newTestWorkflow(uimocks.NewMockUI(t), nil, nil)

		err := wf.Count(context.Background(), CountArgs{Paths: []m.Path{"."}, Exclude: []string{"["}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid exclude pattern")
	})

	t.Run("missing root", func(t *testing.T) {
		wf := newTestWorkflow(uimocks.NewMockUI(t), nil, nil)

		err := wf.Count(context.Background(), CountArgs{Paths: []m.Path{m.Path(filepath.Join(t.TempDir(), "nope"))}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "root path error")
	})

	t.Run("ui start failure", func(t *testing.T) {
		ui := uimocks.NewMockUI(t)
		ui.EXPECT().Start(mock.Anything).Return(errors.New("no terminal"))

		wf := newTestWorkflow(ui, nil, nil)

		err := wf.Count(context.Background(), CountArgs{Paths: []m.Path{m.Path(writeProject(t))}})
		require.EqualError(t, err, "no terminal")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ui := uimocks.NewMockUI(t)
		ui.EXPECT().Start(mock.Anything).Return(nil)
		ui.EXPECT().DisplayConcurrencyInfo(1, 4).Return()
		ui.EXPECT().Close().Return()

		wf := newTestWorkflow(ui, nil, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := wf.Count(ctx, CountArgs{Paths: []m.Path{m.Path(writeProject(t))}, SkipVendor: true, Threads: 1})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("report failure", func(t *testing.T) {
		ui := uimocks.NewMockUI(t)
		ui.EXPECT().Start(mock.Anything).Return(nil)
		ui.EXPECT().DisplayConcurrencyInfo(1, 4).Return()
		ui.EXPECT().DisplayProgress(mock.Anything, 4, mock.Anything).Return()
		ui.EXPECT().Close().Return()

		store := adaptermocks.NewMockReportStore(t)
		store.EXPECT().SaveReport(m.Path("out.yaml"), adapter.FormatYAML, mock.Anything).Return(errors.New("disk full"))

		wf := newTestWorkflow(ui, store, nil)

		err := wf.Count(context.Background(), CountArgs{
			Paths:        []m.Path{m.Path(writeProject(t))},
			SkipVendor:   true,
			Threads:      1,
			Report:       "out.yaml",
			ReportFormat: adapter.FormatYAML,
		})
		require.EqualError(t, err, "disk full")
	})
}

func TestWorkflow_View(t *testing.T) {
	dir := t.TempDir()
	store := adapter.NewReportStore()

	first := Aggregate([]FileResult{
		{Path: "a.go", Tally: &m.FileTally{Path: "a.go", Language: "Go", Lines: 5, Code: 5}},
	})
	second := Aggregate([]FileResult{
		{Path: "b.go", Tally: &m.FileTally{Path: "b.go", Language: "Go", Lines: 7, Blank: 1, Code: 6}},
		{Path: "c.lua", Tally: &m.FileTally{Path: "c.lua", Language: "Lua", Lines: 2, Comment: 2}},
	})

	firstPath := m.Path(filepath.Join(dir, "first.json"))
	secondPath := m.Path(filepath.Join(dir, "second.yaml"))

	require.NoError(t, store.SaveReport(firstPath, adapter.FormatJSON, first))
	require.NoError(t, store.SaveReport(secondPath, adapter.FormatYAML, second))

	t.Run("single report", func(t *testing.T) {
		ui := uimocks.NewMockUI(t)

		var shown m.Summary
		ui.EXPECT().Start(mock.Anything).Return(nil)
		ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything, mock.Anything).
			Run(func(summary m.Summary, options ...controller.DisplayOption) { shown = summary }).
			Return(nil)
		ui.EXPECT().Wait().Return()
		ui.EXPECT().Close().Return()

		require.NoError(t, newTestWorkflow(ui, nil, nil).View(ViewArgs{Reports: []m.Path{firstPath}}))
		assert.Equal(t, 5, shown.Total.Code)
	})

	t.Run("merged reports with metrics", func(t *testing.T) {
		ui := uimocks.NewMockUI(t)

		var shown m.Summary
		ui.EXPECT().Start(mock.Anything).Return(nil)
		ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything, mock.Anything).
			Run(func(summary m.Summary, options ...controller.DisplayOption) { shown = summary }).
			Return(nil)
		ui.EXPECT().Wait().Return()
		ui.EXPECT().Close().Return()

		sink := adaptermocks.NewMockMetricsSink(t)
		sink.EXPECT().WriteSummary(m.Path("view.prom"), mock.Anything).Return(nil)

		wf := newTestWorkflow(ui, nil, sink)

		err := wf.View(ViewArgs{Reports: []m.Path{firstPath, secondPath}, ByFile: true, MetricsFile: "view.prom"})
		require.NoError(t, err)

		assert.Equal(t, 3, shown.UniqueFiles)
		assert.Equal(t, 11, shown.Languages[0].Code)
		assert.Equal(t, "Go", shown.Languages[0].Language)
		assert.Equal(t, 2, shown.Total.Comment)
		assert.Len(t, shown.Files, 3)
	})

	t.Run("no reports", func(t *testing.T) {
		err := newTestWorkflow(uimocks.NewMockUI(t), nil, nil).View(ViewArgs{})
		require.Error(t, err)
	})

	t.Run("missing report", func(t *testing.T) {
		err := newTestWorkflow(uimocks.NewMockUI(t), nil, nil).View(ViewArgs{Reports: []m.Path{m.Path(filepath.Join(dir, "gone.json"))}})
		require.Error(t, err)
	})
}

func TestWorkflow_Languages(t *testing.T) {
	ui := uimocks.NewMockUI(t)
	ui.EXPECT().DisplayLanguages(NewRegistry(nil).Languages()).Return(nil)

	require.NoError(t, newTestWorkflow(ui, nil, nil).Languages())
}
