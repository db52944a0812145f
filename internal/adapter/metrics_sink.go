package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	m "github.com/mouse-blink/loccy/internal/model"
)

const metricsNamespace = "loccy"

// MetricsSink exports a summary as metrics.
type MetricsSink interface {
	WriteSummary(path m.Path, summary m.Summary) error
}

// PrometheusTextfileSink writes summaries in the Prometheus text exposition
// format, suitable for the node_exporter textfile collector.
type PrometheusTextfileSink struct{}

// NewPrometheusTextfileSink constructs a PrometheusTextfileSink.
func NewPrometheusTextfileSink() *PrometheusTextfileSink {
	return &PrometheusTextfileSink{}
}

// WriteSummary renders the summary into a fresh registry and writes it
// atomically to path.
func (s *PrometheusTextfileSink) WriteSummary(path m.Path, summary m.Summary) error {
	registry := prometheus.NewRegistry()

	lines := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "lines",
		Help:      "Counted lines per language and kind.",
	}, []string{"language", "kind"})

	files := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "files",
		Help:      "Counted files per language.",
	}, []string{"language"})

	skipped := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "skipped_files",
		Help:      "Files dropped before classification, by reason.",
	}, []string{"reason"})

	ignored := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "ignored_files",
		Help:      "Candidate files that were not counted.",
	})

	registry.MustRegister(lines, files, skipped, ignored)

	rows := append([]m.LanguageTotals{}, summary.Languages...)
	rows = append(rows, summary.Total)

	for _, row := range rows {
		lines.WithLabelValues(row.Language, "blank").Set(float64(row.Blank))
		lines.WithLabelValues(row.Language, "comment").Set(float64(row.Comment))
		lines.WithLabelValues(row.Language, "code").Set(float64(row.Code))
		files.WithLabelValues(row.Language).Set(float64(row.Files))
	}

	for _, skip := range summary.Skipped {
		skipped.WithLabelValues(string(skip.Reason)).Inc()
	}

	ignored.Set(float64(summary.IgnoredFiles))

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create metrics directory: %w", err)
		}
	}

	if err := prometheus.WriteToTextfile(string(path), registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}

	return nil
}
