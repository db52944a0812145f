package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/loccy/internal/model"
)

// ReportFormat names an on-disk report encoding.
type ReportFormat string

const (
	// FormatJSON is an indented JSON document.
	FormatJSON ReportFormat = "json"
	// FormatYAML is a YAML document.
	FormatYAML ReportFormat = "yaml"
	// FormatMarkdown is a markdown table.
	FormatMarkdown ReportFormat = "markdown"
	// FormatCSV is comma separated values.
	FormatCSV ReportFormat = "csv"
	// FormatHTML is an HTML table.
	FormatHTML ReportFormat = "html"
)

// ErrUnsupportedFormat is returned for unknown formats and for formats that
// cannot be loaded back.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// ReportFormats lists every format SaveReport accepts.
func ReportFormats() []ReportFormat {
	return []ReportFormat{FormatJSON, FormatYAML, FormatMarkdown, FormatCSV, FormatHTML}
}

// ParseReportFormat maps a user supplied name (or common alias) to a format.
// The empty string selects JSON.
func ParseReportFormat(name string) (ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "csv":
		return FormatCSV, nil
	case "html", "htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// ReportStore persists and retrieves counting summaries.
type ReportStore interface {
	SaveReport(path m.Path, format ReportFormat, summary m.Summary) error
	LoadReport(path m.Path) (m.Summary, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) SaveReport(path m.Path, format ReportFormat, summary m.Summary) error {
	data, err := encodeReport(format, summary)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

func (rs *reportStore) LoadReport(path m.Path) (m.Summary, error) {
	// #nosec G304 - report path is supplied by the user on purpose
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Summary{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var summary m.Summary

	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &summary)
	case ".json", "":
		err = json.Unmarshal(data, &summary)
	default:
		return m.Summary{}, fmt.Errorf("%w: cannot load %s", ErrUnsupportedFormat, path)
	}

	if err != nil {
		return m.Summary{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return summary, nil
}

func encodeReport(format ReportFormat, summary m.Summary) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(summary)
	case FormatMarkdown:
		return []byte(renderTables(summary, func(w table.Writer) string { return w.RenderMarkdown() })), nil
	case FormatCSV:
		return []byte(renderTables(summary, func(w table.Writer) string { return w.RenderCSV() })), nil
	case FormatHTML:
		return []byte(renderTables(summary, func(w table.Writer) string { return w.RenderHTML() })), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func renderTables(summary m.Summary, render func(table.Writer) string) string {
	parts := []string{render(languageTable(summary))}

	if len(summary.Files) > 0 {
		parts = append(parts, render(fileTable(summary)))
	}

	return strings.Join(parts, "\n\n") + "\n"
}

func languageTable(summary m.Summary) table.Writer {
	tbl := table.NewWriter()
	tbl.AppendHeader(table.Row{"Language", "Files", "Blank", "Comment", "Code"})

	for _, lang := range summary.Languages {
		tbl.AppendRow(table.Row{lang.Language, lang.Files, lang.Blank, lang.Comment, lang.Code})
	}

	total := summary.Total
	tbl.AppendFooter(table.Row{m.SumLanguage, total.Files, total.Blank, total.Comment, total.Code})

	return tbl
}

func fileTable(summary m.Summary) table.Writer {
	tbl := table.NewWriter()
	tbl.AppendHeader(table.Row{"File", "Language", "Blank", "Comment", "Code"})

	for _, file := range summary.Files {
		tbl.AppendRow(table.Row{string(file.Path), file.Language, file.Blank, file.Comment, file.Code})
	}

	return tbl
}
