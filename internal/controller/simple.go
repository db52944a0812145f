package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	m "github.com/mouse-blink/loccy/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI by printing cloc style tables through the cobra
// command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; there is nothing interactive to wait for.
func (s *SimpleUI) Wait() {}

// DisplayConcurrencyInfo is silent in plain output.
func (s *SimpleUI) DisplayConcurrencyInfo(_ int, _ int) {}

// DisplayProgress is silent in plain output.
func (s *SimpleUI) DisplayProgress(_ int, _ int, _ m.Path) {}

// DisplaySummary prints the header counters followed by the language table.
func (s *SimpleUI) DisplaySummary(summary m.Summary, options ...DisplayOption) error {
	cfg := newDisplayConfig(options)
	accent := color.New(color.FgCyan, color.Bold)
	if !IsTTY(s.cmd.OutOrStdout()) {
		accent.DisableColor()
	}

	for _, counter := range []struct {
		n     int
		label string
	}{
		{summary.TextFiles, "text files."},
		{summary.UniqueFiles, "unique files."},
		{summary.IgnoredFiles, "files ignored."},
	} {
		_, _ = accent.Fprintf(s.cmd.OutOrStdout(), "%8d", counter.n)
		s.printf(" %s\n", counter.label)
	}

	if cfg.elapsed > 0 {
		seconds := cfg.elapsed.Seconds()
		s.printf("\nT=%.2f s (%.1f files/s, %.1f lines/s)\n",
			seconds,
			float64(summary.Total.Files)/seconds,
			float64(summary.Total.Lines())/seconds)
	}

	s.printf("\n%s", renderLanguageTable(summary))

	if cfg.byFile && len(summary.Files) > 0 {
		s.printf("\n%s", renderFileTable(summary.Files))
	}

	if cfg.showSkipped && len(summary.Skipped) > 0 {
		s.printf("\n%s", renderSkippedTable(summary.Skipped))
	}

	return nil
}

// DisplayLanguages prints the supported language table.
func (s *SimpleUI) DisplayLanguages(languages []m.Language) error {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Language", "Family", "Extensions", "Filenames"})

	for _, lang := range languages {
		table.Append([]string{
			lang.Name,
			string(lang.Family),
			strings.Join(lang.Extensions, " "),
			strings.Join(lang.Filenames, " "),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(languages)), "", "", ""})
	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(buf *bytes.Buffer) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

var countAlignment = []int{
	tablewriter.ALIGN_LEFT,
	tablewriter.ALIGN_RIGHT,
	tablewriter.ALIGN_RIGHT,
	tablewriter.ALIGN_RIGHT,
	tablewriter.ALIGN_RIGHT,
}

func renderLanguageTable(summary m.Summary) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Language", "Files", "Blank", "Comment", "Code"})
	table.SetColumnAlignment(countAlignment)

	for _, lang := range summary.Languages {
		table.Append([]string{lang.Language, itoa(lang.Files), itoa(lang.Blank), itoa(lang.Comment), itoa(lang.Code)})
	}

	total := summary.Total
	table.SetFooter([]string{m.SumLanguage, itoa(total.Files), itoa(total.Blank), itoa(total.Comment), itoa(total.Code)})
	table.Render()

	return tableBuffer.String()
}

func renderFileTable(files []m.FileTally) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"File", "Blank", "Comment", "Code"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, file := range files {
		table.Append([]string{string(file.Path), itoa(file.Blank), itoa(file.Comment), itoa(file.Code)})
	}

	table.Render()

	return tableBuffer.String()
}

func renderSkippedTable(skipped []m.Skip) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Skipped", "Reason", "Detail"})

	for _, skip := range skipped {
		table.Append([]string{string(skip.Path), string(skip.Reason), skip.Detail})
	}

	table.Render()

	return tableBuffer.String()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
