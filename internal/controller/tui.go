package controller

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/loccy/internal/model"
	"golang.org/x/term"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	started bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(options ...StartOption) error {
	cfg := StartConfig{mode: ModeCount}
	for _, opt := range options {
		opt(&cfg)
	}

	return t.startWithModel(newResultsModel(cfg.mode))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	t.done = make(chan struct{})
	t.started = true

	program := t.program
	done := t.done

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		}
	}()

	return nil
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.Start()
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// Close stops the program and waits for it to restore the terminal.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	done := t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// DisplayConcurrencyInfo shows the worker count and the number of candidates.
func (t *TUI) DisplayConcurrencyInfo(threads int, files int) {
	t.ensureStarted()
	t.send(concurrencyMsg{threads: threads, files: files})
}

// DisplayProgress reports one more processed file.
func (t *TUI) DisplayProgress(done int, total int, path m.Path) {
	t.send(progressMsg{done: done, total: total, path: string(path)})
}

// DisplaySummary switches the program to the results browser.
func (t *TUI) DisplaySummary(summary m.Summary, options ...DisplayOption) error {
	t.ensureStarted()
	t.send(summaryMsg{summary: summary, config: newDisplayConfig(options)})

	return nil
}

// DisplayLanguages prints the language table without starting the program;
// the list is static and short enough to scroll in the terminal.
func (t *TUI) DisplayLanguages(languages []m.Language) error {
	width := 100

	if f, ok := t.output.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	_, err := fmt.Fprint(t.output, renderLanguageList(languages, width))

	return err
}

func renderLanguageList(languages []m.Language, width int) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 1, 2)
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Width(18)
	familyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(12)
	patternStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Loccy Languages (%d)", len(languages))))
	b.WriteString("\n")

	patternWidth := width - 2 - 18 - 12 - 2

	for _, lang := range languages {
		patterns := strings.Join(append(append([]string{}, lang.Filenames...), lang.Extensions...), " ")
		b.WriteString("  ")
		b.WriteString(nameStyle.Render(truncateToWidth(lang.Name, 17)))
		b.WriteString(familyStyle.Render(string(lang.Family)))
		b.WriteString("  ")
		b.WriteString(patternStyle.Render(truncateToWidth(patterns, patternWidth)))
		b.WriteString("\n")
	}

	return b.String()
}
