package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/loccy/internal/model"
)

type quitModel struct{}

func (m quitModel) Init() tea.Cmd { return tea.Quit }
func (m quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
func (m quitModel) View() string { return "" }

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	// a second start is a no-op
	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("second startWithModel error = %v", err)
	}

	tui.send(progressMsg{done: 1, total: 2})

	waitDone := make(chan struct{})
	go func() {
		tui.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() timed out")
	}

	closeDone := make(chan struct{})
	go func() {
		tui.Close()
		close(closeDone)
	}()

	select {
	case <-closeDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() timed out")
	}
}

func TestTUI_Send_And_EnsureStarted_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	// send before start should be no-op
	tui.send(progressMsg{done: 1, total: 1})

	// ensureStarted should not re-start when already started
	tui.started = true
	tui.ensureStarted()

	if tui.program != nil {
		t.Fatalf("ensureStarted started a program although started was set")
	}
}

func TestTUI_StartCountModeAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.Start(WithCountMode()); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	tui.DisplayConcurrencyInfo(2, 3)
	tui.DisplayProgress(1, 3, "a.go")

	if err := tui.DisplaySummary(testSummary(), WithByFile(true)); err != nil {
		t.Fatalf("DisplaySummary error = %v", err)
	}

	tui.Close()
}

func TestTUI_MultipleClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.Close()
	tui.Close() // Close again should be safe

	tui2 := NewTUI(&buf)
	tui2.Wait() // Wait without start should be no-op

	tui3 := NewTUI(&buf)
	if err := tui3.Start(WithViewMode()); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	tui3.Close()
	tui3.Close()
}

func TestTUI_DisplayLanguages(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	languages := []m.Language{
		{Name: "Lua", Family: m.FamilyLua, Extensions: []string{".lua"}},
		{Name: "Dockerfile", Family: m.FamilyHash, Extensions: []string{".dockerfile"}, Filenames: []string{"Dockerfile"}},
	}

	if err := tui.DisplayLanguages(languages); err != nil {
		t.Fatalf("DisplayLanguages error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Loccy Languages (2)", "Lua", "lua-like", "Dockerfile .dockerfile"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\n%s", want, output)
		}
	}

	if tui.program != nil {
		t.Fatalf("DisplayLanguages should not start a program")
	}
}
