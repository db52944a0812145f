package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

const (
	countColumns = 4
	countWidth   = 8
	// rowPrefixWidth is the space taken by the count columns and the gap
	// before the name column.
	rowPrefixWidth = countColumns*(countWidth+1) + 1
)

// resultsDelegate renders language and file rows.
type resultsDelegate struct {
	offset int
}

func (d resultsDelegate) Height() int  { return 1 }
func (d resultsDelegate) Spacing() int { return 0 }
func (d resultsDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultsDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	var (
		name   string
		counts [countColumns]int
	)

	switch it := item.(type) {
	case languageItem:
		name = it.totals.Language
		counts = [countColumns]int{it.totals.Files, it.totals.Blank, it.totals.Comment, it.totals.Code}
	case fileItem:
		name = string(it.tally.Path)
		counts = [countColumns]int{it.tally.Lines, it.tally.Blank, it.tally.Comment, it.tally.Code}
	default:
		return
	}

	isSelected := index == m.Index()
	width := m.Width() - rowPrefixWidth

	var nameStyle, countStyle lipgloss.Style

	var displayName string

	if isSelected {
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(countWidth).
			Align(lipgloss.Right)

		displayName = animateScroll(name, width, d.offset)
	} else {
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Width(countWidth).
			Align(lipgloss.Right)

		displayName = truncateToWidth(name, width)
	}

	line := ""
	for _, n := range counts {
		line += countStyle.Render(fmt.Sprintf("%d", n)) + " "
	}

	_, _ = fmt.Fprint(w, line+" "+nameStyle.Render(displayName))
}

// animateScroll marquees text wider than width, after a short pause.
func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const (
		gap   = "   "
		pause = 5
	)

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	window := make([]rune, 0, width)
	for i := range width {
		window = append(window, runes[(start+i)%n])
	}

	return string(window)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// resultsModel shows counting progress, then lets the user browse the
// per-language and per-file tallies.
type resultsModel struct {
	mode         StartMode
	width        int
	height       int
	threads      int
	done         int
	total        int
	current      string
	progressBar  progress.Model
	resultsList  list.Model
	delegate     resultsDelegate
	summary      summaryMsg
	rendered     bool
	showFiles    bool
	animOffset   int
	lastSelected int
}

func newResultsModel(mode StartMode) resultsModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := resultsDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter…"

	return resultsModel{
		mode:         mode,
		progressBar:  prog,
		resultsList:  resultsList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m resultsModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m resultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resultsList.SetWidth(m.width)

	case tickMsg:
		if m.resultsList.FilterState() == list.Filtering {
			return m, nil
		}

		if m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.resultsList.SetDelegate(m.delegate)
		}

		return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case concurrencyMsg:
		m.threads = msg.threads
		m.total = msg.files

	case progressMsg:
		m.done = msg.done
		m.total = msg.total
		m.current = msg.path

	case summaryMsg:
		m = m.handleSummaryMsg(msg)
	}

	return m, cmd
}

func (m resultsModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.resultsList.FilterState() != list.Filtering {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.rendered && len(m.summary.summary.Files) > 0 {
				m.showFiles = !m.showFiles
				m.resultsList.ResetFilter()
				m.resultsList.SetItems(m.items())
				m.resultsList.Select(0)
				m = m.resetAnimation()
			}

			return m, nil
		}
	} else if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd

	m.resultsList, cmd = m.resultsList.Update(msg)

	if m.resultsList.Index() != m.lastSelected {
		m = m.resetAnimation()
	}

	return m, cmd
}

func (m resultsModel) resetAnimation() resultsModel {
	m.lastSelected = m.resultsList.Index()
	m.animOffset = 0
	m.delegate.offset = 0
	m.resultsList.SetDelegate(m.delegate)

	return m
}

func (m resultsModel) handleSummaryMsg(msg summaryMsg) resultsModel {
	m.summary = msg
	m.showFiles = msg.config.byFile && len(msg.summary.Files) > 0
	m.resultsList.SetItems(m.items())
	m.rendered = true

	if m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m resultsModel) items() []list.Item {
	summary := m.summary.summary

	if m.showFiles {
		items := make([]list.Item, 0, len(summary.Files))
		for _, tally := range summary.Files {
			items = append(items, fileItem{tally: tally})
		}

		return items
	}

	items := make([]list.Item, 0, len(summary.Languages))
	for _, totals := range summary.Languages {
		items = append(items, languageItem{totals: totals})
	}

	return items
}

func (m resultsModel) View() string {
	if !m.rendered {
		return m.viewProgress()
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	summary := m.summary.summary
	total := summary.Total

	line := fmt.Sprintf(
		"Files: %s   Blank: %s   Comment: %s   Code: %s   Ignored: %s",
		accentStyle.Render(fmt.Sprintf("%d", total.Files)),
		accentStyle.Render(fmt.Sprintf("%d", total.Blank)),
		accentStyle.Render(fmt.Sprintf("%d", total.Comment)),
		accentStyle.Render(fmt.Sprintf("%d", total.Code)),
		accentStyle.Render(fmt.Sprintf("%d", summary.IgnoredFiles)),
	)

	if elapsed := m.summary.config.elapsed; elapsed > 0 {
		line += fmt.Sprintf("   T=%s", accentStyle.Render(fmt.Sprintf("%.2fs", elapsed.Seconds())))
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	help := "↑/k up • ↓/j down • / filter • q quit"
	if len(summary.Files) > 0 {
		help = "↑/k up • ↓/j down • tab languages/files • / filter • q quit"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title()),
		summaryStyle.Render(line),
		m.renderTable(),
		footerStyle.Render(help),
	)
}

func (m resultsModel) title() string {
	if m.mode == ModeView {
		return "Loccy Saved Report"
	}

	return "Loccy Line Count"
}

func (m resultsModel) viewProgress() string {
	if m.mode == ModeView {
		return "Loading report…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	percent := 0.0
	if m.total > 0 {
		percent = float64(m.done) / float64(m.total)
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Progress: %s / %s  •  Workers: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.done)),
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.threads)),
	))

	currentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14")).
		Padding(1, 2)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title()),
		summary,
		lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(percent)),
		currentStyle.Render(truncateToWidth(m.current, m.width-4)),
	)
}

func (m resultsModel) renderTable() string {
	// Title, summary, footer, border and header take nine rows.
	listHeight := m.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	// Margin, border and padding take six columns.
	listWidth := m.width - 6

	m.resultsList.SetHeight(listHeight)
	m.resultsList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	first, name := "Files", "Language"
	if m.showFiles {
		first, name = "Lines", "File"
	}

	headers := headerStyle.Render(fmt.Sprintf("%*s %*s %*s %*s  %s",
		countWidth, first, countWidth, "Blank", countWidth, "Comment", countWidth, "Code", name))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.resultsList.View(),
		),
	)
}
