package controller

import (
	m "github.com/mouse-blink/loccy/internal/model"
)

// Message types.
type concurrencyMsg struct {
	threads int
	files   int
}

type progressMsg struct {
	done  int
	total int
	path  string
}

type summaryMsg struct {
	summary m.Summary
	config  DisplayConfig
}

// List item types.
type languageItem struct {
	totals m.LanguageTotals
}

func (l languageItem) FilterValue() string {
	return l.totals.Language
}

type fileItem struct {
	tally m.FileTally
}

func (f fileItem) FilterValue() string {
	return string(f.tally.Path)
}
