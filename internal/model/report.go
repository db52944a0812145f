package model

// SumLanguage is the label of the grand-total row.
const SumLanguage = "SUM"

// FileTally holds the line counts of one classified file. Lines carrying both
// code and comment are counted as code and additionally tallied in Mixed, so
// Blank+Comment+Code always equals Lines.
type FileTally struct {
	Path     Path   `json:"path" yaml:"path"`
	Language string `json:"language" yaml:"language"`
	Lines    int    `json:"lines" yaml:"lines"`
	Blank    int    `json:"blank" yaml:"blank"`
	Comment  int    `json:"comment" yaml:"comment"`
	Code     int    `json:"code" yaml:"code"`
	Mixed    int    `json:"mixed" yaml:"mixed"`
}

// LanguageTotals accumulates tallies for one language (or the SUM row).
type LanguageTotals struct {
	Language string `json:"language" yaml:"language"`
	Files    int    `json:"files" yaml:"files"`
	Blank    int    `json:"blank" yaml:"blank"`
	Comment  int    `json:"comment" yaml:"comment"`
	Code     int    `json:"code" yaml:"code"`
	Mixed    int    `json:"mixed" yaml:"mixed"`
}

// Add folds a file tally into the totals.
func (t *LanguageTotals) Add(f FileTally) {
	t.Files++
	t.Blank += f.Blank
	t.Comment += f.Comment
	t.Code += f.Code
	t.Mixed += f.Mixed
}

// Merge folds other totals into t.
func (t *LanguageTotals) Merge(other LanguageTotals) {
	t.Files += other.Files
	t.Blank += other.Blank
	t.Comment += other.Comment
	t.Code += other.Code
	t.Mixed += other.Mixed
}

// Lines returns the number of physical lines covered by the totals.
func (t LanguageTotals) Lines() int {
	return t.Blank + t.Comment + t.Code
}

// SkipReason explains why a candidate file never reached classification.
type SkipReason string

const (
	// SkipTooLarge marks files above the configured size limit.
	SkipTooLarge SkipReason = "too-large"
	// SkipUnreadable marks files that could not be read.
	SkipUnreadable SkipReason = "unreadable"
	// SkipBinary marks files that look binary.
	SkipBinary SkipReason = "binary"
	// SkipUndecodable marks files whose text encoding could not be decoded.
	SkipUndecodable SkipReason = "undecodable"
	// SkipDuplicate marks files whose content was already counted.
	SkipDuplicate SkipReason = "duplicate"
)

// Skip records a file that was dropped by the gate.
type Skip struct {
	Path   Path       `json:"path" yaml:"path"`
	Reason SkipReason `json:"reason" yaml:"reason"`
	Detail string     `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Summary is the result of one counting run.
type Summary struct {
	TextFiles    int              `json:"text_files" yaml:"text_files"`
	UniqueFiles  int              `json:"unique_files" yaml:"unique_files"`
	IgnoredFiles int              `json:"ignored_files" yaml:"ignored_files"`
	Languages    []LanguageTotals `json:"languages" yaml:"languages"`
	Total        LanguageTotals   `json:"total" yaml:"total"`
	Files        []FileTally      `json:"files,omitempty" yaml:"files,omitempty"`
	Skipped      []Skip           `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}
