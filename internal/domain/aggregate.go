package domain

import (
	"sort"

	m "github.com/mouse-blink/loccy/internal/model"
)

// Aggregate folds per-file results into a summary. The fold is order
// independent: the output only depends on the set of results.
func Aggregate(results []FileResult) m.Summary {
	summary := m.Summary{
		Total: m.LanguageTotals{Language: m.SumLanguage},
	}

	byLanguage := make(map[string]*m.LanguageTotals)

	for _, res := range results {
		switch {
		case res.Tally != nil:
			tally := *res.Tally

			totals, ok := byLanguage[tally.Language]
			if !ok {
				totals = &m.LanguageTotals{Language: tally.Language}
				byLanguage[tally.Language] = totals
			}

			totals.Add(tally)
			summary.Total.Add(tally)
			summary.Files = append(summary.Files, tally)
			summary.TextFiles++
			summary.UniqueFiles++
		case res.Skip != nil:
			summary.Skipped = append(summary.Skipped, *res.Skip)
			summary.IgnoredFiles++

			if res.Skip.Reason == m.SkipDuplicate {
				summary.TextFiles++
			}
		default:
			summary.IgnoredFiles++
		}
	}

	summary.Languages = make([]m.LanguageTotals, 0, len(byLanguage))
	for _, totals := range byLanguage {
		summary.Languages = append(summary.Languages, *totals)
	}

	sortLanguages(summary.Languages)
	sortFiles(summary.Files)
	sortSkipped(summary.Skipped)

	return summary
}

// sortLanguages orders by code lines descending, then by name.
func sortLanguages(languages []m.LanguageTotals) {
	sort.Slice(languages, func(i, j int) bool {
		if languages[i].Code != languages[j].Code {
			return languages[i].Code > languages[j].Code
		}

		return languages[i].Language < languages[j].Language
	})
}

// MergeSummaries combines summaries of disjoint runs.
func MergeSummaries(summaries ...m.Summary) m.Summary {
	merged := m.Summary{
		Total: m.LanguageTotals{Language: m.SumLanguage},
	}

	byLanguage := make(map[string]*m.LanguageTotals)

	for _, s := range summaries {
		merged.TextFiles += s.TextFiles
		merged.UniqueFiles += s.UniqueFiles
		merged.IgnoredFiles += s.IgnoredFiles
		merged.Total.Merge(s.Total)
		merged.Files = append(merged.Files, s.Files...)
		merged.Skipped = append(merged.Skipped, s.Skipped...)

		for _, lang := range s.Languages {
			totals, ok := byLanguage[lang.Language]
			if !ok {
				totals = &m.LanguageTotals{Language: lang.Language}
				byLanguage[lang.Language] = totals
			}

			totals.Merge(lang)
		}
	}

	merged.Languages = make([]m.LanguageTotals, 0, len(byLanguage))
	for _, totals := range byLanguage {
		merged.Languages = append(merged.Languages, *totals)
	}

	sortLanguages(merged.Languages)
	sortFiles(merged.Files)
	sortSkipped(merged.Skipped)

	return merged
}

// sortFiles orders tallies by path. Reports merged by view may carry the
// same path more than once, so ties fall back to the remaining fields.
func sortFiles(files []m.FileTally) {
	sort.SliceStable(files, func(i, j int) bool {
		a, b := files[i], files[j]

		switch {
		case a.Path != b.Path:
			return a.Path < b.Path
		case a.Language != b.Language:
			return a.Language < b.Language
		case a.Lines != b.Lines:
			return a.Lines < b.Lines
		case a.Code != b.Code:
			return a.Code < b.Code
		case a.Comment != b.Comment:
			return a.Comment < b.Comment
		default:
			return a.Blank < b.Blank
		}
	})
}

func sortSkipped(skipped []m.Skip) {
	sort.SliceStable(skipped, func(i, j int) bool {
		a, b := skipped[i], skipped[j]

		switch {
		case a.Path != b.Path:
			return a.Path < b.Path
		case a.Reason != b.Reason:
			return a.Reason < b.Reason
		default:
			return a.Detail < b.Detail
		}
	})
}
