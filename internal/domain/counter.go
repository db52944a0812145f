package domain

import (
	"strings"

	"github.com/mouse-blink/loccy/internal/domain/classifier"
	m "github.com/mouse-blink/loccy/internal/model"
)

// SplitLines splits decoded text into physical lines. A trailing "\r" is
// dropped from each line and a final newline does not start another line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// CountLines runs cls over every line of text and returns the tally. Blank
// lines never reach the classifier. A line the classifier reports as holding
// neither code nor comment is counted as code, so Blank+Comment+Code always
// equals Lines.
func CountLines(text string, cls classifier.Classifier) m.FileTally {
	var tally m.FileTally

	for _, line := range SplitLines(text) {
		tally.Lines++

		if strings.TrimSpace(line) == "" {
			tally.Blank++

			continue
		}

		hasCode, hasComment := cls.Classify(line)

		switch {
		case hasComment && !hasCode:
			tally.Comment++
		case hasComment && hasCode:
			tally.Code++
			tally.Mixed++
		default:
			tally.Code++
		}
	}

	return tally
}
