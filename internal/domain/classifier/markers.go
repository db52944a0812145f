package classifier

import "strings"

// lineMarker is a full-line comment leader. Word markers must be followed by
// whitespace or end of line and match case-insensitively.
type lineMarker struct {
	text string
	word bool
}

var (
	batchMarkers = []lineMarker{{text: "::"}, {text: "rem", word: true}, {text: "@rem", word: true}}
	iniMarkers   = []lineMarker{{text: ";"}, {text: "#"}}
)

// ClassifyBatchLike classifies a batch-file line: `REM` and `::` comment the
// whole line, everything else is code. There is no block form and no string
// awareness, so `echo REM x` is code.
func ClassifyBatchLike(line string) (hasCode, hasComment bool) {
	return classifyMarkers(line, batchMarkers)
}

// ClassifyINILike classifies an INI-style line: a leading `;` or `#`
// comments the whole line.
func ClassifyINILike(line string) (hasCode, hasComment bool) {
	return classifyMarkers(line, iniMarkers)
}

func classifyMarkers(line string, markers []lineMarker) (hasCode, hasComment bool) {
	trimmed := strings.TrimLeft(line, " \t\f\v\r\n")
	if isBlank(trimmed) {
		return false, false
	}

	for _, mk := range markers {
		if mk.matches(trimmed) {
			return false, true
		}
	}

	return true, false
}

func (mk lineMarker) matches(s string) bool {
	if !mk.word {
		return strings.HasPrefix(s, mk.text)
	}

	if len(s) < len(mk.text) || !strings.EqualFold(s[:len(mk.text)], mk.text) {
		return false
	}

	return len(s) == len(mk.text) || isSpace(s[len(mk.text)])
}
