package classifier

import "strings"

// quoteRun tracks whether the cursor sits inside a single- or double-quoted
// run. A run never carries across lines.
type quoteRun struct {
	single bool
	double bool
}

func (q quoteRun) open() bool {
	return q.single || q.double
}

// advance consumes line[i] when it belongs to a quoted run, or opens a run
// when line[i] is a quote. A backslash inside a run consumes the following
// byte unconditionally; the other quote kind is inert inside a run.
// It reports false, leaving i unchanged, for bytes outside any run.
func (q *quoteRun) advance(line string, i int) (int, bool) {
	b := line[i]

	if q.open() {
		switch {
		case b == '\\':
			return i + 2, true
		case q.single && b == '\'':
			q.single = false
		case q.double && b == '"':
			q.double = false
		}

		return i + 1, true
	}

	switch b {
	case '\'':
		q.single = true
		return i + 1, true
	case '"':
		q.double = true
		return i + 1, true
	}

	return i, false
}

// IndexUnquoted returns the byte offset of the first occurrence of needle in
// line that lies outside single- and double-quoted literals, or -1.
func IndexUnquoted(line, needle string) int {
	if needle == "" {
		return 0
	}

	var q quoteRun

	for i := 0; i+len(needle) <= len(line); {
		if !q.open() && strings.HasPrefix(line[i:], needle) {
			return i
		}

		if next, ok := q.advance(line, i); ok {
			i = next
			continue
		}

		i++
	}

	return -1
}

// IndexTripleQuote locates the first `"""` or `'''` that starts outside any
// quoted literal. It returns -1 and TripleNone when there is none.
func IndexTripleQuote(line string) (int, TripleDelim) {
	var q quoteRun

	for i := 0; i < len(line); {
		if !q.open() {
			if strings.HasPrefix(line[i:], tripleDouble) {
				return i, TripleDouble
			}

			if strings.HasPrefix(line[i:], tripleSingle) {
				return i, TripleSingle
			}
		}

		if next, ok := q.advance(line, i); ok {
			i = next
			continue
		}

		i++
	}

	return -1, TripleNone
}

// scanLineComment walks line left to right and stops at the first marker found
// outside quoted literals. Quoted bytes count as code when quotes is set.
func scanLineComment(line, marker string, quotes bool) (hasCode, hasComment bool) {
	var q quoteRun

	for i := 0; i < len(line); {
		if quotes {
			if next, ok := q.advance(line, i); ok {
				hasCode = true
				i = next

				continue
			}
		}

		if marker != "" && strings.HasPrefix(line[i:], marker) {
			return hasCode, true
		}

		if !isSpace(line[i]) {
			hasCode = true
		}

		i++
	}

	return hasCode, false
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}

	return false
}

func isBlank(line string) bool {
	for i := 0; i < len(line); i++ {
		if !isSpace(line[i]) {
			return false
		}
	}

	return true
}
