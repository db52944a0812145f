package classifier

import "strings"

// ClassifyHashLike classifies a line whose only comment form is `#` to end of
// line, honoring quoted string literals. Shell, YAML, TOML and friends share
// it unchanged.
func ClassifyHashLike(line string) (hasCode, hasComment bool) {
	return scanLineComment(line, "#", true)
}

// ClassifyPythonLike classifies a line with `#` line comments, treating
// triple-quoted strings as block comments.
//
// Inside an open triple-quote the last closing delimiter on the line ends the
// block; `#` and inner quotes are inert before it. Whatever follows a close
// goes through the `#` scan only and never reopens a block on the same line.
func ClassifyPythonLike(line string, st *TripleQuoteState) (hasCode, hasComment bool) {
	if isBlank(line) {
		return false, false
	}

	if st.Open != TripleNone {
		delim := st.Open.String()

		end := strings.LastIndex(line, delim)
		if end < 0 {
			return false, true
		}

		st.Open = TripleNone
		hasCode, _ = ClassifyHashLike(line[end+len(delim):])

		return hasCode, true
	}

	start, open := IndexTripleQuote(line)
	if start < 0 {
		return ClassifyHashLike(line)
	}

	hasCode, _ = ClassifyHashLike(line[:start])

	delim := open.String()
	body := line[start+len(delim):]

	end := strings.Index(body, delim)
	if end < 0 {
		st.Open = open

		return hasCode, true
	}

	c, _ := ClassifyHashLike(body[end+len(delim):])

	return hasCode || c, true
}
