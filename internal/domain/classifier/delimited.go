package classifier

import "strings"

// delimiters parameterizes the shared delimiter-pair engine.
type delimiters struct {
	lineComment string
	blockOpen   string
	blockClose  string
	quotes      bool
}

var (
	cLike   = delimiters{lineComment: "//", blockOpen: "/*", blockClose: "*/", quotes: true}
	sqlLike = delimiters{lineComment: "--", blockOpen: "/*", blockClose: "*/", quotes: true}
	xmlLike = delimiters{blockOpen: "<!--", blockClose: "-->"}
	cssLike = delimiters{blockOpen: "/*", blockClose: "*/"}
)

// ClassifyCLike classifies a line with `//` line comments, `/* */` block
// comments and quoted string literals.
func ClassifyCLike(line string, st *BlockCommentState) (hasCode, hasComment bool) {
	return classifyDelimited(line, st, cLike)
}

// ClassifySQLLike classifies a line with `--` line comments, `/* */` block
// comments and quoted string literals.
func ClassifySQLLike(line string, st *BlockCommentState) (hasCode, hasComment bool) {
	return classifyDelimited(line, st, sqlLike)
}

// ClassifyXMLLike classifies a line with `<!-- -->` block comments. Quotes
// are not tracked.
func ClassifyXMLLike(line string, st *BlockCommentState) (hasCode, hasComment bool) {
	return classifyDelimited(line, st, xmlLike)
}

// ClassifyCSSLike classifies a line with `/* */` block comments only. Quotes
// are not tracked.
func ClassifyCSSLike(line string, st *BlockCommentState) (hasCode, hasComment bool) {
	return classifyDelimited(line, st, cssLike)
}

// classifyDelimited makes a single left-to-right pass over line. A block
// comment opened and closed on the same line resumes normal scanning, so any
// number of inline comments is handled without recursion.
func classifyDelimited(line string, st *BlockCommentState, d delimiters) (hasCode, hasComment bool) {
	if isBlank(line) {
		return false, false
	}

	var q quoteRun

	for i := 0; i < len(line); {
		if st.InBlockComment {
			hasComment = true

			end := strings.Index(line[i:], d.blockClose)
			if end < 0 {
				return hasCode, true
			}

			st.InBlockComment = false
			i += end + len(d.blockClose)

			continue
		}

		if d.quotes {
			if next, ok := q.advance(line, i); ok {
				hasCode = true
				i = next

				continue
			}
		}

		if d.blockOpen != "" && strings.HasPrefix(line[i:], d.blockOpen) {
			st.InBlockComment = true
			hasComment = true
			i += len(d.blockOpen)

			continue
		}

		if d.lineComment != "" && strings.HasPrefix(line[i:], d.lineComment) {
			return hasCode, true
		}

		if !isSpace(line[i]) {
			hasCode = true
		}

		i++
	}

	return hasCode, hasComment
}
