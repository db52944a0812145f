package classifier

import "strings"

const (
	luaLineComment = "--"
	luaLongOpen    = "--[["
	luaLongClose   = "]]"
)

// ClassifyLuaLike classifies a line with `--` line comments and `--[[ ]]`
// long comments, honoring quoted string literals outside comments.
//
// A `]]` on the line that opened the long comment only counts outside quotes;
// on later lines the first `]]` closes it. Whatever follows a close is
// classified as if it were a fresh line, so code and long comments may
// alternate on one physical line. Each round consumes a strictly shorter
// suffix.
func ClassifyLuaLike(line string, st *LongCommentState) (hasCode, hasComment bool) {
	if isBlank(line) {
		return false, false
	}

	rest := line

	if st.InLongComment {
		end := strings.Index(rest, luaLongClose)
		if end < 0 {
			return false, true
		}

		st.InLongComment = false
		hasComment = true
		rest = rest[end+len(luaLongClose):]
	}

	for {
		open := IndexUnquoted(rest, luaLongOpen)
		if open < 0 {
			c, m := scanLineComment(rest, luaLineComment, true)

			return hasCode || c, hasComment || m
		}

		c, _ := scanLineComment(rest[:open], luaLineComment, true)
		hasCode = hasCode || c
		hasComment = true

		body := rest[open+len(luaLongOpen):]

		end := IndexUnquoted(body, luaLongClose)
		if end < 0 {
			st.InLongComment = true

			return hasCode, true
		}

		rest = body[end+len(luaLongClose):]
	}
}
