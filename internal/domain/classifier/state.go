package classifier

const (
	tripleDouble = `"""`
	tripleSingle = `'''`
)

// TripleDelim identifies which triple-quote opened the current block.
type TripleDelim int

// Available TripleDelim values.
const (
	TripleNone TripleDelim = iota
	TripleDouble
	TripleSingle
)

func (d TripleDelim) String() string {
	switch d {
	case TripleDouble:
		return tripleDouble
	case TripleSingle:
		return tripleSingle
	default:
		return ""
	}
}

// BlockCommentState is carried across the lines of one file by the C-like,
// XML-like, CSS-like and SQL-like families.
type BlockCommentState struct {
	InBlockComment bool
}

// TripleQuoteState is carried across the lines of one file by the
// Python-like family.
type TripleQuoteState struct {
	Open TripleDelim
}

// LongCommentState is carried across the lines of one file by the Lua-like
// family.
type LongCommentState struct {
	InLongComment bool
}
