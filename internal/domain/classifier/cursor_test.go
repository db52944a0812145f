package classifier

import "testing"

func TestIndexUnquoted(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		needle string
		want   int
	}{
		{name: "marker after string", line: `let s = "a//b"; // c`, needle: "//", want: 16},
		{name: "marker only inside string", line: `let s = "http://a//b";`, needle: "//", want: -1},
		{name: "double quote inert inside single", line: `'a"b' x`, needle: "x", want: 6},
		{name: "single quote inert inside double", line: `"it's" x`, needle: "x", want: 7},
		{name: "escaped quote stays inside string", line: `"a\"b" c`, needle: "c", want: 7},
		{name: "escape at end of line", line: `"a\`, needle: "a", want: -1},
		{name: "unterminated string hides the rest", line: `"abc -- def`, needle: "--", want: -1},
		{name: "backslash outside quotes is ordinary", line: `a\b`, needle: "b", want: 2},
		{name: "not present", line: "plain text", needle: "--", want: -1},
		{name: "empty needle", line: "abc", needle: "", want: 0},
		{name: "needle longer than line", line: "-", needle: "--", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexUnquoted(tt.line, tt.needle); got != tt.want {
				t.Errorf("IndexUnquoted(%q, %q) = %d, want %d", tt.line, tt.needle, got, tt.want)
			}
		})
	}
}

func TestIndexTripleQuote(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantIdx   int
		wantDelim TripleDelim
	}{
		{name: "double at start", line: `"""doc`, wantIdx: 0, wantDelim: TripleDouble},
		{name: "double after code", line: `x = """doc`, wantIdx: 4, wantDelim: TripleDouble},
		{name: "single after string", line: `x = "a" + '''b`, wantIdx: 10, wantDelim: TripleSingle},
		{name: "inside double string", line: `s = "'''"`, wantIdx: -1, wantDelim: TripleNone},
		{name: "empty string is not triple", line: `s = ""`, wantIdx: -1, wantDelim: TripleNone},
		{name: "none", line: "x = 1", wantIdx: -1, wantDelim: TripleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, delim := IndexTripleQuote(tt.line)
			if idx != tt.wantIdx || delim != tt.wantDelim {
				t.Errorf("IndexTripleQuote(%q) = (%d, %v), want (%d, %v)", tt.line, idx, delim, tt.wantIdx, tt.wantDelim)
			}
		})
	}
}

func TestTripleDelimString(t *testing.T) {
	if got := TripleDouble.String(); got != `"""` {
		t.Errorf("TripleDouble.String() = %q", got)
	}

	if got := TripleSingle.String(); got != `'''` {
		t.Errorf("TripleSingle.String() = %q", got)
	}

	if got := TripleNone.String(); got != "" {
		t.Errorf("TripleNone.String() = %q, want empty", got)
	}
}
