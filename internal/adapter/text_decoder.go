package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/src-d/enry/v2"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrBinary is returned when the content looks like binary data.
	ErrBinary = errors.New("binary content")
	// ErrUndecodable is returned when the content cannot be decoded as text.
	ErrUndecodable = errors.New("undecodable content")
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// TextDecoder turns raw file bytes into UTF-8 text.
type TextDecoder interface {
	Decode(raw []byte) (string, error)
}

// CharsetTextDecoder decodes UTF-8 directly and falls back to charset
// sniffing for anything else. UTF-16 is only accepted with a byte order mark.
type CharsetTextDecoder struct{}

// NewCharsetTextDecoder constructs a CharsetTextDecoder.
func NewCharsetTextDecoder() *CharsetTextDecoder {
	return &CharsetTextDecoder{}
}

// Decode returns the text with any byte order mark removed. It fails with
// ErrBinary or ErrUndecodable.
func (d *CharsetTextDecoder) Decode(raw []byte) (string, error) {
	if bytes.HasPrefix(raw, bomUTF16LE) || bytes.HasPrefix(raw, bomUTF16BE) {
		return d.sniff(raw)
	}

	if enry.IsBinary(raw) {
		return "", ErrBinary
	}

	if utf8.Valid(raw) {
		return strings.TrimPrefix(string(raw), string(bomUTF8)), nil
	}

	return d.sniff(raw)
}

func (d *CharsetTextDecoder) sniff(raw []byte) (string, error) {
	enc, name, _ := charset.DetermineEncoding(raw, "text/plain")
	if enc == nil {
		return "", ErrUndecodable
	}

	// A byte order mark wins over the sniffed encoding and is dropped.
	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUndecodable, name, err)
	}

	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: %s produced invalid utf-8", ErrUndecodable, name)
	}

	return strings.TrimPrefix(string(out), "\ufeff"), nil
}
