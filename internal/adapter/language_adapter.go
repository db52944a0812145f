package adapter

import (
	"path/filepath"

	"github.com/src-d/enry/v2"
)

// LanguageDetector sniffs a language for files the built-in extension table
// does not cover, and answers the vendor question for path filtering.
type LanguageDetector interface {
	// Detect returns the linguist language name for the file. head is the
	// leading chunk of the file and may be nil.
	Detect(path string, head []byte) (string, bool)

	// IsVendor reports whether the path belongs to vendored or generated
	// third-party code.
	IsVendor(path string) bool
}

// EnryLanguageDetector is a LanguageDetector backed by go-enry.
type EnryLanguageDetector struct{}

// NewEnryLanguageDetector constructs an EnryLanguageDetector.
func NewEnryLanguageDetector() *EnryLanguageDetector {
	return &EnryLanguageDetector{}
}

// Detect tries well-known filenames, then shebang and modeline hints. The
// bayesian classifier is never consulted.
func (d *EnryLanguageDetector) Detect(path string, head []byte) (string, bool) {
	name := filepath.Base(path)

	if lang, safe := enry.GetLanguageByFilename(name); lang != "" && safe {
		return lang, true
	}

	if len(head) == 0 {
		return "", false
	}

	if lang, safe := enry.GetLanguageByShebang(head); lang != "" && safe {
		return lang, true
	}

	if lang, safe := enry.GetLanguageByModeline(head); lang != "" && safe {
		return lang, true
	}

	return "", false
}

// IsVendor reports whether enry considers the path vendored.
func (d *EnryLanguageDetector) IsVendor(path string) bool {
	return enry.IsVendor(filepath.ToSlash(path))
}
