// Package classifier decides, line by line, whether a source line holds code,
// comment, both or neither. Each language family has its own scanner and its
// own carried state; a Classifier bundles one scanner with a fresh state and
// must be used for the lines of a single file, in order.
package classifier

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/loccy/internal/model"
)

// ErrUnknownFamily is returned by New for a family without a scanner.
var ErrUnknownFamily = errors.New("unknown comment family")

// Classifier classifies consecutive lines of one file.
type Classifier interface {
	// Classify returns the verdict for the next physical line (no trailing
	// newline) and advances the carried state.
	Classify(line string) (hasCode, hasComment bool)
	// Open reports whether a multi-line construct is still open, which at end
	// of file means it was never terminated.
	Open() bool
}

// New returns a Classifier for family with a fresh state.
func New(family m.Family) (Classifier, error) {
	switch family {
	case m.FamilyCLike:
		return &blockClassifier{scan: ClassifyCLike}, nil
	case m.FamilySQL:
		return &blockClassifier{scan: ClassifySQLLike}, nil
	case m.FamilyXML:
		return &blockClassifier{scan: ClassifyXMLLike}, nil
	case m.FamilyCSS:
		return &blockClassifier{scan: ClassifyCSSLike}, nil
	case m.FamilyPython:
		return &pythonClassifier{}, nil
	case m.FamilyLua:
		return &luaClassifier{}, nil
	case m.FamilyHash:
		return lineClassifier(ClassifyHashLike), nil
	case m.FamilyBatch:
		return lineClassifier(ClassifyBatchLike), nil
	case m.FamilyINI:
		return lineClassifier(ClassifyINILike), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
}

type blockClassifier struct {
	state BlockCommentState
	scan  func(string, *BlockCommentState) (bool, bool)
}

func (c *blockClassifier) Classify(line string) (bool, bool) {
	return c.scan(line, &c.state)
}

func (c *blockClassifier) Open() bool {
	return c.state.InBlockComment
}

type pythonClassifier struct {
	state TripleQuoteState
}

func (c *pythonClassifier) Classify(line string) (bool, bool) {
	return ClassifyPythonLike(line, &c.state)
}

func (c *pythonClassifier) Open() bool {
	return c.state.Open != TripleNone
}

type luaClassifier struct {
	state LongCommentState
}

func (c *luaClassifier) Classify(line string) (bool, bool) {
	return ClassifyLuaLike(line, &c.state)
}

func (c *luaClassifier) Open() bool {
	return c.state.InLongComment
}

// lineClassifier adapts a stateless line-only scanner.
type lineClassifier func(string) (bool, bool)

func (f lineClassifier) Classify(line string) (bool, bool) {
	return f(line)
}

func (f lineClassifier) Open() bool {
	return false
}
