package domain

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/mouse-blink/loccy/internal/adapter"
)

// DefaultExcludeDirs are directory names pruned from every walk.
var DefaultExcludeDirs = []string{".git", ".hg", ".svn", "target", "node_modules"}

type ignoreRule struct {
	dirs     map[string]struct{}
	patterns []*regexp.Regexp
	vendor   adapter.LanguageDetector
}

func newIgnoreRule(dirs []string, patterns []string, vendor adapter.LanguageDetector) (ignoreRule, error) {
	rule := ignoreRule{
		dirs:   make(map[string]struct{}, len(dirs)),
		vendor: vendor,
	}

	for _, dir := range dirs {
		name := strings.Trim(strings.TrimSpace(dir), `/\`)
		if name == "" {
			continue
		}

		rule.dirs[name] = struct{}{}
	}

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return ignoreRule{}, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		rule.patterns = append(rule.patterns, re)
	}

	return rule, nil
}

// skipDir and skipFile receive slash-separated paths relative to the
// walked root.
func (r ignoreRule) skipDir(rel string) bool {
	if _, ok := r.dirs[path.Base(rel)]; ok {
		return true
	}

	return r.matches(rel) || r.isVendor(rel+"/")
}

func (r ignoreRule) skipFile(rel string) bool {
	return r.matches(rel) || r.isVendor(rel)
}

func (r ignoreRule) matches(rel string) bool {
	for _, re := range r.patterns {
		if re.MatchString(rel) {
			return true
		}
	}

	return false
}

func (r ignoreRule) isVendor(rel string) bool {
	return r.vendor != nil && r.vendor.IsVendor(rel)
}

func (r ignoreRule) filter(recursive bool) adapter.PathFilter {
	return adapter.PathFilter{
		Recursive: recursive,
		SkipDir:   r.skipDir,
		SkipFile:  r.skipFile,
	}
}

func mergeExcludeDirs(extra []string) []string {
	merged := make([]string, 0, len(DefaultExcludeDirs)+len(extra))
	merged = append(merged, DefaultExcludeDirs...)

	return append(merged, extra...)
}
