// Package adapter contains the infrastructure adapters behind the loccy CLI:
// filesystem access, text decoding, language sniffing, report persistence and
// metrics export.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/loccy/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get expands the given roots into a deduplicated list of absolute file
	// paths, honoring the filter.
	Get(roots []m.Path, filter PathFilter) ([]m.Path, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// WorkingDir returns the current working directory.
	WorkingDir() (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// PathFilter controls which entries Get collects.
type PathFilter struct {
	// Recursive descends into sub-directories. A root ending in "/..." is
	// always walked recursively.
	Recursive bool
	// SkipDir prunes a directory (never called for the root itself). It
	// receives the slash-separated path relative to the walked root.
	SkipDir func(rel string) bool
	// SkipFile drops a regular file, given its root-relative path.
	SkipFile func(rel string) bool
}

func (f PathFilter) skipDir(root, path string) bool {
	return f.SkipDir != nil && f.SkipDir(relSlash(root, path))
}

func (f PathFilter) skipFile(root, path string) bool {
	return f.SkipFile != nil && f.SkipFile(relSlash(root, path))
}

func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}

	return filepath.ToSlash(rel)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects regular files for the provided roots. Paths given explicitly
// as files are always kept, even when SkipFile would drop them.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, filter PathFilter) ([]m.Path, error) {
	if len(roots) == 0 {
		return []m.Path{}, nil
	}

	seen := make(map[string]struct{})

	var files []m.Path

	add := func(path string) {
		if _, exists := seen[path]; exists {
			return
		}

		seen[path] = struct{}{}
		files = append(files, m.Path(path))
	}

	for _, root := range roots {
		rootPath, forced, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			add(rootPath)

			continue
		}

		recursive := filter.Recursive || forced

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				// Unreadable sub-trees are pruned rather than aborting the scan.
				if info != nil && info.IsDir() {
					return filepath.SkipDir
				}

				return nil
			}

			if info.IsDir() {
				if path != rootPath && filter.skipDir(rootPath, path) {
					return filepath.SkipDir
				}

				return nil
			}

			if !info.Mode().IsRegular() || filter.skipFile(rootPath, path) {
				return nil
			}

			add(path)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading user-selected source files is the point of the tool
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// WorkingDir returns the process working directory.
func (a *LocalSourceFSAdapter) WorkingDir() (m.Path, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	return m.Path(wd), nil
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
