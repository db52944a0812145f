package domain

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/mouse-blink/loccy/internal/adapter"
	m "github.com/mouse-blink/loccy/internal/model"
)

// builtinLanguages is the extension and filename table. Extensions are
// matched case-insensitively and include the leading dot.
var builtinLanguages = []m.Language{
	{Name: "C", Family: m.FamilyCLike, Extensions: []string{".c"}},
	{Name: "C Header", Family: m.FamilyCLike, Extensions: []string{".h"}},
	{Name: "C++", Family: m.FamilyCLike, Extensions: []string{".cpp", ".cc", ".cxx", ".c++", ".hpp", ".hh", ".hxx"}},
	{Name: "C#", Family: m.FamilyCLike, Extensions: []string{".cs"}},
	{Name: "Go", Family: m.FamilyCLike, Extensions: []string{".go"}},
	{Name: "Rust", Family: m.FamilyCLike, Extensions: []string{".rs"}},
	{Name: "Java", Family: m.FamilyCLike, Extensions: []string{".java"}},
	{Name: "Kotlin", Family: m.FamilyCLike, Extensions: []string{".kt", ".kts"}},
	{Name: "Scala", Family: m.FamilyCLike, Extensions: []string{".scala", ".sc"}},
	{Name: "Groovy", Family: m.FamilyCLike, Extensions: []string{".groovy", ".gradle"}},
	{Name: "Swift", Family: m.FamilyCLike, Extensions: []string{".swift"}},
	{Name: "Objective-C", Family: m.FamilyCLike, Extensions: []string{".m"}},
	{Name: "Objective-C++", Family: m.FamilyCLike, Extensions: []string{".mm"}},
	{Name: "Dart", Family: m.FamilyCLike, Extensions: []string{".dart"}},
	{Name: "JavaScript", Family: m.FamilyCLike, Extensions: []string{".js", ".mjs", ".cjs"}},
	{Name: "JSX", Family: m.FamilyCLike, Extensions: []string{".jsx"}},
	{Name: "TypeScript", Family: m.FamilyCLike, Extensions: []string{".ts", ".mts", ".cts"}},
	{Name: "TSX", Family: m.FamilyCLike, Extensions: []string{".tsx"}},
	{Name: "PHP", Family: m.FamilyCLike, Extensions: []string{".php"}},
	{Name: "Zig", Family: m.FamilyCLike, Extensions: []string{".zig"}},
	{Name: "Protocol Buffers", Family: m.FamilyCLike, Extensions: []string{".proto"}},
	{Name: "JSON", Family: m.FamilyCLike, Extensions: []string{".json", ".jsonc"}},
	{Name: "Python", Family: m.FamilyPython, Extensions: []string{".py", ".pyi", ".pyw"}},
	{Name: "Lua", Family: m.FamilyLua, Extensions: []string{".lua"}},
	{Name: "HTML", Family: m.FamilyXML, Extensions: []string{".html", ".htm", ".xhtml"}},
	{Name: "XML", Family: m.FamilyXML, Extensions: []string{".xml", ".xsd", ".xsl", ".svg"}},
	{Name: "Vue", Family: m.FamilyXML, Extensions: []string{".vue"}},
	{Name: "Markdown", Family: m.FamilyXML, Extensions: []string{".md", ".markdown"}},
	{Name: "CSS", Family: m.FamilyCSS, Extensions: []string{".css"}},
	{Name: "SCSS", Family: m.FamilyCSS, Extensions: []string{".scss"}},
	{Name: "Less", Family: m.FamilyCSS, Extensions: []string{".less"}},
	{Name: "SQL", Family: m.FamilySQL, Extensions: []string{".sql"}},
	{Name: "Shell", Family: m.FamilyHash, Extensions: []string{".sh", ".bash", ".zsh", ".ksh"}},
	{Name: "Fish", Family: m.FamilyHash, Extensions: []string{".fish"}},
	{Name: "PowerShell", Family: m.FamilyHash, Extensions: []string{".ps1", ".psm1"}},
	{Name: "Ruby", Family: m.FamilyHash, Extensions: []string{".rb", ".rake", ".gemspec"}, Filenames: []string{"Rakefile", "Gemfile"}},
	{Name: "Perl", Family: m.FamilyHash, Extensions: []string{".pl", ".pm"}},
	{Name: "R", Family: m.FamilyHash, Extensions: []string{".r"}},
	{Name: "Tcl", Family: m.FamilyHash, Extensions: []string{".tcl"}},
	{Name: "Nix", Family: m.FamilyHash, Extensions: []string{".nix"}},
	{Name: "YAML", Family: m.FamilyHash, Extensions: []string{".yaml", ".yml"}},
	{Name: "TOML", Family: m.FamilyHash, Extensions: []string{".toml"}},
	{Name: "Makefile", Family: m.FamilyHash, Extensions: []string{".mk", ".mak"}, Filenames: []string{"Makefile", "makefile", "GNUmakefile"}},
	{Name: "Dockerfile", Family: m.FamilyHash, Extensions: []string{".dockerfile"}, Filenames: []string{"Dockerfile", "Containerfile"}},
	{Name: "CMake", Family: m.FamilyHash, Extensions: []string{".cmake"}, Filenames: []string{"CMakeLists.txt"}},
	{Name: "Batch", Family: m.FamilyBatch, Extensions: []string{".bat", ".cmd"}},
	{Name: "INI", Family: m.FamilyINI, Extensions: []string{".ini", ".cfg", ".conf"}},
}

// detectedFamilies maps linguist names reported by content sniffing to a
// comment family, for languages the table above has no entry for.
var detectedFamilies = map[string]m.Family{
	"Awk":        m.FamilyHash,
	"Elixir":     m.FamilyHash,
	"Julia":      m.FamilyHash,
	"Raku":       m.FamilyHash,
	"Starlark":   m.FamilyHash,
	"Crystal":    m.FamilyHash,
	"Emacs Lisp": m.FamilyINI,
}

// Registry resolves file paths to languages.
type Registry struct {
	languages   []m.Language
	byExtension map[string]m.Language
	byFilename  map[string]m.Language
	byName      map[string]m.Language
	detector    adapter.LanguageDetector
}

// NewRegistry builds a registry over the built-in table. detector may be nil,
// in which case extension-less files are never sniffed.
func NewRegistry(detector adapter.LanguageDetector) *Registry {
	r := &Registry{
		byExtension: make(map[string]m.Language),
		byFilename:  make(map[string]m.Language),
		byName:      make(map[string]m.Language),
		detector:    detector,
	}

	for _, lang := range builtinLanguages {
		r.languages = append(r.languages, lang)
		r.byName[lang.Name] = lang

		for _, ext := range lang.Extensions {
			r.byExtension[strings.ToLower(ext)] = lang
		}

		for _, name := range lang.Filenames {
			r.byFilename[name] = lang
		}
	}

	sort.Slice(r.languages, func(i, j int) bool {
		return strings.ToLower(r.languages[i].Name) < strings.ToLower(r.languages[j].Name)
	})

	return r
}

// Languages returns the table sorted by name.
func (r *Registry) Languages() []m.Language {
	return append([]m.Language(nil), r.languages...)
}

// Lookup resolves a path by exact filename, then by extension.
func (r *Registry) Lookup(path m.Path) (m.Language, bool) {
	base := filepath.Base(string(path))

	if lang, ok := r.byFilename[base]; ok {
		return lang, true
	}

	ext := strings.ToLower(filepath.Ext(base))
	if ext == "" {
		return m.Language{}, false
	}

	lang, ok := r.byExtension[ext]

	return lang, ok
}

// Sniffable reports whether a path that Lookup missed is worth reading for a
// content based guess. Only extension-less names qualify, which covers
// scripts carrying a shebang.
func (r *Registry) Sniffable(path m.Path) bool {
	if r.detector == nil {
		return false
	}

	base := filepath.Base(string(path))

	return filepath.Ext(base) == "" && !strings.HasPrefix(base, ".")
}

// Detect asks the detector about a file Lookup could not resolve.
func (r *Registry) Detect(path m.Path, head []byte) (m.Language, bool) {
	if r.detector == nil {
		return m.Language{}, false
	}

	name, ok := r.detector.Detect(string(path), head)
	if !ok {
		return m.Language{}, false
	}

	if lang, ok := r.byName[name]; ok {
		return lang, true
	}

	family, ok := detectedFamilies[name]
	if !ok {
		return m.Language{}, false
	}

	return m.Language{Name: name, Family: family}, true
}
