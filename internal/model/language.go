package model

// Family groups languages that share one comment and string syntax.
type Family string

const (
	// FamilyCLike covers `//` line comments and `/* */` blocks with quoted strings.
	FamilyCLike Family = "c-like"
	// FamilyPython covers `#` line comments and triple-quoted blocks.
	FamilyPython Family = "python-like"
	// FamilyLua covers `--` line comments and `--[[ ]]` long comments.
	FamilyLua Family = "lua-like"
	// FamilyXML covers `<!-- -->` blocks; strings are not tracked.
	FamilyXML Family = "xml-like"
	// FamilyCSS covers `/* */` blocks only; strings are not tracked.
	FamilyCSS Family = "css-like"
	// FamilySQL covers `--` line comments and `/* */` blocks with quoted strings.
	FamilySQL Family = "sql-like"
	// FamilyHash covers `#` line comments with quoted strings (shell, YAML, TOML...).
	FamilyHash Family = "hash-like"
	// FamilyBatch covers full-line `REM` and `::` comments.
	FamilyBatch Family = "batch-like"
	// FamilyINI covers full-line `;` and `#` comments.
	FamilyINI Family = "ini-like"
)

// Families lists every supported family in a stable order.
func Families() []Family {
	return []Family{
		FamilyCLike,
		FamilyPython,
		FamilyLua,
		FamilyXML,
		FamilyCSS,
		FamilySQL,
		FamilyHash,
		FamilyBatch,
		FamilyINI,
	}
}

// Language describes a registered language and how files are matched to it.
type Language struct {
	Name       string
	Family     Family
	Extensions []string
	Filenames  []string
}
