package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/loccy/internal/model"
)

func tallied(path m.Path, hash string, lines int) FileResult {
	return FileResult{
		Path:  path,
		Hash:  hash,
		Tally: &m.FileTally{Path: path, Language: "Go", Lines: lines, Code: lines},
	}
}

func TestDedupe_FirstPathWins(t *testing.T) {
	results := []FileResult{
		tallied("z/copy.go", "aaa", 3),
		tallied("a/orig.go", "aaa", 3),
		tallied("m/other.go", "bbb", 2),
		{Path: "notes.txt"},
	}

	require.NoError(t, dedupe(results, dedupeCapacity))

	byPath := make(map[m.Path]FileResult)
	for _, res := range results {
		byPath[res.Path] = res
	}

	assert.NotNil(t, byPath["a/orig.go"].Tally)
	assert.NotNil(t, byPath["m/other.go"].Tally)
	assert.True(t, byPath["notes.txt"].Ignored())

	dup := byPath["z/copy.go"]
	assert.Nil(t, dup.Tally)
	require.NotNil(t, dup.Skip)
	assert.Equal(t, m.Skip{Path: "z/copy.go", Reason: m.SkipDuplicate, Detail: "same content as a/orig.go"}, *dup.Skip)
}

func TestDedupe_IsOrderIndependent(t *testing.T) {
	forward := []FileResult{tallied("a.go", "h", 1), tallied("b.go", "h", 1)}
	backward := []FileResult{tallied("b.go", "h", 1), tallied("a.go", "h", 1)}

	require.NoError(t, dedupe(forward, dedupeCapacity))
	require.NoError(t, dedupe(backward, dedupeCapacity))

	assert.Equal(t, Aggregate(forward), Aggregate(backward))
}

func TestDedupe_EmptyFilesAreNeverDuplicates(t *testing.T) {
	results := []FileResult{
		tallied("a/__init__.py", "empty", 0),
		tallied("b/__init__.py", "empty", 0),
	}

	require.NoError(t, dedupe(results, dedupeCapacity))

	for _, res := range results {
		assert.NotNil(t, res.Tally, res.Path)
		assert.Nil(t, res.Skip, res.Path)
	}
}

func TestDedupe_InvalidCapacity(t *testing.T) {
	err := dedupe([]FileResult{tallied("a.go", "h", 1)}, 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "digest cache")
}
