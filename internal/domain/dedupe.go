package domain

import (
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	m "github.com/mouse-blink/loccy/internal/model"
)

// dedupeCapacity bounds how many content digests are remembered. Copies
// further apart than this in path order are not detected.
const dedupeCapacity = 1 << 16

// dedupe sorts results by path and turns every tallied file whose content
// was already seen into a duplicate skip, so the first path in order wins.
// Empty files are never treated as duplicates.
func dedupe(results []FileResult, capacity int) error {
	seen, err := lru.New[string, m.Path](capacity)
	if err != nil {
		return fmt.Errorf("create digest cache: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	for i := range results {
		res := &results[i]
		if res.Tally == nil || res.Hash == "" || res.Tally.Lines == 0 {
			continue
		}

		if first, ok := seen.Get(res.Hash); ok {
			res.Skip = &m.Skip{Path: res.Path, Reason: m.SkipDuplicate, Detail: "same content as " + string(first)}
			res.Tally = nil

			continue
		}

		seen.Add(res.Hash, res.Path)
	}

	return nil
}
