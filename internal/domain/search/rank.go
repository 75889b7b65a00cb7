package search

import (
	"sort"

	"marketplace/internal/domain/entity"
)

// Rank concatenates the per-category results in the order given, drops sold
// items and sorts by relevance, highest first. Equal scores keep their
// concatenation order. No limit is applied.
func Rank(resultsByCategory ...[]entity.ScoredResult) []entity.ScoredResult {
	total := 0
	for _, results := range resultsByCategory {
		total += len(results)
	}

	ranked := make([]entity.ScoredResult, 0, total)
	for _, results := range resultsByCategory {
		for _, r := range results {
			if r.IsSold {
				continue
			}
			ranked = append(ranked, r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})

	return ranked
}
