package search

import (
	"strings"

	"marketplace/internal/domain/entity"
)

const (
	titleHitWeight     = 2.0
	secondaryHitWeight = 1.0
	featuredBoost      = 1.2
)

// Score computes the relevance of one item against the term set:
// +2 per term found in the title, +1 per term found in the secondary text,
// and the total is multiplied by 1.2 for featured items.
func Score(item entity.ItemProjection, terms TermSet) float64 {
	title := strings.ToLower(item.Title)
	secondary := strings.ToLower(item.SecondaryText)

	var score float64
	for _, term := range terms {
		if strings.Contains(title, term) {
			score += titleHitWeight
		}
		if strings.Contains(secondary, term) {
			score += secondaryHitWeight
		}
	}

	if item.IsFeatured {
		score *= featuredBoost
	}

	return score
}

// Matches reports whether any term hits the title or the secondary text.
// It mirrors the storage-side predicate so in-memory filtering agrees with it.
func Matches(item entity.ItemProjection, terms TermSet) bool {
	title := strings.ToLower(item.Title)
	secondary := strings.ToLower(item.SecondaryText)
	for _, term := range terms {
		if strings.Contains(title, term) || strings.Contains(secondary, term) {
			return true
		}
	}

	return false
}

// ScoreAll scores every candidate, dropping those that match no term.
func ScoreAll(candidates []entity.ItemProjection, terms TermSet) []entity.ScoredResult {
	results := make([]entity.ScoredResult, 0, len(candidates))
	for _, c := range candidates {
		if !Matches(c, terms) {
			continue
		}
		results = append(results, entity.ScoredResult{
			ItemProjection: c,
			RelevanceScore: Score(c, terms),
		})
	}

	return results
}
