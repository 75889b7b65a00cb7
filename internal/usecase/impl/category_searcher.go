package impl

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/search"
	"marketplace/internal/errors"
)

// categorySearcher runs the term predicate against one catalog table and scores the hits.
type categorySearcher struct {
	category entity.Category
	repo     repository.CatalogRepository
}

func newCategorySearchers(repo repository.CatalogRepository) []*categorySearcher {
	categories := entity.Categories()
	searchers := make([]*categorySearcher, 0, len(categories))
	for _, category := range categories {
		searchers = append(searchers, &categorySearcher{category: category, repo: repo})
	}

	return searchers
}

func (s *categorySearcher) Search(ctx context.Context, terms search.TermSet) ([]entity.ScoredResult, error) {
	if terms.Empty() {
		return nil, nil
	}

	candidates, err := s.repo.SearchByTerms(ctx, s.category, terms)
	if err != nil {
		return nil, errors.Wrapf(err, "search %s", s.category)
	}

	return search.ScoreAll(candidates, terms), nil
}
