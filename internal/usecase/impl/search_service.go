package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/search"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/infra/metrics"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	searchers []*categorySearcher
	caption   service.CaptionService
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	CatalogRepo    repository.CatalogRepository
	CaptionService service.CaptionService
	Metrics        *metrics.Metrics
	Logger         *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		searchers: newCategorySearchers(params.CatalogRepo),
		caption:   params.CaptionService,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search extracts terms for the request type, queries every category
// concurrently and ranks the joined results.
func (srv *searchService) Search(ctx context.Context, input *usecase.SearchInput) ([]entity.ScoredResult, error) {
	start := time.Now()
	defer func() {
		srv.metrics.SearchDuration.WithLabelValues(input.Type).Observe(time.Since(start).Seconds())
	}()

	terms, err := srv.extractTerms(ctx, input)
	if err != nil {
		return nil, err
	}
	if terms.Empty() {
		return []entity.ScoredResult{}, nil
	}

	perCategory := make([][]entity.ScoredResult, len(srv.searchers))
	g, gctx := errgroup.WithContext(ctx)
	for i, searcher := range srv.searchers {
		g.Go(func() error {
			results, err := searcher.Search(gctx, terms)
			if err != nil {
				return err
			}
			perCategory[i] = results

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Search failed", slog.String("type", input.Type), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrSearchFailed, err.Error())
	}

	ranked := search.Rank(perCategory...)
	srv.log(ctx).Debug("Search completed",
		slog.String("type", input.Type),
		slog.Any("terms", []string(terms)),
		slog.Int("results", len(ranked)),
	)

	return ranked, nil
}

func (srv *searchService) extractTerms(ctx context.Context, input *usecase.SearchInput) (search.TermSet, error) {
	switch input.Type {
	case usecase.SearchTypeText:
		return search.ExtractQueryTerms(input.Query), nil
	case usecase.SearchTypeImage:
		return search.ExtractCaptionTerms(srv.describe(ctx, input.ImageData)), nil
	default:
		return nil, errors.WithStack(domainerrors.ErrInvalidSearchType)
	}
}

// describe never fails: a caption error degrades to an empty description.
func (srv *searchService) describe(ctx context.Context, image string) string {
	description, err := srv.caption.Describe(ctx, image)
	if err != nil {
		srv.metrics.CaptionFailures.Inc()
		srv.log(ctx).Warn("Image caption failed, searching without terms", slog.Any("error", err))

		return ""
	}

	return description
}
