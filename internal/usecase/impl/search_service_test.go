package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/infra/metrics"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// searchServiceFixtures holds all test dependencies for search service tests.
type searchServiceFixtures struct {
	service     usecase.SearchUsecase
	catalogRepo *mockRepo.MockCatalogRepository
	caption     *mockSvc.MockCaptionService
	metrics     *metrics.Metrics
}

func createTestSearchService(t *testing.T) searchServiceFixtures {
	f := searchServiceFixtures{
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		caption:     mockSvc.NewMockCaptionService(t),
		metrics:     metrics.New(metrics.NewRegistry()),
	}
	f.service = NewSearchService(SearchServiceParams{
		CatalogRepo:    f.catalogRepo,
		CaptionService: f.caption,
		Metrics:        f.metrics,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func TestSearchService_TextRanksAcrossCategories(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := createTestSearchService(t)
	terms := []string{"blue"}

	f.catalogRepo.EXPECT().SearchByTerms(mock.Anything, entity.CategoryBook, terms).Return([]entity.ItemProjection{
		{ID: 1, Category: entity.CategoryBook, Title: "Chemistry", SecondaryText: "blue cover"},
	}, nil)
	f.catalogRepo.EXPECT().SearchByTerms(mock.Anything, entity.CategoryStationery, terms).Return([]entity.ItemProjection{
		{ID: 2, Category: entity.CategoryStationery, Title: "Blue Pen", SecondaryText: "ink", IsFeatured: true},
		{ID: 3, Category: entity.CategoryStationery, Title: "Blue Folder", IsSold: true},
	}, nil)
	f.catalogRepo.EXPECT().SearchByTerms(mock.Anything, entity.CategoryUniform, terms).Return(nil, nil)

	results, err := f.service.Search(context.Background(), &usecase.SearchInput{Type: usecase.SearchTypeText, Query: "Blue"})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, int64(2), results[0].ID)
	assert.InDelta(t, 2.4, results[0].RelevanceScore, 1e-9)
	assert.Equal(t, int64(1), results[1].ID)
	assert.InDelta(t, 1.0, results[1].RelevanceScore, 1e-9)
}

func TestSearchService_ShortQueryBecomesSingleTerm(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := createTestSearchService(t)
	for _, category := range entity.Categories() {
		f.catalogRepo.EXPECT().SearchByTerms(mock.Anything, category, []string{"tv"}).Return(nil, nil)
	}

	results, err := f.service.Search(context.Background(), &usecase.SearchInput{Type: usecase.SearchTypeText, Query: "TV"})

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchService_EmptyTermsSkipStorage(t *testing.T) {
	f := createTestSearchService(t)

	results, err := f.service.Search(context.Background(), &usecase.SearchInput{Type: usecase.SearchTypeText, Query: "   "})

	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchService_ImageUsesCaptionTerms(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := createTestSearchService(t)
	terms := []string{"red", "backpack"}

	f.caption.EXPECT().Describe(mock.Anything, "aGVsbG8=").Return("A red backpack.", nil)
	f.catalogRepo.EXPECT().SearchByTerms(mock.Anything, entity.CategoryBook, terms).Return(nil, nil)
	f.catalogRepo.EXPECT().SearchByTerms(mock.Anything, entity.CategoryStationery, terms).Return([]entity.ItemProjection{
		{ID: 9, Category: entity.CategoryStationery, Title: "Red Backpack"},
	}, nil)
	f.catalogRepo.EXPECT().SearchByTerms(mock.Anything, entity.CategoryUniform, terms).Return(nil, nil)

	results, err := f.service.Search(context.Background(), &usecase.SearchInput{Type: usecase.SearchTypeImage, ImageData: "aGVsbG8="})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, 4.0, results[0].RelevanceScore, 1e-9)
}

func TestSearchService_CaptionFailureDegradesToEmpty(t *testing.T) {
	f := createTestSearchService(t)

	f.caption.EXPECT().Describe(mock.Anything, "aGVsbG8=").Return("", errors.New("upstream returned 429"))

	results, err := f.service.Search(context.Background(), &usecase.SearchInput{Type: usecase.SearchTypeImage, ImageData: "aGVsbG8="})

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.InDelta(t, 1.0, testutil.ToFloat64(f.metrics.CaptionFailures), 0)
}

func TestSearchService_StorageFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := createTestSearchService(t)
	terms := []string{"blue"}

	f.catalogRepo.EXPECT().SearchByTerms(mock.Anything, entity.CategoryBook, terms).Return(nil, nil).Maybe()
	f.catalogRepo.EXPECT().SearchByTerms(mock.Anything, entity.CategoryStationery, terms).Return(nil, errors.New("relation does not exist"))
	f.catalogRepo.EXPECT().SearchByTerms(mock.Anything, entity.CategoryUniform, terms).Return(nil, nil).Maybe()

	_, err := f.service.Search(context.Background(), &usecase.SearchInput{Type: usecase.SearchTypeText, Query: "blue"})

	assert.ErrorIs(t, err, domainerrors.ErrSearchFailed)
}

func TestSearchService_UnknownType(t *testing.T) {
	f := createTestSearchService(t)

	_, err := f.service.Search(context.Background(), &usecase.SearchInput{Type: "audio"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidSearchType)
}
