package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/metrics"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	catalogRepo *mockRepo.MockCatalogRepository
	blobStore   *mockSvc.MockBlobStore
	publisher   *mockSvc.MockEventPublisher
	qrcode      *mockSvc.MockQRCodeService
	metrics     *metrics.Metrics
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	f := catalogServiceFixtures{
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		blobStore:   mockSvc.NewMockBlobStore(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		qrcode:      mockSvc.NewMockQRCodeService(t),
		metrics:     metrics.New(metrics.NewRegistry()),
	}
	f.service = NewCatalogService(CatalogServiceParams{
		CatalogRepo: f.catalogRepo,
		BlobStore:   f.blobStore,
		Publisher:   f.publisher,
		QRCode:      f.qrcode,
		Metrics:     f.metrics,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func bookInput() *usecase.CreateItemInput {
	return &usecase.CreateItemInput{
		OwnerID:     3,
		Category:    "book",
		Title:       "Calculus",
		Description: "2nd edition",
		Price:       12.5,
		Count:       1,
		Thumbnail:   &usecase.UploadedFile{ContentType: "image/png", Data: []byte{1}},
		Book: &usecase.BookInput{
			File: &usecase.UploadedFile{Name: "calc.pdf", ContentType: "application/pdf", Data: []byte{2}},
		},
	}
}

func TestCatalogService_CreateItem_Book(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	var keys []string
	f.blobStore.EXPECT().Put(ctx, mock.AnythingOfType("string"), mock.Anything, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, key string, _ []byte, _ string) error {
			keys = append(keys, key)
			return nil
		}).Times(2)
	f.catalogRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Item")).
		RunAndReturn(func(_ context.Context, item *entity.Item) error {
			item.ID = 11
			return nil
		})
	f.publisher.EXPECT().PublishListingEvent(ctx, mock.MatchedBy(func(e *service.ListingEvent) bool {
		return e.ItemID == 11 && e.Category == "book" && e.OwnerID == 3 && e.EventID != ""
	})).Return(nil)

	item, err := f.service.CreateItem(ctx, bookInput())

	require.NoError(t, err)
	assert.Equal(t, int64(11), item.ID)
	assert.Equal(t, entity.CategoryBook, item.Category)
	require.NotNil(t, item.Book)
	assert.Equal(t, "calc.pdf", item.Book.FileName)
	require.Len(t, keys, 2)
	assert.True(t, strings.HasPrefix(keys[0], "thumbnails/book/"))
	assert.True(t, strings.HasPrefix(keys[1], "files/book/"))
	assert.Equal(t, keys[0], item.ThumbnailKey)
	assert.Equal(t, keys[1], item.Book.FileKey)
	assert.InDelta(t, 1.0, testutil.ToFloat64(f.metrics.ListingsCreated.WithLabelValues("book")), 0)
}

func TestCatalogService_CreateItem_UniformUsesTitleAsDescription(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	f.blobStore.EXPECT().Put(ctx, mock.AnythingOfType("string"), mock.Anything, "image/jpeg").Return(nil).Once()
	f.catalogRepo.EXPECT().Create(ctx, mock.MatchedBy(func(item *entity.Item) bool {
		return item.Uniform != nil && item.Uniform.Size == "M" && item.Uniform.Condition == entity.ConditionUsed
	})).Return(nil)
	f.publisher.EXPECT().PublishListingEvent(ctx, mock.Anything).Return(nil)

	item, err := f.service.CreateItem(ctx, &usecase.CreateItemInput{
		OwnerID:     3,
		Category:    "uniforms",
		Title:       "PE Shirt",
		Description: "ignored",
		Price:       8,
		Count:       2,
		Thumbnail:   &usecase.UploadedFile{ContentType: "image/jpeg", Data: []byte{1}},
		Uniform:     &usecase.UniformInput{Size: "M", Condition: "used"},
	})

	require.NoError(t, err)
	assert.Equal(t, "PE Shirt", item.Description)
}

func TestCatalogService_CreateItem_StationeryImages(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	f.blobStore.EXPECT().Put(ctx, mock.AnythingOfType("string"), mock.Anything, mock.AnythingOfType("string")).Return(nil).Times(3)
	f.catalogRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Item")).Return(nil)
	f.publisher.EXPECT().PublishListingEvent(ctx, mock.Anything).Return(nil)

	item, err := f.service.CreateItem(ctx, &usecase.CreateItemInput{
		OwnerID:   3,
		Category:  "stationary",
		Title:     "Pen set",
		Price:     4,
		Count:     10,
		Thumbnail: &usecase.UploadedFile{ContentType: "image/png", Data: []byte{1}},
		Stationery: &usecase.StationeryInput{AdditionalImages: []*usecase.UploadedFile{
			{ContentType: "image/png", Data: []byte{2}},
			{ContentType: "image/png", Data: []byte{3}},
		}},
	})

	require.NoError(t, err)
	require.NotNil(t, item.Stationery)
	assert.Len(t, item.Stationery.AdditionalImageKeys, 2)
}

func TestCatalogService_CreateItem_VariantMismatch(t *testing.T) {
	f := createTestCatalogService(t)
	input := bookInput()
	input.Uniform = &usecase.UniformInput{Size: "M"}

	_, err := f.service.CreateItem(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateItem_BookWithoutFile(t *testing.T) {
	f := createTestCatalogService(t)
	input := bookInput()
	input.Book = nil

	_, err := f.service.CreateItem(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateItem_InsertFailureDiscardsUploads(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	f.blobStore.EXPECT().Put(ctx, mock.AnythingOfType("string"), mock.Anything, mock.AnythingOfType("string")).Return(nil).Times(2)
	f.catalogRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Item")).Return(errors.New("connection reset"))
	f.blobStore.EXPECT().Delete(ctx, mock.AnythingOfType("string")).Return(nil).Times(2)

	_, err := f.service.CreateItem(ctx, bookInput())

	assert.ErrorIs(t, err, domainerrors.ErrItemCreationFailed)
	assert.InDelta(t, 0.0, testutil.ToFloat64(f.metrics.ListingsCreated.WithLabelValues("book")), 0)
}

func TestCatalogService_CreateItem_UploadFailure(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	f.blobStore.EXPECT().Put(ctx, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "thumbnails/") }),
		mock.Anything, mock.Anything).Return(nil)
	f.blobStore.EXPECT().Put(ctx, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "files/") }),
		mock.Anything, mock.Anything).Return(errors.New("bucket unavailable"))
	f.blobStore.EXPECT().Delete(ctx, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "thumbnails/") })).
		Return(nil)

	_, err := f.service.CreateItem(ctx, bookInput())

	assert.ErrorIs(t, err, domainerrors.ErrBlobStoreFailed)
}

func TestCatalogService_CreateItem_PublishFailureIsIgnored(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	f.blobStore.EXPECT().Put(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
	f.catalogRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Item")).Return(nil)
	f.publisher.EXPECT().PublishListingEvent(ctx, mock.Anything).Return(errors.New("topic missing"))

	_, err := f.service.CreateItem(ctx, bookInput())

	assert.NoError(t, err)
}

func TestCatalogService_ListAvailable(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	books := []entity.ItemProjection{{ID: 1, Category: entity.CategoryBook, Title: "Calculus"}}

	f.catalogRepo.EXPECT().ListAvailable(ctx, entity.CategoryBook).Return(books, nil)
	f.catalogRepo.EXPECT().ListAvailable(ctx, entity.CategoryStationery).Return(nil, nil)
	f.catalogRepo.EXPECT().ListAvailable(ctx, entity.CategoryUniform).Return([]entity.ItemProjection{}, nil)

	got, err := f.service.ListAvailable(ctx)

	require.NoError(t, err)
	assert.Equal(t, books, got[entity.CategoryBook])
	assert.NotNil(t, got[entity.CategoryStationery])
	assert.Empty(t, got[entity.CategoryStationery])
	assert.Len(t, got, 3)
}

func TestCatalogService_GetItem(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	item := &entity.Item{ID: 5, Category: entity.CategoryBook, Book: &entity.BookDetails{FileKey: "files/book/x"}, CreatedAt: time.Now()}

	f.catalogRepo.EXPECT().FindByID(ctx, entity.CategoryBook, int64(5)).Return(item, nil)

	detail, err := f.service.GetItem(ctx, entity.CategoryBook, 5)

	require.NoError(t, err)
	assert.True(t, detail.HasFile)
	assert.Equal(t, item, detail.Item)
}

func TestCatalogService_GetItem_Errors(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		f := createTestCatalogService(t)

		_, err := f.service.GetItem(context.Background(), entity.Category("furniture"), 1)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCategory)
	})

	t.Run("missing row", func(t *testing.T) {
		f := createTestCatalogService(t)
		f.catalogRepo.EXPECT().FindByID(mock.Anything, entity.CategoryUniform, int64(1)).Return(nil, repository.ErrItemNotFound)

		_, err := f.service.GetItem(context.Background(), entity.CategoryUniform, 1)

		assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
	})
}

func TestCatalogService_GetThumbnail(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	f.catalogRepo.EXPECT().FindByID(ctx, entity.CategoryStationery, int64(2)).
		Return(&entity.Item{ID: 2, ThumbnailKey: "thumbnails/stationary/a", ThumbnailContentType: "image/webp"}, nil)
	f.blobStore.EXPECT().Get(ctx, "thumbnails/stationary/a").Return(&service.Blob{Data: []byte{7}, ContentType: "application/octet-stream"}, nil)

	out, err := f.service.GetThumbnail(ctx, entity.CategoryStationery, 2)

	require.NoError(t, err)
	assert.Equal(t, "image/webp", out.ContentType)
	assert.Equal(t, []byte{7}, out.Data)
}

func TestCatalogService_GetThumbnail_MissingItemIsImageNotFound(t *testing.T) {
	f := createTestCatalogService(t)

	f.catalogRepo.EXPECT().FindByID(mock.Anything, entity.CategoryBook, int64(2)).Return(nil, repository.ErrItemNotFound)

	_, err := f.service.GetThumbnail(context.Background(), entity.CategoryBook, 2)

	assert.ErrorIs(t, err, domainerrors.ErrImageNotFound)
}

func TestCatalogService_GetBookFile(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	f.catalogRepo.EXPECT().FindByID(ctx, entity.CategoryBook, int64(5)).Return(&entity.Item{
		ID:   5,
		Book: &entity.BookDetails{FileKey: "files/book/x", FileName: "calc.pdf", FileContentType: "application/pdf"},
	}, nil)
	f.blobStore.EXPECT().Get(ctx, "files/book/x").Return(&service.Blob{Data: []byte("%PDF")}, nil)

	out, err := f.service.GetBookFile(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, "calc.pdf", out.Name)
	assert.Equal(t, "application/pdf", out.ContentType)
}

func TestCatalogService_GetBookFile_NoFile(t *testing.T) {
	f := createTestCatalogService(t)

	f.catalogRepo.EXPECT().FindByID(mock.Anything, entity.CategoryBook, int64(5)).
		Return(&entity.Item{ID: 5, Book: &entity.BookDetails{}}, nil)

	_, err := f.service.GetBookFile(context.Background(), 5)

	assert.ErrorIs(t, err, domainerrors.ErrFileNotFound)
}

func TestCatalogService_GetListingQR(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	f.catalogRepo.EXPECT().FindByID(ctx, entity.CategoryUniform, int64(4)).Return(&entity.Item{ID: 4}, nil)
	f.qrcode.EXPECT().GenerateListingQR(entity.CategoryUniform, int64(4)).Return([]byte("png"), nil)

	png, err := f.service.GetListingQR(ctx, entity.CategoryUniform, 4)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
