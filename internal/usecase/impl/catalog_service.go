package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/infra/metrics"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	blobStore   service.BlobStore
	publisher   service.EventPublisher
	qrcode      service.QRCodeService
	metrics     *metrics.Metrics
	now         func() time.Time
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	BlobStore   service.BlobStore
	Publisher   service.EventPublisher
	QRCode      service.QRCodeService
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		blobStore:   params.BlobStore,
		publisher:   params.Publisher,
		qrcode:      params.QRCode,
		metrics:     params.Metrics,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// pendingBlob is an upload that must land in storage before the row is written.
type pendingBlob struct {
	key  string
	file *usecase.UploadedFile
}

// CreateItem stores the uploads, inserts the row and announces the listing.
// Uploads written before a failed insert are removed again.
func (srv *catalogService) CreateItem(ctx context.Context, input *usecase.CreateItemInput) (*entity.Item, error) {
	item, blobs, err := buildItem(input)
	if err != nil {
		return nil, err
	}
	item.CreatedAt = srv.now().UTC()

	written := make([]string, 0, len(blobs))
	for _, b := range blobs {
		if err := srv.blobStore.Put(ctx, b.key, b.file.Data, b.file.ContentType); err != nil {
			srv.discardBlobs(ctx, written)
			srv.log(ctx).Error("Failed to store upload", slog.String("key", b.key), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrBlobStoreFailed, err.Error())
		}
		written = append(written, b.key)
	}

	if err := srv.catalogRepo.Create(ctx, item); err != nil {
		srv.discardBlobs(ctx, written)
		srv.log(ctx).Error("Failed to insert item", slog.String("category", string(item.Category)), slog.Any("error", err))

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, errors.Wrap(err, "failed to create item")
		}

		return nil, errors.Wrap(domainerrors.ErrItemCreationFailed, err.Error())
	}

	srv.metrics.ListingsCreated.WithLabelValues(string(item.Category)).Inc()
	srv.log(ctx).Info("Item listed",
		slog.String("category", string(item.Category)),
		slog.Int64("itemID", item.ID),
		slog.Int64("ownerID", item.OwnerID),
	)

	srv.publishListing(ctx, item)

	return item, nil
}

// publishListing is best effort: a failed publish never fails the listing.
func (srv *catalogService) publishListing(ctx context.Context, item *entity.Item) {
	event := &service.ListingEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Category:   string(item.Category),
		ItemID:     item.ID,
		OwnerID:    item.OwnerID,
		Title:      item.Title,
		Price:      item.Price,
		IsFeatured: item.IsFeatured,
		CreatedAt:  item.CreatedAt,
	}

	if err := srv.publisher.PublishListingEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish listing event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}

func (srv *catalogService) discardBlobs(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := srv.blobStore.Delete(ctx, key); err != nil {
			srv.log(ctx).Error("Failed to delete orphaned upload", slog.String("key", key), slog.Any("error", err))
		}
	}
}

// ListAvailable returns the unsold items of every category.
func (srv *catalogService) ListAvailable(ctx context.Context) (map[entity.Category][]entity.ItemProjection, error) {
	out := make(map[entity.Category][]entity.ItemProjection, len(entity.Categories()))
	for _, category := range entity.Categories() {
		items, err := srv.catalogRepo.ListAvailable(ctx, category)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list %s", category)
		}
		if items == nil {
			items = []entity.ItemProjection{}
		}
		out[category] = items
	}

	return out, nil
}

func (srv *catalogService) GetItem(ctx context.Context, category entity.Category, id int64) (*usecase.ItemDetail, error) {
	item, err := srv.findItem(ctx, category, id)
	if err != nil {
		return nil, err
	}

	return &usecase.ItemDetail{
		Item:    item,
		HasFile: item.Book != nil && item.Book.FileKey != "",
	}, nil
}

func (srv *catalogService) GetThumbnail(ctx context.Context, category entity.Category, id int64) (*usecase.FileOutput, error) {
	item, err := srv.findItem(ctx, category, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrItemNotFound) {
			return nil, errors.WithStack(domainerrors.ErrImageNotFound)
		}

		return nil, err
	}
	if item.ThumbnailKey == "" {
		return nil, errors.WithStack(domainerrors.ErrImageNotFound)
	}

	blob, err := srv.blobStore.Get(ctx, item.ThumbnailKey)
	if err != nil {
		if errors.Is(err, service.ErrBlobNotFound) {
			return nil, errors.WithStack(domainerrors.ErrImageNotFound)
		}

		return nil, errors.Wrap(err, "failed to read thumbnail")
	}

	contentType := item.ThumbnailContentType
	if contentType == "" {
		contentType = blob.ContentType
	}

	return &usecase.FileOutput{ContentType: contentType, Data: blob.Data}, nil
}

func (srv *catalogService) GetBookFile(ctx context.Context, id int64) (*usecase.FileOutput, error) {
	item, err := srv.findItem(ctx, entity.CategoryBook, id)
	if err != nil {
		return nil, err
	}
	if item.Book == nil || item.Book.FileKey == "" {
		return nil, errors.WithStack(domainerrors.ErrFileNotFound)
	}

	blob, err := srv.blobStore.Get(ctx, item.Book.FileKey)
	if err != nil {
		if errors.Is(err, service.ErrBlobNotFound) {
			return nil, errors.WithStack(domainerrors.ErrFileNotFound)
		}

		return nil, errors.Wrap(err, "failed to read book file")
	}

	contentType := item.Book.FileContentType
	if contentType == "" {
		contentType = blob.ContentType
	}

	return &usecase.FileOutput{Name: item.Book.FileName, ContentType: contentType, Data: blob.Data}, nil
}

func (srv *catalogService) GetListingQR(ctx context.Context, category entity.Category, id int64) ([]byte, error) {
	if _, err := srv.findItem(ctx, category, id); err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateListingQR(category, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR code")
	}

	return png, nil
}

func (srv *catalogService) findItem(ctx context.Context, category entity.Category, id int64) (*entity.Item, error) {
	if _, ok := entity.ParseCategory(string(category)); !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidCategory)
	}

	item, err := srv.catalogRepo.FindByID(ctx, category, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, errors.WithStack(domainerrors.ErrItemNotFound)
		}

		return nil, errors.Wrapf(err, "failed to find %s %d", category, id)
	}

	return item, nil
}

// buildItem turns the validated union into an entity and the uploads it references.
func buildItem(input *usecase.CreateItemInput) (*entity.Item, []pendingBlob, error) {
	category, ok := entity.ParseCategory(input.Category)
	if !ok {
		return nil, nil, errors.WithStack(domainerrors.ErrInvalidCategory)
	}
	if input.Thumbnail == nil || len(input.Thumbnail.Data) == 0 {
		return nil, nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("thumbnail is required"))
	}

	item := &entity.Item{
		Category:             category,
		OwnerID:              input.OwnerID,
		Title:                input.Title,
		Description:          input.Description,
		Price:                input.Price,
		Count:                input.Count,
		IsFeatured:           input.IsFeatured,
		ThumbnailKey:         blobKey("thumbnails", category),
		ThumbnailContentType: input.Thumbnail.ContentType,
	}
	blobs := []pendingBlob{{key: item.ThumbnailKey, file: input.Thumbnail}}

	variants := 0
	for _, set := range []bool{input.Book != nil, input.Stationery != nil, input.Uniform != nil} {
		if set {
			variants++
		}
	}
	if variants > 1 {
		return nil, nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("exactly one item variant must be set"))
	}

	switch category {
	case entity.CategoryBook:
		if input.Book == nil || input.Book.File == nil || len(input.Book.File.Data) == 0 {
			return nil, nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("fileData is required"))
		}
		item.Book = &entity.BookDetails{
			FileKey:         blobKey("files", category),
			FileName:        input.Book.File.Name,
			FileContentType: input.Book.File.ContentType,
		}
		blobs = append(blobs, pendingBlob{key: item.Book.FileKey, file: input.Book.File})
	case entity.CategoryStationery:
		item.Stationery = &entity.StationeryDetails{AdditionalImageKeys: []string{}}
		if input.Stationery != nil {
			for _, img := range input.Stationery.AdditionalImages {
				if img == nil || len(img.Data) == 0 {
					continue
				}
				key := blobKey("images", category)
				item.Stationery.AdditionalImageKeys = append(item.Stationery.AdditionalImageKeys, key)
				blobs = append(blobs, pendingBlob{key: key, file: img})
			}
		}
	case entity.CategoryUniform:
		if input.Uniform == nil || input.Uniform.Size == "" {
			return nil, nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("size is required"))
		}
		condition := entity.ConditionNew
		if input.Uniform.Condition == string(entity.ConditionUsed) {
			condition = entity.ConditionUsed
		}
		item.Description = item.Title
		item.Uniform = &entity.UniformDetails{Size: input.Uniform.Size, Condition: condition}
	}

	return item, blobs, nil
}

func blobKey(kind string, category entity.Category) string {
	return kind + "/" + string(category) + "/" + uuid.NewString()
}
