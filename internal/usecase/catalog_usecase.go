package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// CreateItemInput is a tagged union: Category selects which one of Book,
// Stationery or Uniform must be set.
type CreateItemInput struct {
	OwnerID     int64   `validate:"required,gt=0"`
	Category    string  `validate:"required,oneof=book stationary uniforms"`
	Title       string  `validate:"required,max=200"`
	Description string  `validate:"max=5000"`
	Price       float64 `validate:"gt=0"`
	Count       int     `validate:"gte=1"`
	IsFeatured  bool
	Thumbnail   *UploadedFile `validate:"required"`

	Book       *BookInput       `validate:"required_if=Category book,excluded_unless=Category book"`
	Stationery *StationeryInput `validate:"required_if=Category stationary,excluded_unless=Category stationary"`
	Uniform    *UniformInput    `validate:"required_if=Category uniforms,excluded_unless=Category uniforms"`
}

type BookInput struct {
	File *UploadedFile `validate:"required"`
}

type StationeryInput struct {
	AdditionalImages []*UploadedFile `validate:"dive,required"`
}

type UniformInput struct {
	Size      string `validate:"required,max=20"`
	Condition string `validate:"omitempty,oneof=new used"`
}

// ItemDetail is an item plus flags the detail page needs.
type ItemDetail struct {
	Item    *entity.Item
	HasFile bool
}

// FileOutput is a binary payload read back from storage.
type FileOutput struct {
	Name        string
	ContentType string
	Data        []byte
}

// CatalogUsecase defines the listing operations of the marketplace.
type CatalogUsecase interface {
	CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error)
	// ListAvailable returns every unsold item keyed by category.
	ListAvailable(ctx context.Context) (map[entity.Category][]entity.ItemProjection, error)
	GetItem(ctx context.Context, category entity.Category, id int64) (*ItemDetail, error)
	GetThumbnail(ctx context.Context, category entity.Category, id int64) (*FileOutput, error)
	GetBookFile(ctx context.Context, id int64) (*FileOutput, error)
	GetListingQR(ctx context.Context, category entity.Category, id int64) ([]byte, error)
}
