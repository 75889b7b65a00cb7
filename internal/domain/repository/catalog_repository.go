package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"
)

// ErrItemNotFound is returned when no item exists for a category and id.
var ErrItemNotFound = errors.New("item not found")

// CatalogRepository persists listings across the book, stationary and uniforms tables.
type CatalogRepository interface {
	// Create inserts the item into the table of its category and sets its ID.
	Create(ctx context.Context, item *entity.Item) error

	// FindByID loads a full item including category specific details.
	FindByID(ctx context.Context, category entity.Category, id int64) (*entity.Item, error)

	// ListAvailable returns projections of every unsold item in a category, newest first.
	ListAvailable(ctx context.Context, category entity.Category) ([]entity.ItemProjection, error)

	// SearchByTerms returns projections whose title or secondary text contains
	// any of the terms, case-insensitively. An empty term list returns nothing.
	SearchByTerms(ctx context.Context, category entity.Category, terms []string) ([]entity.ItemProjection, error)
}
