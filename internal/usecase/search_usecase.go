package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

const (
	SearchTypeText  = "text"
	SearchTypeImage = "image"
)

// SearchInput is the body of a smart search request.
type SearchInput struct {
	Type      string `json:"type" validate:"required,oneof=text image"`
	Query     string `json:"query" validate:"required_if=Type text"`
	ImageData string `json:"imageData" validate:"required_if=Type image"`
}

// SearchUsecase runs keyword search across every catalog category.
type SearchUsecase interface {
	Search(ctx context.Context, input *SearchInput) ([]entity.ScoredResult, error)
}
