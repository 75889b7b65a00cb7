package entity

import (
	"time"
)

// Category names the catalog table an item lives in.
// The values are part of the public API and the storage schema.
type Category string

const (
	CategoryBook       Category = "book"
	CategoryStationery Category = "stationary"
	CategoryUniform    Category = "uniforms"
)

// Categories lists every category in ranking concatenation order.
func Categories() []Category {
	return []Category{CategoryBook, CategoryStationery, CategoryUniform}
}

// ParseCategory validates a raw category name.
func ParseCategory(raw string) (Category, bool) {
	switch c := Category(raw); c {
	case CategoryBook, CategoryStationery, CategoryUniform:
		return c, true
	default:
		return "", false
	}
}

// UniformCondition describes the wear state of a uniform.
type UniformCondition string

const (
	ConditionNew  UniformCondition = "new"
	ConditionUsed UniformCondition = "used"
)

// Item is a catalog listing. Exactly one of Book, Stationery or Uniform is set,
// matching Category.
type Item struct {
	ID                   int64
	Category             Category
	OwnerID              int64
	Title                string
	Description          string // Uniforms have no description column; Title is reported instead.
	Price                float64
	Count                int
	IsFeatured           bool
	IsSold               bool
	ThumbnailKey         string
	ThumbnailContentType string
	CreatedAt            time.Time

	Book       *BookDetails
	Stationery *StationeryDetails
	Uniform    *UniformDetails
}

type BookDetails struct {
	FileKey         string
	FileName        string
	FileContentType string
}

type StationeryDetails struct {
	AdditionalImageKeys []string
}

type UniformDetails struct {
	Size      string
	Condition UniformCondition
}

// Projection returns the binary-free view of the item used by listings and search.
func (i *Item) Projection() ItemProjection {
	p := ItemProjection{
		ID:          i.ID,
		Category:    i.Category,
		Title:       i.Title,
		Description: i.Description,
		Price:       i.Price,
		Count:       i.Count,
		IsFeatured:  i.IsFeatured,
		IsSold:      i.IsSold,
	}
	if i.Category == CategoryUniform {
		p.Description = i.Title
		if i.Uniform != nil {
			p.SecondaryText = string(i.Uniform.Condition)
		}
	} else {
		p.SecondaryText = i.Description
	}

	return p
}

// ItemProjection is the read model of a catalog item. Binary payloads are never part of it.
type ItemProjection struct {
	ID          int64    `json:"id"`
	Category    Category `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	// SecondaryText is the non-title text searched for terms: the description,
	// or the condition for uniforms.
	SecondaryText string  `json:"-"`
	Price         float64 `json:"price"`
	Count         int     `json:"count"`
	IsFeatured    bool    `json:"isFeatured"`
	IsSold        bool    `json:"isSold"`
}

// ScoredResult is a search hit with its relevance score.
type ScoredResult struct {
	ItemProjection
	RelevanceScore float64 `json:"relevanceScore"`
}
