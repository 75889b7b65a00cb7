package model

import (
	"time"

	"gorm.io/datatypes"
)

// ListingColumns are shared by the three catalog tables.
type ListingColumns struct {
	ID                   int64   `gorm:"primaryKey;autoIncrement"`
	UserID               int64   `gorm:"not null;index"`
	Title                string  `gorm:"type:varchar(255);not null"`
	Price                float64 `gorm:"not null"`
	Count                int     `gorm:"not null"`
	IsSold               bool    `gorm:"not null"`
	IsFeatured           bool    `gorm:"not null"`
	ThumbnailKey         string  `gorm:"type:varchar(255);not null"`
	ThumbnailContentType string  `gorm:"type:varchar(100)"`
	CreatedAt            time.Time
}

// BookModel mirrors the 'books' table.
type BookModel struct {
	ListingColumns
	Description     string `gorm:"type:text"`
	FileKey         string `gorm:"type:varchar(255);not null"`
	FileName        string `gorm:"type:varchar(255)"`
	FileContentType string `gorm:"type:varchar(100)"`
}

func (BookModel) TableName() string {
	return "books"
}

// StationeryModel mirrors the 'stationary' table.
type StationeryModel struct {
	ListingColumns
	Description         string                      `gorm:"type:text"`
	AdditionalImageKeys datatypes.JSONSlice[string] `gorm:"column:additional_imgs;type:jsonb"`
}

func (StationeryModel) TableName() string {
	return "stationary"
}

// UniformModel mirrors the 'uniforms' table. Uniforms have no description column.
type UniformModel struct {
	ListingColumns
	Size      string `gorm:"type:varchar(20);not null"`
	Condition string `gorm:"type:varchar(10);not null"`
}

func (UniformModel) TableName() string {
	return "uniforms"
}
