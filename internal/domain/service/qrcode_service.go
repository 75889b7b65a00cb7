package service

import (
	"marketplace/internal/domain/entity"
)

// QRCodeService renders shareable QR codes for listings
type QRCodeService interface {
	// GenerateListingQR returns a PNG QR code linking to the listing page
	GenerateListingQR(category entity.Category, itemID int64) ([]byte, error)

	// ParseListingQR extracts the category and item id from scanned QR content
	ParseListingQR(qrData string) (entity.Category, int64, error)
}
