package qrcode

import (
	"net/url"
	"strconv"
	"strings"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const listingPathPrefix = "/items/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service that encodes listing URLs under baseURL
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateListingQR renders <baseURL>/items/<category>/<id> as a PNG
func (s *qrcodeService) GenerateListingQR(category entity.Category, itemID int64) ([]byte, error) {
	content := s.baseURL + listingPathPrefix + string(category) + "/" + strconv.FormatInt(itemID, 10)

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseListingQR accepts either a full listing URL or a bare /items/<category>/<id> path
func (s *qrcodeService) ParseListingQR(qrData string) (entity.Category, int64, error) {
	u, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return "", 0, errors.Wrap(err, "failed to parse QR code content")
	}

	rest, ok := strings.CutPrefix(u.Path, listingPathPrefix)
	if !ok {
		return "", 0, errors.Errorf("not a listing QR code: %s", qrData)
	}

	rawCategory, rawID, ok := strings.Cut(rest, "/")
	if !ok {
		return "", 0, errors.Errorf("listing QR code has no item id: %s", qrData)
	}

	category, ok := entity.ParseCategory(rawCategory)
	if !ok {
		return "", 0, errors.Errorf("invalid listing category: %s", rawCategory)
	}

	itemID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || itemID <= 0 {
		return "", 0, errors.Errorf("invalid listing id: %s", rawID)
	}

	return category, itemID, nil
}
