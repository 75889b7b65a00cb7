package service

import "context"

// CaptionService describes an image in free text.
type CaptionService interface {
	// Describe takes a base64 image, either raw or as a data URL.
	Describe(ctx context.Context, imageBase64 string) (string, error)
}
