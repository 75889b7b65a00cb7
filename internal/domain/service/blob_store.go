package service

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned when no object exists under a key.
var ErrBlobNotFound = errors.New("blob not found")

// Blob is an object read back from storage.
type Blob struct {
	Data        []byte
	ContentType string
}

// BlobStore keeps binary payloads (thumbnails, book files, photos) outside the database.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) (*Blob, error)
	Delete(ctx context.Context, key string) error
}
