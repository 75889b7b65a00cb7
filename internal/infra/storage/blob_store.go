package storage

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // registers file://
	_ "gocloud.dev/blob/memblob"  // registers mem://
	"gocloud.dev/gcerrors"
)

// Params holds dependencies for the blob store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type bucketStore struct {
	bucket *blob.Bucket
}

// NewBlobStore opens the configured bucket and closes it on shutdown
func NewBlobStore(params Params) (service.BlobStore, error) {
	bucketURL := params.Config.Storage.BucketURL

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Blob bucket opened", slog.String("url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.Wrap(bucket.Close(), "failed to close bucket")
		},
	})

	return NewBucketStore(bucket), nil
}

// NewBucketStore wraps an already opened bucket
func NewBucketStore(bucket *blob.Bucket) service.BlobStore {
	return &bucketStore{bucket: bucket}
}

func (s *bucketStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return errors.Wrapf(err, "failed to write blob %s", key)
	}

	return nil
}

func (s *bucketStore) Get(ctx context.Context, key string) (*service.Blob, error) {
	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		return nil, mapBlobError(err, key)
	}

	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, mapBlobError(err, key)
	}

	return &service.Blob{Data: data, ContentType: attrs.ContentType}, nil
}

func (s *bucketStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete blob %s", key)
	}

	return nil
}

func mapBlobError(err error, key string) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return errors.Wrap(service.ErrBlobNotFound, key)
	}

	return errors.Wrapf(err, "failed to read blob %s", key)
}
