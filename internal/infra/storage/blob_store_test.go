package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func TestBucketStore_PutGetDelete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBucketStore(bucket)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "thumbnails/a", []byte{0x89, 'P', 'N', 'G'}, "image/png"))

	got, err := store.Get(ctx, "thumbnails/a")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, got.Data)
	assert.Equal(t, "image/png", got.ContentType)

	require.NoError(t, store.Delete(ctx, "thumbnails/a"))

	_, err = store.Get(ctx, "thumbnails/a")
	assert.ErrorIs(t, err, service.ErrBlobNotFound)
}

func TestBucketStore_DeleteMissingIsNoop(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	assert.NoError(t, NewBucketStore(bucket).Delete(context.Background(), "nope"))
}

func TestNewBlobStore(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Storage: &config.StorageConfig{BucketURL: "mem://"}}

	store, err := NewBlobStore(Params{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	require.NotNil(t, store)

	lc.RequireStart()
	lc.RequireStop()
}

func TestNewBlobStore_UnknownScheme(t *testing.T) {
	cfg := &config.Config{Storage: &config.StorageConfig{BucketURL: "nosuch://bucket"}}

	_, err := NewBlobStore(Params{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}
