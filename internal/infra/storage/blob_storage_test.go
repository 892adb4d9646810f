package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func createTestStorage(t *testing.T) *blobStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewWithBucket(bucket, "https://cdn.example.com/", logger).(*blobStorage)
}

func TestBlobStorage_UploadAndDelete(t *testing.T) {
	storage := createTestStorage(t)
	ctx := context.Background()

	stored, err := storage.Upload(ctx, "avatars/abc.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "avatars/abc.png", stored.Key)
	// Trailing slash on the base URL must not double up.
	assert.Equal(t, "https://cdn.example.com/avatars/abc.png", stored.URL)

	data, err := storage.bucket.ReadAll(ctx, "avatars/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	attrs, err := storage.bucket.Attributes(ctx, "avatars/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	require.NoError(t, storage.Delete(ctx, "avatars/abc.png"))

	exists, err := storage.bucket.Exists(ctx, "avatars/abc.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_UploadOverwritesExistingKey(t *testing.T) {
	storage := createTestStorage(t)
	ctx := context.Background()

	_, err := storage.Upload(ctx, "avatars/abc.png", "image/png", strings.NewReader("old"))
	require.NoError(t, err)
	_, err = storage.Upload(ctx, "avatars/abc.png", "image/png", strings.NewReader("new"))
	require.NoError(t, err)

	data, err := storage.bucket.ReadAll(ctx, "avatars/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestBlobStorage_DeleteMissingKeyFails(t *testing.T) {
	storage := createTestStorage(t)

	err := storage.Delete(context.Background(), "avatars/never-uploaded.png")
	assert.Error(t, err)
}
