// Package storage implements the object-storage collaborator on top of
// gocloud.dev blob buckets, so the bucket backend (local files, GCS, S3) is
// a configuration concern.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"accountd/config"
	"accountd/internal/domain/lifecycle"
	"accountd/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // local filesystem bucket driver
	_ "gocloud.dev/blob/gcsblob"  // Google Cloud Storage bucket driver
	_ "gocloud.dev/blob/memblob"  // in-memory bucket driver, used in tests
)

// blobStorage implements service.ObjectStorage backed by a blob.Bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and wires its shutdown into the
// application lifecycle.
func New(params Params) (service.ObjectStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL missing")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Storage.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// NewWithBucket wraps an already opened bucket. Used in tests with memblob.
func NewWithBucket(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.ObjectStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload stores the content under key and returns its public location.
func (s *blobStorage) Upload(ctx context.Context, key, contentType string, r io.Reader) (*service.StoredObject, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return nil, errors.Wrap(err, "failed to write object")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize object")
	}

	s.logger.Debug("Object uploaded", slog.String("key", key))

	return &service.StoredObject{
		URL: s.publicBaseURL + "/" + key,
		Key: key,
	}, nil
}

// Delete removes a previously uploaded object.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	return errors.Wrap(s.bucket.Delete(ctx, key), "failed to delete object")
}
