// Package storage implements the domain's FileStore on top of gocloud.dev blob
// buckets. The bucket URL decides the backend; file:// targets a local
// directory which is enough for single-node deployments.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"

	"bazaar/config"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// New opens the configured bucket and returns a FileStore backed by it.
func New(params Params) (service.FileStore, error) {
	if params.Config.Upload == nil || params.Config.Upload.BucketURL == "" {
		return nil, errors.New("upload bucket URL must be configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Upload.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket: bucket,
		logger: params.Logger,
	}, nil
}

// Save stores the content under a collision-free key derived from the original
// filename and returns that key.
func (s *blobStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	key := uuid.New().String() + "_" + path.Base(filename)

	writer, err := s.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write blob content")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize blob write")
	}

	s.logger.DebugContext(ctx, "stored uploaded file", slog.String("key", key))

	return key, nil
}

// Delete removes a previously stored object. Missing objects are not an error.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if exists, existsErr := s.bucket.Exists(ctx, key); existsErr == nil && !exists {
			return nil
		}

		return errors.Wrap(err, "failed to delete blob")
	}

	return nil
}
