// Package media stores product images and their derived artifacts in a blob
// bucket and generates bounded-width thumbnails.
package media

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the file:// bucket scheme for local development.
	_ "gocloud.dev/blob/fileblob"
)

// blobStore implements service.MediaStore on top of a gocloud blob bucket.
// The bucket URL decides the backend: file:// locally, s3:// or gs:// in
// production, without code changes.
type blobStore struct {
	bucket *blob.Bucket
}

// StoreParams holds dependencies for the media store, injected by Fx.
type StoreParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
}

// NewBlobStore opens the configured bucket and ties its lifetime to the app.
func NewBlobStore(params StoreParams) (service.MediaStore, error) {
	if params.Config.Media == nil || params.Config.Media.BucketURL == "" {
		return nil, errors.New("media bucket URL is required")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %s", params.Config.Media.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{bucket: bucket}, nil
}

// Save writes data under key, overwriting any previous object.
func (s *blobStore) Save(ctx context.Context, key string, data []byte, contentType string) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return errors.Wrapf(err, "failed to write media object %s", key)
	}

	return nil
}

// Load reads the object stored under key.
func (s *blobStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read media object %s", key)
	}

	return data, nil
}
