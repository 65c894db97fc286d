// Package gcs implements the image store adapter on Google Cloud Storage.
// An uploaded file becomes {public URL, object name}; the object name is the
// deletable identifier the lifecycle services hold on to.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/danukusuma/campgrounds-api/internal/domain/apperr"
	"github.com/danukusuma/campgrounds-api/internal/domain/entity"
)

// NewClient creates a Google Cloud Storage client. If credsPath is empty,
// Application Default Credentials are used.
func NewClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

type ImageStore struct {
	client *storage.Client
	bucket string
	prefix string
}

func NewImageStore(client *storage.Client, bucket string) *ImageStore {
	return &ImageStore{client: client, bucket: bucket, prefix: "campgrounds"}
}

// Upload streams the file into the bucket under a generated object name and
// returns the stored image reference. originalName only contributes its
// extension.
func (s *ImageStore) Upload(ctx context.Context, r io.Reader, originalName, contentType string) (entity.Image, error) {
	if s.client == nil || s.bucket == "" {
		return entity.Image{}, fmt.Errorf("%w: gcs not configured", apperr.ErrAdapter)
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	object := s.prefix + "/" + uuid.NewString() + ext

	wc := s.client.Bucket(s.bucket).Object(object).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // disable chunking for small files
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return entity.Image{}, fmt.Errorf("%w: upload %s: %v", apperr.ErrAdapter, object, err)
	}
	if err := wc.Close(); err != nil {
		return entity.Image{}, fmt.Errorf("%w: upload %s: %v", apperr.ErrAdapter, object, err)
	}
	return entity.Image{
		ID:       uuid.NewString(),
		URL:      publicURL(s.bucket, object),
		Filename: object,
	}, nil
}

// Delete removes an object by name. A missing object maps to
// apperr.ErrNotFound so callers can treat it as an idempotent no-op.
func (s *ImageStore) Delete(ctx context.Context, filename string) error {
	if s.client == nil || s.bucket == "" {
		return fmt.Errorf("%w: gcs not configured", apperr.ErrAdapter)
	}
	err := s.client.Bucket(s.bucket).Object(filename).Delete(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, storage.ErrObjectNotExist) {
		return apperr.ErrNotFound
	}
	return fmt.Errorf("%w: delete %s: %v", apperr.ErrAdapter, filename, err)
}

// publicURL assumes public read access or signed URLs configured on the bucket.
func publicURL(bucket, object string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, object)
}
