package application

import (
	"context"
	"io"

	"github.com/danukusuma/campgrounds-api/internal/domain/entity"
)

// ImageStore is the external image storage collaborator. Upload returns a
// stable reference whose Filename is the deletable identifier; Delete by an
// unknown identifier returns apperr.ErrNotFound.
type ImageStore interface {
	Upload(ctx context.Context, r io.Reader, originalName, contentType string) (entity.Image, error)
	Delete(ctx context.Context, filename string) error
}

// Geocoder resolves free-text locations. Zero matches surface as
// apperr.ErrLocationNotFound.
type Geocoder interface {
	Forward(ctx context.Context, query string) (entity.Point, error)
}

// ImageUpload is one raw file handed to the campground lifecycle.
// Size zero entries are skipped, matching empty form file fields.
type ImageUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}
