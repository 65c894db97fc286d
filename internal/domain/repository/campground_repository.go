package repository

import (
	"context"

	"github.com/danukusuma/campgrounds-api/internal/domain/entity"
)

// CampgroundRepository defines the persistence operations for campground
// aggregates. Create persists the row together with its images; Update
// covers the scalar fields only, image rows are managed through
// AddImages/RemoveImages so upload order survives edits.
type CampgroundRepository interface {
	Create(ctx context.Context, c *entity.Campground) error
	GetByID(ctx context.Context, id string) (*entity.Campground, error)
	List(ctx context.Context) ([]entity.Campground, error)
	Update(ctx context.Context, c *entity.Campground) error
	Delete(ctx context.Context, id string) error
	AddImages(ctx context.Context, campgroundID string, images []entity.Image) error
	RemoveImages(ctx context.Context, campgroundID string, filenames []string) error
}
