package repository

import (
	"context"

	"github.com/danukusuma/campgrounds-api/internal/domain/entity"
)

// ReviewRepository defines persistence for reviews. Membership on a
// campground is derived from campground_id here, not cached on the parent,
// so DeleteByCampground is the whole cascade.
type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	ListByCampground(ctx context.Context, campgroundID string) ([]entity.Review, error)
	Delete(ctx context.Context, id string) error
	DeleteByCampground(ctx context.Context, campgroundID string) error
}
