package repository

import (
	"context"

	"github.com/danukusuma/campgrounds-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
