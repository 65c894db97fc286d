package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/danukusuma/campgrounds-api/internal/domain/apperr"
	"github.com/danukusuma/campgrounds-api/internal/domain/entity"
	"github.com/danukusuma/campgrounds-api/internal/domain/repository"
)

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, u.ID, u.Username, u.Email, u.Password)
	return row.Scan(&u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.get(ctx, `WHERE username = $1`, username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.get(ctx, `WHERE email = $1`, email)
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)
	`, username, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) get(ctx context.Context, where string, arg any) (*entity.User, error) {
	u := &entity.User{}
	row := r.db.QueryRow(ctx, `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
	`+where, arg)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
