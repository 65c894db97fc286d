package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/danukusuma/campgrounds-api/internal/domain/apperr"
	"github.com/danukusuma/campgrounds-api/internal/domain/entity"
	"github.com/danukusuma/campgrounds-api/internal/domain/repository"
)

type ReviewRepository struct {
	db Querier
}

func NewReviewRepository(db Querier) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *entity.Review) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO reviews (id, campground_id, author_id, rating, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, rv.ID, rv.CampgroundID, rv.AuthorID, rv.Rating, rv.Body)
	return row.Scan(&rv.CreatedAt)
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	rv := &entity.Review{}
	row := r.db.QueryRow(ctx, `
		SELECT r.id, r.campground_id, r.author_id, u.username, r.rating, r.body, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.id = $1
	`, id)
	if err := row.Scan(&rv.ID, &rv.CampgroundID, &rv.AuthorID, &rv.AuthorUsername,
		&rv.Rating, &rv.Body, &rv.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (r *ReviewRepository) ListByCampground(ctx context.Context, campgroundID string) ([]entity.Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.campground_id, r.author_id, u.username, r.rating, r.body, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.campground_id = $1
		ORDER BY r.created_at DESC
	`, campgroundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Review, 0)
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.ID, &rv.CampgroundID, &rv.AuthorID, &rv.AuthorUsername,
			&rv.Rating, &rv.Body, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// DeleteByCampground is the review cascade for a campground delete.
// Zero affected rows is fine: a campground without reviews.
func (r *ReviewRepository) DeleteByCampground(ctx context.Context, campgroundID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE campground_id = $1`, campgroundID)
	return err
}

var _ repository.ReviewRepository = (*ReviewRepository)(nil)
