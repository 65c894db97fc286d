package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/danukusuma/campgrounds-api/internal/domain/apperr"
	"github.com/danukusuma/campgrounds-api/internal/domain/entity"
	"github.com/danukusuma/campgrounds-api/internal/domain/repository"
)

type CampgroundRepository struct {
	db Querier
}

func NewCampgroundRepository(db Querier) *CampgroundRepository {
	return &CampgroundRepository{db: db}
}

func (r *CampgroundRepository) Create(ctx context.Context, c *entity.Campground) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO campgrounds (id, title, description, location, price, lon, lat, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`, c.ID, c.Title, c.Description, c.Location, c.Price, c.Geometry.Lon, c.Geometry.Lat, c.AuthorID)
	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return err
	}
	return r.AddImages(ctx, c.ID, c.Images)
}

func (r *CampgroundRepository) GetByID(ctx context.Context, id string) (*entity.Campground, error) {
	c := &entity.Campground{}
	row := r.db.QueryRow(ctx, `
		SELECT c.id, c.title, c.description, c.location, c.price, c.lon, c.lat,
		       c.author_id, u.username, c.created_at, c.updated_at
		FROM campgrounds c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1
	`, id)
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Location, &c.Price,
		&c.Geometry.Lon, &c.Geometry.Lat, &c.AuthorID, &c.AuthorUsername,
		&c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	images, err := r.imagesFor(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Images = images
	return c, nil
}

func (r *CampgroundRepository) List(ctx context.Context) ([]entity.Campground, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.title, c.description, c.location, c.price, c.lon, c.lat,
		       c.author_id, u.username, c.created_at, c.updated_at
		FROM campgrounds c
		JOIN users u ON u.id = c.author_id
		ORDER BY c.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Campground, 0)
	for rows.Next() {
		var c entity.Campground
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Location, &c.Price,
			&c.Geometry.Lon, &c.Geometry.Lat, &c.AuthorID, &c.AuthorUsername,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		images, err := r.imagesFor(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Images = images
	}
	return out, nil
}

func (r *CampgroundRepository) Update(ctx context.Context, c *entity.Campground) error {
	c.UpdatedAt = time.Now()
	res, err := r.db.Exec(ctx, `
		UPDATE campgrounds
		SET title = $1, description = $2, location = $3, price = $4, updated_at = $5
		WHERE id = $6
	`, c.Title, c.Description, c.Location, c.Price, c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *CampgroundRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM campgrounds WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *CampgroundRepository) AddImages(ctx context.Context, campgroundID string, images []entity.Image) error {
	for _, img := range images {
		if _, err := r.db.Exec(ctx, `
			INSERT INTO campground_images (id, campground_id, url, filename, position)
			VALUES ($1, $2, $3, $4, $5)
		`, img.ID, campgroundID, img.URL, img.Filename, img.Position); err != nil {
			return fmt.Errorf("insert image %s: %w", img.Filename, err)
		}
	}
	return nil
}

func (r *CampgroundRepository) RemoveImages(ctx context.Context, campgroundID string, filenames []string) error {
	if len(filenames) == 0 {
		return nil
	}
	// unknown filenames simply match no rows
	_, err := r.db.Exec(ctx, `
		DELETE FROM campground_images
		WHERE campground_id = $1 AND filename = ANY($2)
	`, campgroundID, filenames)
	return err
}

func (r *CampgroundRepository) imagesFor(ctx context.Context, campgroundID string) ([]entity.Image, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, url, filename, position
		FROM campground_images
		WHERE campground_id = $1
		ORDER BY position
	`, campgroundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]entity.Image, 0)
	for rows.Next() {
		var img entity.Image
		if err := rows.Scan(&img.ID, &img.URL, &img.Filename, &img.Position); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

var _ repository.CampgroundRepository = (*CampgroundRepository)(nil)
