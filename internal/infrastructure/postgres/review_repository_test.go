package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"

	"github.com/danukusuma/campgrounds-api/internal/domain/apperr"
	"github.com/danukusuma/campgrounds-api/internal/domain/entity"
)

func TestReviewCreate(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO reviews`).
		WithArgs("rv-1", "cg-1", "user-2", 4, "Lovely spot.").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	repo := NewReviewRepository(mock)
	rv := &entity.Review{ID: "rv-1", CampgroundID: "cg-1", AuthorID: "user-2", Rating: 4, Body: "Lovely spot."}
	if err := repo.Create(context.Background(), rv); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rv.CreatedAt.IsZero() {
		t.Fatal("expected created_at")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReviewGetByIDNotFound(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`SELECT r.id, r.campground_id`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "campground_id", "author_id", "username", "rating", "body", "created_at",
		}))

	repo := NewReviewRepository(mock)
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReviewListByCampground(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT r.id, r.campground_id, r.author_id, u.username, r.rating, r.body, r.created_at`).
		WithArgs("cg-1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "campground_id", "author_id", "username", "rating", "body", "created_at",
		}).
			AddRow("rv-2", "cg-1", "user-3", "hiker", 5, "Great.", now).
			AddRow("rv-1", "cg-1", "user-2", "camper", 3, "Fine.", now.Add(-time.Hour)))

	repo := NewReviewRepository(mock)
	reviews, err := repo.ListByCampground(context.Background(), "cg-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reviews) != 2 || reviews[0].AuthorUsername != "hiker" {
		t.Fatalf("unexpected reviews: %+v", reviews)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReviewDeleteByCampground(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec(`DELETE FROM reviews WHERE campground_id`).
		WithArgs("cg-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	repo := NewReviewRepository(mock)
	if err := repo.DeleteByCampground(context.Background(), "cg-1"); err != nil {
		t.Fatalf("delete by campground: %v", err)
	}

	// no reviews is not an error
	mock.ExpectExec(`DELETE FROM reviews WHERE campground_id`).
		WithArgs("cg-2").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	if err := repo.DeleteByCampground(context.Background(), "cg-2"); err != nil {
		t.Fatalf("delete by campground (empty): %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReviewDeleteNotFound(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec(`DELETE FROM reviews WHERE id`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewReviewRepository(mock)
	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
