package application

import (
	"context"
	"errors"
	"testing"

	"github.com/danukusuma/campgrounds-api/internal/domain/apperr"
)

func newReviewFixture(t *testing.T) (*ReviewService, *fakeReviewRepo, string) {
	t.Helper()
	campgrounds := newFakeCampgroundRepo()
	reviews := newFakeReviewRepo()
	campgroundSvc := NewCampgroundService(campgrounds, reviews, &fakeImageStore{}, &fakeGeocoder{}, nil, testLogger())
	c, err := campgroundSvc.Create(context.Background(), validInput(), nil, "owner-1")
	if err != nil {
		t.Fatalf("fixture campground: %v", err)
	}
	return NewReviewService(reviews, campgrounds, testLogger()), reviews, c.ID
}

func TestReviewRatingBounds(t *testing.T) {
	svc, _, campgroundID := newReviewFixture(t)

	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.Create(context.Background(), campgroundID, rating, "ok body", "user-2"); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("rating %d: err = %v, want ErrValidation", rating, err)
		}
	}
	// boundaries are inclusive
	for _, rating := range []int{1, 5} {
		if _, err := svc.Create(context.Background(), campgroundID, rating, "ok body", "user-2"); err != nil {
			t.Fatalf("rating %d: unexpected err %v", rating, err)
		}
	}
}

func TestReviewEmptyBodyRejected(t *testing.T) {
	svc, repo, campgroundID := newReviewFixture(t)
	if _, err := svc.Create(context.Background(), campgroundID, 3, "", "user-2"); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if len(repo.items) != 0 {
		t.Fatal("invalid review persisted")
	}
}

func TestReviewOnMissingCampground(t *testing.T) {
	svc, _, _ := newReviewFixture(t)
	if _, err := svc.Create(context.Background(), "missing-id", 3, "body", "user-2"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReviewOwnCampgroundAllowed(t *testing.T) {
	svc, _, campgroundID := newReviewFixture(t)
	if _, err := svc.Create(context.Background(), campgroundID, 5, "My own place is great.", "owner-1"); err != nil {
		t.Fatalf("self-review should be allowed: %v", err)
	}
}

func TestReviewDeleteOnlyByAuthor(t *testing.T) {
	svc, repo, campgroundID := newReviewFixture(t)
	r, err := svc.Create(context.Background(), campgroundID, 2, "Too crowded.", "user-2")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), campgroundID, r.ID, "user-3"); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if _, err := repo.GetByID(context.Background(), r.ID); err != nil {
		t.Fatal("review removed by forbidden delete")
	}

	// campground owner is not the review author either
	if err := svc.Delete(context.Background(), campgroundID, r.ID, "owner-1"); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("owner delete: err = %v, want ErrForbidden", err)
	}

	if err := svc.Delete(context.Background(), campgroundID, r.ID, "user-2"); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), r.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatal("review still present after author delete")
	}
}

func TestReviewDeleteCampgroundMismatch(t *testing.T) {
	svc, _, campgroundID := newReviewFixture(t)
	r, err := svc.Create(context.Background(), campgroundID, 3, "Fine.", "user-2")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(context.Background(), "some-other-campground", r.ID, "user-2"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound on campground mismatch", err)
	}
}

func TestReviewUnauthenticatedCreate(t *testing.T) {
	svc, _, campgroundID := newReviewFixture(t)
	if _, err := svc.Create(context.Background(), campgroundID, 3, "body", ""); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}
