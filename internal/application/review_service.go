package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/danukusuma/campgrounds-api/internal/domain/apperr"
	"github.com/danukusuma/campgrounds-api/internal/domain/entity"
	repo "github.com/danukusuma/campgrounds-api/internal/domain/repository"
)

// ReviewService orchestrates review creation and deletion. Membership on
// the parent is derived from the review's campground reference, so neither
// operation touches the campground record.
type ReviewService struct {
	Reviews     repo.ReviewRepository
	Campgrounds repo.CampgroundRepository
	Logger      *logrus.Logger
}

func NewReviewService(reviews repo.ReviewRepository, campgrounds repo.CampgroundRepository, logger *logrus.Logger) *ReviewService {
	return &ReviewService{Reviews: reviews, Campgrounds: campgrounds, Logger: logger}
}

// Create adds a review to an existing campground. Any authenticated user
// may review any campground, including their own.
func (s *ReviewService) Create(ctx context.Context, campgroundID string, rating int, body, callerID string) (*entity.Review, error) {
	if callerID == "" {
		return nil, apperr.ErrForbidden
	}
	if _, err := s.Campgrounds.GetByID(ctx, campgroundID); err != nil {
		return nil, err
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", apperr.ErrValidation)
	}
	if body == "" {
		return nil, fmt.Errorf("%w: body is required", apperr.ErrValidation)
	}

	r := &entity.Review{
		ID:           uuid.NewString(),
		CampgroundID: campgroundID,
		AuthorID:     callerID,
		Rating:       rating,
		Body:         body,
	}
	if err := s.Reviews.Create(ctx, r); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"review_id": r.ID, "campground_id": campgroundID}).Info("review created")
	}
	return r, nil
}

// Delete removes a review. Only the review's author may delete it;
// campground ownership is irrelevant. A review id that does not belong to
// the given campground resolves as not found.
func (s *ReviewService) Delete(ctx context.Context, campgroundID, reviewID, callerID string) error {
	r, err := s.Reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if r.CampgroundID != campgroundID {
		return apperr.ErrNotFound
	}
	if err := Authorize(callerID, r.AuthorID); err != nil {
		return err
	}
	return s.Reviews.Delete(ctx, reviewID)
}
