package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/danukusuma/campgrounds-api/internal/domain/apperr"
	"github.com/danukusuma/campgrounds-api/internal/domain/entity"
	repo "github.com/danukusuma/campgrounds-api/internal/domain/repository"
	"github.com/danukusuma/campgrounds-api/pkg/helpers"
)

const (
	listCacheKey = "campgrounds:index"
	listCacheTTL = time.Minute
)

// CampgroundService orchestrates the campground lifecycle: geocode-first
// creation, image upload/removal through the store adapter, and the review
// cascade on delete.
type CampgroundService struct {
	Campgrounds repo.CampgroundRepository
	Reviews     repo.ReviewRepository
	Images      ImageStore
	Geocoder    Geocoder
	Redis       *redis.Client
	Logger      *logrus.Logger
}

func NewCampgroundService(campgrounds repo.CampgroundRepository, reviews repo.ReviewRepository, images ImageStore, geocoder Geocoder, rdb *redis.Client, logger *logrus.Logger) *CampgroundService {
	return &CampgroundService{
		Campgrounds: campgrounds,
		Reviews:     reviews,
		Images:      images,
		Geocoder:    geocoder,
		Redis:       rdb,
		Logger:      logger,
	}
}

// CampgroundInput carries the scalar fields shared by Create and Update.
type CampgroundInput struct {
	Title       string
	Price       float64
	Location    string
	Description string
}

func (in CampgroundInput) validate() error {
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", apperr.ErrValidation)
	}
	if in.Location == "" {
		return fmt.Errorf("%w: location is required", apperr.ErrValidation)
	}
	if in.Description == "" {
		return fmt.Errorf("%w: description is required", apperr.ErrValidation)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", apperr.ErrValidation)
	}
	return nil
}

func (s *CampgroundService) List(ctx context.Context) ([]entity.Campground, error) {
	if s.Redis != nil {
		var cached []entity.Campground
		if hit, err := helpers.RedisGetJSON(ctx, s.Redis, listCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}
	out, err := s.Campgrounds.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, listCacheKey, out, listCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("campground list cache set failed")
		}
	}
	return out, nil
}

// Get loads a campground with its images and reviews. Review membership is
// derived from reviews.campground_id, never from a cached id list.
func (s *CampgroundService) Get(ctx context.Context, id string) (*entity.Campground, error) {
	c, err := s.Campgrounds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	reviews, err := s.Reviews.ListByCampground(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Reviews = reviews
	return c, nil
}

// Create validates input, geocodes the location, uploads images, and
// persists the new campground owned by callerID. Geocoding runs before any
// upload so a bad location never costs irreversible image writes.
func (s *CampgroundService) Create(ctx context.Context, in CampgroundInput, files []ImageUpload, callerID string) (*entity.Campground, error) {
	if callerID == "" {
		return nil, apperr.ErrForbidden
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	point, err := s.Geocoder.Forward(ctx, in.Location)
	if err != nil {
		return nil, err
	}

	images, err := s.uploadAll(ctx, files, 0)
	if err != nil {
		return nil, err
	}

	c := &entity.Campground{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Price:       in.Price,
		Geometry:    point,
		Images:      images,
		AuthorID:    callerID,
	}
	if err := s.Campgrounds.Create(ctx, c); err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"campground_id": c.ID, "author_id": callerID}).Info("campground created")
	}
	return c, nil
}

// Update edits scalar fields and the image set of an owned campground.
// The stored geometry is immutable: a changed location text is saved as-is
// without re-geocoding.
func (s *CampgroundService) Update(ctx context.Context, id string, in CampgroundInput, newFiles []ImageUpload, deleteFilenames []string, callerID string) (*entity.Campground, error) {
	c, err := s.Campgrounds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(callerID, c.AuthorID); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	if err := s.removeImages(ctx, c, deleteFilenames); err != nil {
		return nil, err
	}

	nextPos := 0
	for _, img := range c.Images {
		if img.Position >= nextPos {
			nextPos = img.Position + 1
		}
	}
	added, err := s.uploadAll(ctx, newFiles, nextPos)
	if err != nil {
		return nil, err
	}
	if len(added) > 0 {
		if err := s.Campgrounds.AddImages(ctx, c.ID, added); err != nil {
			return nil, err
		}
		c.Images = append(c.Images, added...)
	}

	c.Title = in.Title
	c.Price = in.Price
	c.Location = in.Location
	c.Description = in.Description
	if err := s.Campgrounds.Update(ctx, c); err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)
	return c, nil
}

// Delete removes an owned campground, its stored images (best effort), and
// every review referencing it. Children go first so a crash mid-way leaves
// at worst an orphaned parent record, never unreachable children.
func (s *CampgroundService) Delete(ctx context.Context, id, callerID string) error {
	c, err := s.Campgrounds.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := Authorize(callerID, c.AuthorID); err != nil {
		return err
	}

	for _, img := range c.Images {
		if err := s.Images.Delete(ctx, img.Filename); err != nil && !errors.Is(err, apperr.ErrNotFound) {
			// best effort: leave the object for reconciliation
			if s.Logger != nil {
				s.Logger.WithError(err).WithFields(logrus.Fields{
					"campground_id": id,
					"filename":      img.Filename,
				}).Warn("image delete failed, object left behind")
			}
		}
	}

	if err := s.Reviews.DeleteByCampground(ctx, id); err != nil {
		return fmt.Errorf("cascade reviews for campground %s: %w", id, err)
	}
	if err := s.Campgrounds.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListCache(ctx)
	if s.Logger != nil {
		s.Logger.WithField("campground_id", id).Info("campground deleted")
	}
	return nil
}

// uploadAll pushes files through the store in input order, skipping empty
// entries. A mid-sequence failure aborts and surfaces the error; uploads
// already made for this attempt are not rolled back, only logged so the
// orphaned objects can be reconciled later.
func (s *CampgroundService) uploadAll(ctx context.Context, files []ImageUpload, startPos int) ([]entity.Image, error) {
	images := make([]entity.Image, 0, len(files))
	for _, f := range files {
		if f.Size == 0 {
			continue
		}
		img, err := s.Images.Upload(ctx, f.Reader, f.Filename, f.ContentType)
		if err != nil {
			if s.Logger != nil && len(images) > 0 {
				names := make([]string, len(images))
				for i, done := range images {
					names[i] = done.Filename
				}
				s.Logger.WithField("filenames", names).Warn("upload failed mid-sequence, prior uploads orphaned")
			}
			return nil, err
		}
		img.Position = startPos + len(images)
		images = append(images, img)
	}
	return images, nil
}

// removeImages deletes the listed identifiers via the adapter and drops the
// matching rows. Identifiers not on the campground are an idempotent no-op.
func (s *CampgroundService) removeImages(ctx context.Context, c *entity.Campground, filenames []string) error {
	if len(filenames) == 0 {
		return nil
	}
	removed := make([]string, 0, len(filenames))
	var hardErr error
	for _, fn := range filenames {
		if err := s.Images.Delete(ctx, fn); err != nil && !errors.Is(err, apperr.ErrNotFound) {
			hardErr = err
			break
		}
		removed = append(removed, fn)
	}
	if len(removed) > 0 {
		if err := s.Campgrounds.RemoveImages(ctx, c.ID, removed); err != nil {
			return err
		}
		kept := c.Images[:0]
		for _, img := range c.Images {
			if !contains(removed, img.Filename) {
				kept = append(kept, img)
			}
		}
		c.Images = kept
	}
	return hardErr
}

func (s *CampgroundService) invalidateListCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, listCacheKey); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("campground list cache invalidation failed")
	}
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
