package application

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/danukusuma/campgrounds-api/internal/domain/apperr"
	"github.com/danukusuma/campgrounds-api/internal/domain/entity"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fakeCampgroundRepo struct {
	items map[string]*entity.Campground
}

func newFakeCampgroundRepo() *fakeCampgroundRepo {
	return &fakeCampgroundRepo{items: map[string]*entity.Campground{}}
}

func (f *fakeCampgroundRepo) Create(_ context.Context, c *entity.Campground) error {
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeCampgroundRepo) GetByID(_ context.Context, id string) (*entity.Campground, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *c
	cp.Images = append([]entity.Image(nil), c.Images...)
	return &cp, nil
}

func (f *fakeCampgroundRepo) List(_ context.Context) ([]entity.Campground, error) {
	out := make([]entity.Campground, 0, len(f.items))
	for _, c := range f.items {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCampgroundRepo) Update(_ context.Context, c *entity.Campground) error {
	stored, ok := f.items[c.ID]
	if !ok {
		return apperr.ErrNotFound
	}
	stored.Title = c.Title
	stored.Description = c.Description
	stored.Location = c.Location
	stored.Price = c.Price
	stored.UpdatedAt = time.Now()
	return nil
}

func (f *fakeCampgroundRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeCampgroundRepo) AddImages(_ context.Context, id string, images []entity.Image) error {
	c, ok := f.items[id]
	if !ok {
		return apperr.ErrNotFound
	}
	c.Images = append(c.Images, images...)
	return nil
}

func (f *fakeCampgroundRepo) RemoveImages(_ context.Context, id string, filenames []string) error {
	c, ok := f.items[id]
	if !ok {
		return apperr.ErrNotFound
	}
	kept := c.Images[:0]
	for _, img := range c.Images {
		drop := false
		for _, fn := range filenames {
			if img.Filename == fn {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, img)
		}
	}
	c.Images = kept
	return nil
}

type fakeReviewRepo struct {
	items map[string]*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{items: map[string]*entity.Review{}}
}

func (f *fakeReviewRepo) Create(_ context.Context, r *entity.Review) error {
	r.CreatedAt = time.Now()
	cp := *r
	f.items[r.ID] = &cp
	return nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id string) (*entity.Review, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReviewRepo) ListByCampground(_ context.Context, campgroundID string) ([]entity.Review, error) {
	out := []entity.Review{}
	for _, r := range f.items {
		if r.CampgroundID == campgroundID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeReviewRepo) DeleteByCampground(_ context.Context, campgroundID string) error {
	for id, r := range f.items {
		if r.CampgroundID == campgroundID {
			delete(f.items, id)
		}
	}
	return nil
}

// fakeImageStore records uploads and deletions. failUploadAfter > 0 makes
// the (failUploadAfter+1)-th upload fail.
type fakeImageStore struct {
	uploads         []string
	deleted         []string
	failUploadAfter int
	failDelete      bool
}

func (f *fakeImageStore) Upload(_ context.Context, _ io.Reader, originalName, _ string) (entity.Image, error) {
	if f.failUploadAfter > 0 && len(f.uploads) >= f.failUploadAfter {
		return entity.Image{}, fmt.Errorf("%w: upload refused", apperr.ErrAdapter)
	}
	name := fmt.Sprintf("campgrounds/%d-%s", len(f.uploads), originalName)
	f.uploads = append(f.uploads, name)
	return entity.Image{ID: name, URL: "https://img.test/" + name, Filename: name}, nil
}

func (f *fakeImageStore) Delete(_ context.Context, filename string) error {
	if f.failDelete {
		return fmt.Errorf("%w: delete refused", apperr.ErrAdapter)
	}
	for _, up := range f.uploads {
		if up == filename {
			f.deleted = append(f.deleted, filename)
			return nil
		}
	}
	return apperr.ErrNotFound
}

// fakeGeocoder resolves anything except locations containing "nowhere".
type fakeGeocoder struct {
	calls int
}

func (f *fakeGeocoder) Forward(_ context.Context, query string) (entity.Point, error) {
	f.calls++
	if strings.Contains(strings.ToLower(query), "nowhere") {
		return entity.Point{}, apperr.ErrLocationNotFound
	}
	return entity.Point{Lon: -121.3153, Lat: 44.0582}, nil
}

type fakeUserRepo struct {
	items map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.items[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.items[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.items {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range f.items {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}
