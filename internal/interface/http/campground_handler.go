package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/danukusuma/campgrounds-api/internal/application"
	"github.com/danukusuma/campgrounds-api/internal/domain/apperr"
	"github.com/danukusuma/campgrounds-api/internal/domain/entity"
	"github.com/danukusuma/campgrounds-api/internal/interface/middleware"
	"github.com/danukusuma/campgrounds-api/pkg/response"
)

type CampgroundHandler struct {
	Svc    *application.CampgroundService
	Logger *logrus.Logger
}

func NewCampgroundHandler(svc *application.CampgroundService, logger *logrus.Logger) *CampgroundHandler {
	return &CampgroundHandler{Svc: svc, Logger: logger}
}

// campgroundListItem decorates a campground with the thumbnail of its
// first image for index pages.
type campgroundListItem struct {
	entity.Campground
	Thumbnail string `json:"thumbnail,omitempty"`
}

func (h *CampgroundHandler) List(c *gin.Context) {
	campgrounds, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	items := make([]campgroundListItem, len(campgrounds))
	for i, cg := range campgrounds {
		items[i] = campgroundListItem{Campground: cg}
		if len(cg.Images) > 0 {
			items[i].Thumbnail = cg.Images[0].Thumbnail()
		}
	}
	response.Success(c, http.StatusOK, items, "campgrounds", nil)
}

func (h *CampgroundHandler) Get(c *gin.Context) {
	cg, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, cg, "campground", nil)
}

func (h *CampgroundHandler) Create(c *gin.Context) {
	in, files, _, ok := h.bindForm(c)
	if !ok {
		return
	}
	uploads, closeAll := openUploads(files)
	defer closeAll()

	cg, err := h.Svc.Create(c.Request.Context(), in, uploads, c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		writeErr(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cg, "campground created", nil)
}

func (h *CampgroundHandler) Update(c *gin.Context) {
	in, files, deleteImages, ok := h.bindForm(c)
	if !ok {
		return
	}
	uploads, closeAll := openUploads(files)
	defer closeAll()

	cg, err := h.Svc.Update(c.Request.Context(), c.Param("id"), in, uploads, deleteImages, c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		writeErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, cg, "campground updated", nil)
}

func (h *CampgroundHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), c.GetString(middleware.CtxUserIDKey)); err != nil {
		writeErr(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "campground deleted", nil)
}

// bindForm parses the multipart payload shared by Create and Update:
// scalar fields, new image files under "images", and identifiers to drop
// under "deleteImages".
func (h *CampgroundHandler) bindForm(c *gin.Context) (application.CampgroundInput, []*multipart.FileHeader, []string, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid multipart payload", err.Error())
		return application.CampgroundInput{}, nil, nil, false
	}
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"price": "must be a valid number"})
		return application.CampgroundInput{}, nil, nil, false
	}
	in := application.CampgroundInput{
		Title:       c.PostForm("title"),
		Price:       price,
		Location:    c.PostForm("location"),
		Description: c.PostForm("description"),
	}
	return in, form.File["images"], form.Value["deleteImages"], true
}

// openUploads opens the form files lazily consumed by the service. The
// returned closer releases whatever was opened, including on error paths.
func openUploads(files []*multipart.FileHeader) ([]application.ImageUpload, func()) {
	uploads := make([]application.ImageUpload, 0, len(files))
	opened := make([]multipart.File, 0, len(files))
	for _, fh := range files {
		if fh.Size == 0 {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			continue
		}
		opened = append(opened, f)
		uploads = append(uploads, application.ImageUpload{
			Reader:      f,
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
		})
	}
	return uploads, func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
}

// writeErr maps the service error taxonomy onto HTTP statuses.
func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		response.Error[any](c, http.StatusBadRequest, "invalid payload", err.Error())
	case errors.Is(err, apperr.ErrLocationNotFound):
		response.Error[any](c, http.StatusBadRequest, "location not found", nil)
	case errors.Is(err, apperr.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, apperr.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, "not authorized", nil)
	case errors.Is(err, apperr.ErrAdapter):
		response.Error[any](c, http.StatusBadGateway, "upstream failure", nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}
