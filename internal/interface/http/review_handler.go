package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/danukusuma/campgrounds-api/internal/application"
	"github.com/danukusuma/campgrounds-api/internal/interface/middleware"
	"github.com/danukusuma/campgrounds-api/pkg/response"
	"github.com/danukusuma/campgrounds-api/pkg/validation"
)

type ReviewHandler struct {
	Svc    *application.ReviewService
	Logger *logrus.Logger
}

func NewReviewHandler(svc *application.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

type createReviewRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Body   string `json:"body" binding:"required"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	r, err := h.Svc.Create(c.Request.Context(), c.Param("id"), req.Rating, req.Body, c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		writeErr(c, err)
		return
	}
	response.Success(c, http.StatusCreated, r, "review created", nil)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), c.Param("id"), c.Param("reviewID"), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		writeErr(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "review deleted", nil)
}
