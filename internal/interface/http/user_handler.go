package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/danukusuma/campgrounds-api/internal/application"
	"github.com/danukusuma/campgrounds-api/internal/interface/middleware"
	"github.com/danukusuma/campgrounds-api/pkg/helpers"
	"github.com/danukusuma/campgrounds-api/pkg/response"
	"github.com/danukusuma/campgrounds-api/pkg/validation"
)

type UserHandler struct {
	Svc     *application.UserService
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeErr(c, err)
		return
	}
	pair, err := h.Svc.IssueTokens(c.Request.Context(), u)
	if err != nil {
		writeErr(c, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusCreated, gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	}, "user registered", nil)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, pair, err := h.Svc.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	}, "login successful", nil)
}

func (h *UserHandler) Logout(c *gin.Context) {
	h.Svc.Logout(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "logged out", nil)
}

func (h *UserHandler) Profile(c *gin.Context) {
	u, err := h.Svc.Profile(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		writeErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"created_at": u.CreatedAt,
	}, "profile", nil)
}
