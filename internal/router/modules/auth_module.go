package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/danukusuma/campgrounds-api/internal/container"
	handlers "github.com/danukusuma/campgrounds-api/internal/interface/http"
	"github.com/danukusuma/campgrounds-api/internal/interface/middleware"
	"github.com/danukusuma/campgrounds-api/pkg/helpers"
)

// AuthModule wires account routes.
// Public: POST /api/register, POST /api/login
// Protected: POST /api/logout, GET /api/profile
type AuthModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewAuth(h *handlers.UserHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	registerLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(rdb, m.JWT))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/profile", m.Handler.Profile)
	}
}
