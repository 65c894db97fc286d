package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/danukusuma/campgrounds-api/internal/container"
	handlers "github.com/danukusuma/campgrounds-api/internal/interface/http"
	"github.com/danukusuma/campgrounds-api/internal/interface/middleware"
	"github.com/danukusuma/campgrounds-api/pkg/helpers"
)

// CampgroundModule wires listing routes and their nested review routes.
// Reads are public; every mutation requires an authenticated caller and
// goes through the ownership checks in the services.
type CampgroundModule struct {
	Campgrounds *handlers.CampgroundHandler
	Reviews     *handlers.ReviewHandler
	JWT         *helpers.JWTManager
}

func NewCampground(cg *handlers.CampgroundHandler, rv *handlers.ReviewHandler, jwt *helpers.JWTManager) *CampgroundModule {
	return &CampgroundModule{Campgrounds: cg, Reviews: rv, JWT: jwt}
}

func (m *CampgroundModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	rg.GET("/campgrounds", m.Campgrounds.List)
	rg.GET("/campgrounds/:id", m.Campgrounds.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(rdb, m.JWT))
	auth.Use(
		middleware.RateLimit(rdb, 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/campgrounds", m.Campgrounds.Create)
		auth.PUT("/campgrounds/:id", m.Campgrounds.Update)
		auth.DELETE("/campgrounds/:id", m.Campgrounds.Delete)

		auth.POST("/campgrounds/:id/reviews", m.Reviews.Create)
		auth.DELETE("/campgrounds/:id/reviews/:reviewID", m.Reviews.Delete)
	}
}
