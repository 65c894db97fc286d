package router

import (
	"github.com/danukusuma/campgrounds-api/internal/application"
	"github.com/danukusuma/campgrounds-api/internal/container"
	pginfra "github.com/danukusuma/campgrounds-api/internal/infrastructure/postgres"
	handlers "github.com/danukusuma/campgrounds-api/internal/interface/http"
	"github.com/danukusuma/campgrounds-api/internal/router/modules"
)

// InitModules builds the services from container singletons and registers
// every feature module with the router registry. Called once at startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	campgroundRepo := pginfra.NewCampgroundRepository(pool)
	reviewRepo := pginfra.NewReviewRepository(pool)
	userRepo := pginfra.NewUserRepository(pool)

	campgroundSvc := application.NewCampgroundService(
		campgroundRepo,
		reviewRepo,
		container.GetImageStore(),
		container.GetGeocoder(),
		container.GetRedis(),
		logger,
	)
	reviewSvc := application.NewReviewService(reviewRepo, campgroundRepo, logger)
	userSvc := application.NewUserService(userRepo, container.GetJWT(), container.GetRedis(), logger)

	campgroundHandler := handlers.NewCampgroundHandler(campgroundSvc, logger)
	reviewHandler := handlers.NewReviewHandler(reviewSvc, logger)
	userHandler := handlers.NewUserHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure)

	r.Add(modules.NewAuth(userHandler, container.GetJWT()))
	r.Add(modules.NewCampground(campgroundHandler, reviewHandler, container.GetJWT()))
}
