package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/danukusuma/campgrounds-api/config"
	"github.com/danukusuma/campgrounds-api/internal/infrastructure/gcs"
	"github.com/danukusuma/campgrounds-api/internal/infrastructure/mapbox"
	"github.com/danukusuma/campgrounds-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire their dependencies from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	imageStore  *gcs.ImageStore
	geocoder    *mapbox.Client
	jwtManager  *helpers.JWTManager
)

func SetConfig(c *config.Config)        { cfg = c }
func GetConfig() *config.Config         { return cfg }
func SetLogger(l *logrus.Logger)        { logger = l }
func GetLogger() *logrus.Logger         { return logger }
func SetPGPool(p *pgxpool.Pool)         { pgPool = p }
func GetPGPool() *pgxpool.Pool          { return pgPool }
func SetRedis(r *redis.Client)          { redisClient = r }
func GetRedis() *redis.Client           { return redisClient }
func SetImageStore(s *gcs.ImageStore)   { imageStore = s }
func GetImageStore() *gcs.ImageStore    { return imageStore }
func SetGeocoder(g *mapbox.Client)      { geocoder = g }
func GetGeocoder() *mapbox.Client       { return geocoder }
func SetJWT(m *helpers.JWTManager)      { jwtManager = m }
func GetJWT() *helpers.JWTManager       { return jwtManager }
