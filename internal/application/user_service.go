package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/danukusuma/campgrounds-api/internal/domain/apperr"
	"github.com/danukusuma/campgrounds-api/internal/domain/entity"
	repo "github.com/danukusuma/campgrounds-api/internal/domain/repository"
	"github.com/danukusuma/campgrounds-api/pkg/helpers"
)

// UserService handles registration, login, and profile reads. Password
// hashing is an explicit step here, not a storage-layer hook.
type UserService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewUserService(users repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *UserService {
	return &UserService{Repo: users, JWT: jwt, Redis: rdb, Logger: logger}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// Register creates an account with a bcrypt-hashed password. Username and
// email must both be unused.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if l := len(username); l < 3 || l > 30 {
		return nil, fmt.Errorf("%w: username must be 3-30 characters", apperr.ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email is invalid", apperr.ErrValidation)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", apperr.ErrValidation)
	}

	taken, err := s.Repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: user with this email or username already exists", apperr.ErrValidation)
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user registered")
	}
	return u, nil
}

// Authenticate validates the login (username or email) and password.
func (s *UserService) Authenticate(ctx context.Context, login, password string) (*entity.User, error) {
	var (
		u   *entity.User
		err error
	)
	if strings.Contains(login, "@") {
		u, err = s.Repo.GetByEmail(ctx, strings.ToLower(login))
	} else {
		u, err = s.Repo.GetByUsername(ctx, login)
	}
	if err != nil || u == nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperr.ErrForbidden)
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, fmt.Errorf("%w: invalid credentials", apperr.ErrForbidden)
	}
	return u, nil
}

// IssueTokens generates access/refresh tokens and records a session in Redis.
func (s *UserService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate refresh token failed")
		}
		return TokenPair{}, err
	}

	if s.Redis != nil {
		fields := map[string]any{
			"user_id":    u.ID,
			"username":   u.Username,
			"email":      u.Email,
			"sid":        sid,
			"logged_in":  true,
			"created_at": nowRFC3339(),
		}
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, 24*time.Hour)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

func (s *UserService) Login(ctx context.Context, login, password string) (*entity.User, TokenPair, error) {
	u, err := s.Authenticate(ctx, login, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Logout drops the server-side session.
func (s *UserService) Logout(ctx context.Context, userID string) {
	if s.Redis == nil || userID == "" {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, sessionKey(userID)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("session delete failed")
	}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, apperr.ErrNotFound
	}
	return u, nil
}
