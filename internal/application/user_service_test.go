package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danukusuma/campgrounds-api/internal/domain/apperr"
	"github.com/danukusuma/campgrounds-api/pkg/helpers"
)

func newUserFixture() (*UserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwt := helpers.NewJWTManager("test-access", "test-refresh", time.Hour, 24*time.Hour)
	return NewUserService(repo, jwt, nil, testLogger()), repo
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, _ := newUserFixture()

	u, err := svc.Register(context.Background(), "camper", "Camper@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Password == "hunter22" {
		t.Fatal("password stored in plaintext")
	}
	if !helpers.CompareHashAndPassword(u.Password, "hunter22") {
		t.Fatal("stored hash does not match the plaintext")
	}
	if u.Email != "camper@example.com" {
		t.Fatalf("email = %q, want lowercased", u.Email)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := newUserFixture()
	if _, err := svc.Register(context.Background(), "camper", "camper@example.com", "hunter22"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Register(context.Background(), "camper", "other@example.com", "hunter22"); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("duplicate username: err = %v, want ErrValidation", err)
	}
	if _, err := svc.Register(context.Background(), "other", "camper@example.com", "hunter22"); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("duplicate email: err = %v, want ErrValidation", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newUserFixture()
	cases := []struct {
		name               string
		username, email    string
		password           string
	}{
		{"short username", "ab", "a@b.com", "hunter22"},
		{"bad email", "camper", "not-an-email", "hunter22"},
		{"short password", "camper", "a@b.com", "12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tc.username, tc.email, tc.password); !errors.Is(err, apperr.ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestLoginByUsernameAndEmail(t *testing.T) {
	svc, _ := newUserFixture()
	if _, err := svc.Register(context.Background(), "camper", "camper@example.com", "hunter22"); err != nil {
		t.Fatalf("register: %v", err)
	}

	for _, login := range []string{"camper", "camper@example.com"} {
		u, pair, err := svc.Login(context.Background(), login, "hunter22")
		if err != nil {
			t.Fatalf("login %q: %v", login, err)
		}
		if u.Username != "camper" {
			t.Fatalf("login %q returned user %q", login, u.Username)
		}
		if pair.AccessToken == "" || pair.RefreshToken == "" {
			t.Fatalf("login %q returned empty token pair", login)
		}
	}

	if _, _, err := svc.Login(context.Background(), "camper", "wrong-password"); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("wrong password: err = %v, want ErrForbidden", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost", "hunter22"); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("unknown user: err = %v, want ErrForbidden", err)
	}
}
