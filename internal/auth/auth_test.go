package auth

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"album-service/internal/mock"
	cl "album-service/pkg/catalog"
)

func testUserSource(t *testing.T, password string) (*mock.UserStore, cl.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error hashing password: %s", err.Error())
	}
	user := cl.User{
		ID:           "user-1",
		Username:     "frank",
		Email:        "frank@example.com",
		PasswordHash: string(hash),
		Role:         cl.RoleUser,
	}
	store := &mock.UserStore{
		GetUserFn: func(_ context.Context, id string) (cl.User, error) {
			if id != user.ID {
				return cl.User{}, cl.ErrNotFound
			}
			return user, nil
		},
		GetUserByUsernameFn: func(_ context.Context, username string) (cl.User, error) {
			if username != user.Username {
				return cl.User{}, cl.ErrNotFound
			}
			return user, nil
		},
	}
	return store, user
}

func TestLogin(t *testing.T) {
	store, user := testUserSource(t, "hunter22")
	a := &Authenticator{
		Users:  store,
		Tokens: NewTokenIssuer([]byte("test-secret"), time.Hour),
	}

	t.Run("unknown username", func(t *testing.T) {
		_, _, err := a.Login(context.Background(), "nobody", "hunter22")
		if err != cl.ErrInvalidCredentials {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := a.Login(context.Background(), "frank", "wrong")
		if err != cl.ErrInvalidCredentials {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("valid credentials", func(t *testing.T) {
		got, token, err := a.Login(context.Background(), "frank", "hunter22")
		if err != nil {
			t.Fatalf("unexpected error logging in: %s", err.Error())
		}
		if got.ID != user.ID {
			t.Fatalf("unexpected user returned: %s", got.ID)
		}
		userID, err := a.Tokens.Verify(token)
		if err != nil {
			t.Fatalf("issued token did not verify: %s", err.Error())
		}
		if userID != user.ID {
			t.Fatalf("token resolved to unexpected user: %s", userID)
		}
	})
}

func TestResolveToken(t *testing.T) {
	store, user := testUserSource(t, "hunter22")
	a := &Authenticator{
		Users:  store,
		Tokens: NewTokenIssuer([]byte("test-secret"), time.Hour),
	}

	t.Run("missing token", func(t *testing.T) {
		_, err := a.ResolveToken(context.Background(), "")
		if err != ErrMissingToken {
			t.Fatalf("expected ErrMissingToken, got %v", err)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := a.ResolveToken(context.Background(), "not-a-token")
		if err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("token for deleted user", func(t *testing.T) {
		token, err := a.Tokens.Issue("user-gone")
		if err != nil {
			t.Fatalf("unexpected error issuing token: %s", err.Error())
		}
		_, err = a.ResolveToken(context.Background(), token)
		if err != ErrUnknownUser {
			t.Fatalf("expected ErrUnknownUser, got %v", err)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := a.Tokens.Issue(user.ID)
		if err != nil {
			t.Fatalf("unexpected error issuing token: %s", err.Error())
		}
		got, err := a.ResolveToken(context.Background(), token)
		if err != nil {
			t.Fatalf("unexpected error resolving token: %s", err.Error())
		}
		if got.Username != user.Username {
			t.Fatalf("unexpected user resolved: %s", got.Username)
		}
	})
}
