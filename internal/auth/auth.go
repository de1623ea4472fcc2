package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	cl "album-service/pkg/catalog"
)

// UserSource resolves stored user records for both credential strategies.
type UserSource interface {
	GetUser(ctx context.Context, id string) (cl.User, error)
	GetUserByUsername(ctx context.Context, username string) (cl.User, error)
}

// Authenticator resolves a principal from either of the two credential
// strategies: a username/password pair at login, or a bearer token on every
// protected request. Both paths produce the same User shape.
type Authenticator struct {
	Users  UserSource
	Tokens *TokenIssuer
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// Login verifies the username/password pair and mints a bearer token for the
// resolved user. An unknown username and a wrong password both come back as
// ErrInvalidCredentials.
func (a *Authenticator) Login(ctx context.Context, username, password string) (cl.User, string, error) {
	user, err := a.Users.GetUserByUsername(ctx, username)
	if err != nil {
		if err == cl.ErrNotFound {
			return cl.User{}, "", cl.ErrInvalidCredentials
		}
		return cl.User{}, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return cl.User{}, "", cl.ErrInvalidCredentials
	}
	token, err := a.Tokens.Issue(user.ID)
	if err != nil {
		return cl.User{}, "", err
	}
	return user, token, nil
}

// ResolveToken verifies a bearer token and resolves it back to the user it
// was issued for.
func (a *Authenticator) ResolveToken(ctx context.Context, raw string) (cl.User, error) {
	if raw == "" {
		return cl.User{}, ErrMissingToken
	}
	userID, err := a.Tokens.Verify(raw)
	if err != nil {
		return cl.User{}, err
	}
	user, err := a.Users.GetUser(ctx, userID)
	if err != nil {
		if err == cl.ErrNotFound {
			return cl.User{}, ErrUnknownUser
		}
		return cl.User{}, err
	}
	return user, nil
}
