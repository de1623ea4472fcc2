package mock

import (
	"context"

	cl "album-service/pkg/catalog"
)

// UserStore implements the user store interface for mocking purposes.
type UserStore struct {
	CreateUserFn        func(ctx context.Context, req cl.RegisterRequest, passwordHash string) (cl.User, error)
	GetUserFn           func(ctx context.Context, id string) (cl.User, error)
	GetUserByUsernameFn func(ctx context.Context, username string) (cl.User, error)
}

// CreateUser proxies the request to the CreateUserFn that's injected when
// the mock store is created.
func (s *UserStore) CreateUser(ctx context.Context, req cl.RegisterRequest, passwordHash string) (cl.User, error) {
	return s.CreateUserFn(ctx, req, passwordHash)
}

// GetUser proxies the request to the GetUserFn that's injected when the mock
// store is created.
func (s *UserStore) GetUser(ctx context.Context, id string) (cl.User, error) {
	return s.GetUserFn(ctx, id)
}

// GetUserByUsername proxies the request to the GetUserByUsernameFn that's
// injected when the mock store is created.
func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (cl.User, error) {
	return s.GetUserByUsernameFn(ctx, username)
}
