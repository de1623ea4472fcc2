package auth

import (
	"context"

	cl "album-service/pkg/catalog"
)

type principalKey struct{}

// WithPrincipal returns a context carrying the authenticated user.
func WithPrincipal(ctx context.Context, user cl.User) context.Context {
	return context.WithValue(ctx, principalKey{}, user)
}

// PrincipalFromContext extracts the authenticated user set by the auth
// middleware.
func PrincipalFromContext(ctx context.Context) (cl.User, bool) {
	user, ok := ctx.Value(principalKey{}).(cl.User)
	return user, ok
}
