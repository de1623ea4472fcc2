package http

import (
	"net/http"
	"strings"

	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"

	"album-service/internal/auth"
)

// RequireAuth verifies the request's bearer token and attaches the resolved
// principal to the request context. Any verification failure short-circuits
// the request with a 401.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		v := r.URL.Query()
		reqID := requestid.Get(ctx)

		user, err := h.Auth.ResolveToken(ctx, bearerToken(r))
		if err != nil {
			switch err {
			case auth.ErrMissingToken, auth.ErrInvalidToken, auth.ErrUnknownUser:
				h.Logger.Debug("[RequireAuth] rejected request",
					"request_id", reqID,
					"details", err.Error(),
				)
				_ = httputils.WriteJSONError(w, v, "Unauthorized", http.StatusUnauthorized)
			default:
				h.Logger.Error("[RequireAuth] error resolving token",
					"request_id", reqID,
					"details", err.Error(),
				)
				_ = httputils.WriteJSONError(w, v, "internal server error", http.StatusInternalServerError)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(ctx, user)))
	})
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
