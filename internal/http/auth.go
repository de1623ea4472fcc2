package http

import (
	"net/http"

	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"

	"album-service/internal/auth"
	cl "album-service/pkg/catalog"
)

// Register creates a new user account from a username/email/password
// payload.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	var req cl.RegisterRequest
	if err := httputils.ReadJSON(r.Body, &req); err != nil {
		h.Logger.Error("[Register] error parsing request",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		h.Logger.Error("[Register] invalid registration request",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.Logger.Error("[Register] error hashing password",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, "internal server error", http.StatusInternalServerError)
		return
	}

	user, err := h.UserStore.CreateUser(ctx, req, hash)
	if err != nil {
		if err == cl.ErrUsernameTaken {
			h.Logger.Error("[Register] username already exists",
				"request_id", reqID,
				"username", req.Username,
			)
			_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
			return
		}

		h.Logger.Error("[Register] error creating user",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, "internal server error", http.StatusInternalServerError)
		return
	}

	res := cl.RegisterResponse{
		Message: "Registration successful",
		User:    &user,
	}
	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// Login authenticates a username/password pair and returns the user along
// with a freshly minted bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	var req cl.LoginRequest
	if err := httputils.ReadJSON(r.Body, &req); err != nil {
		h.Logger.Error("[Login] error parsing request",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	user, token, err := h.Auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		if err == cl.ErrInvalidCredentials {
			h.Logger.Debug("[Login] authentication failed",
				"request_id", reqID,
				"username", req.Username,
			)
			_ = httputils.WriteJSONError(w, v, "Authentication failed", http.StatusUnauthorized)
			return
		}

		h.Logger.Error("[Login] error authenticating user",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, "internal server error", http.StatusInternalServerError)
		return
	}

	res := cl.LoginResponse{
		Message: "Login successful",
		User:    &user,
		Token:   token,
	}
	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// Logout acknowledges the logout. Tokens are stateless and expire on their
// own; there is no server-side session to tear down.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	res := cl.LogoutResponse{
		Message: "Logout successful",
	}
	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}
