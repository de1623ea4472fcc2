package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"

	"album-service/internal/auth"
	cl "album-service/pkg/catalog"
)

// ListAlbums returns the albums visible to the authenticated user. Admins
// see the whole store; everyone else sees their own albums plus unowned
// ones. Filtering happens at the query, there is no per-item 403.
func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	user, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		_ = httputils.WriteJSONError(w, v, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var res cl.ListAlbumsRes
	var err error
	if user.IsAdmin() {
		res, err = h.AlbumStore.ListAlbums(ctx)
	} else {
		res, err = h.AlbumStore.ListAlbumsOwnedBy(ctx, user.ID)
	}
	if err != nil {
		h.Logger.Error("[ListAlbums] error getting albums list",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, "internal server error", http.StatusInternalServerError)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// GetAlbum returns the album matching the path id, subject to the read
// policy.
func (h *Handler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	user, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		_ = httputils.WriteJSONError(w, v, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := parseAlbumID(r)
	if err != nil {
		h.Logger.Error("[GetAlbum] error parsing request",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.AlbumStore.GetAlbum(ctx, id)
	if err != nil {
		if err == cl.ErrNotFound {
			h.Logger.Debug("[GetAlbum] no album found",
				"request_id", reqID,
				"album_id", id,
			)
			_ = httputils.WriteJSONError(w, v, "Album not found", http.StatusNotFound)
			return
		}

		h.Logger.Error("[GetAlbum] error getting album",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, "internal server error", http.StatusInternalServerError)
		return
	}

	if !auth.CanRead(user, *res.Album) {
		_ = httputils.WriteJSONError(w, v, "Forbidden: you are not allowed to access this album", http.StatusForbidden)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// CreateAlbum creates an album owned by the authenticated user. Any
// authenticated user may create; the owner in the payload is ignored.
func (h *Handler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	user, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		_ = httputils.WriteJSONError(w, v, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req cl.CreateAlbumRequest
	if err := httputils.ReadJSON(r.Body, &req); err != nil {
		h.Logger.Error("[CreateAlbum] error parsing request",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		h.Logger.Error("[CreateAlbum] invalid album",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.AlbumStore.CreateAlbum(ctx, req, user.ID)
	if err != nil {
		h.Logger.Error("[CreateAlbum] error creating album",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, "internal server error", http.StatusInternalServerError)
		return
	}

	res.Message = "Album created successfully"
	_ = httputils.WriteJSON(w, v, res, http.StatusCreated)
}

// UpdateAlbum applies the mutable fields to an album the authenticated user
// may write. Ownership never changes on update.
func (h *Handler) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	user, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		_ = httputils.WriteJSONError(w, v, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := parseAlbumID(r)
	if err != nil {
		h.Logger.Error("[UpdateAlbum] error parsing request",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	var req cl.UpdateAlbumRequest
	if err := httputils.ReadJSON(r.Body, &req); err != nil {
		h.Logger.Error("[UpdateAlbum] error parsing request",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		h.Logger.Error("[UpdateAlbum] invalid album",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	existing, err := h.AlbumStore.GetAlbum(ctx, id)
	if err != nil {
		if err == cl.ErrNotFound {
			_ = httputils.WriteJSONError(w, v, "Album not found", http.StatusNotFound)
			return
		}

		h.Logger.Error("[UpdateAlbum] error getting album",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, "internal server error", http.StatusInternalServerError)
		return
	}

	if !auth.CanWrite(user, *existing.Album) {
		_ = httputils.WriteJSONError(w, v, "Forbidden: you are not allowed to update this album", http.StatusForbidden)
		return
	}

	res, err := h.AlbumStore.UpdateAlbum(ctx, id, req)
	if err != nil {
		if err == cl.ErrNotFound {
			_ = httputils.WriteJSONError(w, v, "Album not found", http.StatusNotFound)
			return
		}

		h.Logger.Error("[UpdateAlbum] error updating album",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, "internal server error", http.StatusInternalServerError)
		return
	}

	res.Message = "Album updated successfully"
	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// DeleteAlbum removes an album. Admins delete unconditionally; everyone else
// must own the album.
func (h *Handler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	user, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		_ = httputils.WriteJSONError(w, v, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := parseAlbumID(r)
	if err != nil {
		h.Logger.Error("[DeleteAlbum] error parsing request",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	existing, err := h.AlbumStore.GetAlbum(ctx, id)
	if err != nil {
		if err == cl.ErrNotFound {
			_ = httputils.WriteJSONError(w, v, "Album not found", http.StatusNotFound)
			return
		}

		h.Logger.Error("[DeleteAlbum] error getting album",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, "internal server error", http.StatusInternalServerError)
		return
	}

	if !auth.CanWrite(user, *existing.Album) {
		_ = httputils.WriteJSONError(w, v, "Forbidden: you are not allowed to delete this album", http.StatusForbidden)
		return
	}

	if err := h.AlbumStore.DeleteAlbum(ctx, id); err != nil {
		if err == cl.ErrNotFound {
			_ = httputils.WriteJSONError(w, v, "Album not found", http.StatusNotFound)
			return
		}

		h.Logger.Error("[DeleteAlbum] error deleting album",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, "internal server error", http.StatusInternalServerError)
		return
	}

	res := cl.DeleteAlbumResponse{
		Message: "Album deleted successfully",
	}
	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

func parseAlbumID(r *http.Request) (string, error) {
	id := mux.Vars(r)["id"]
	if id == "" || id == "-" {
		return "", errors.New("[parseAlbumID] album id must be provided")
	}
	return id, nil
}
