package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httputils "github.com/twitsprout/tools/http"
)

// Handler mounts all the handlers at the appropriate routes and adds any required middleware.
func (h *Handler) Handler() http.Handler {
	r := mux.NewRouter()

	r.Use(httputils.TimeoutMiddleware(1 * time.Minute))
	r.Use(httputils.RequestIDMiddleware)
	r.Use(httputils.RealIPMiddleware)
	r.Use(httputils.LimitReaderMiddleware(1 << 20))
	r.Use(httputils.LoggingMiddleware(h.Logger))
	r.Use(httputils.RecoverMiddleware(h.Logger, httputils.InternalServerErrorHandler(h.Logger)))
	r.Use(httputils.MaxConnectionsMiddleware(5000, httputils.ServiceUnavailableHandler(h.Logger)))
	r.Use(httputils.ConcurrentLimitMiddleware(250, httputils.ServiceUnavailableHandler(h.Logger)))

	r.MethodNotAllowedHandler = httputils.MethodNotAllowedHandler(h.Logger)
	r.NotFoundHandler = httputils.NotFoundHandler(h.Logger)

	versionHandler := httputils.VersionHandler(h.AppName, h.Version, h.Logger)
	r.Methods("GET").Path("/").Name("root").Handler(versionHandler)
	r.Methods("GET").Path("/version").Name("version").Handler(versionHandler)

	r.Methods("POST").Path("/register").Name("register").HandlerFunc(h.Register)
	r.Methods("POST").Path("/login").Name("login").HandlerFunc(h.Login)
	r.Methods("GET").Path("/logout").Name("logout").HandlerFunc(h.Logout)

	albums := r.PathPrefix("/albums").Subrouter()
	albums.Use(h.RequireAuth)
	albums.Methods("GET").Path("").Name("list_albums").HandlerFunc(h.ListAlbums)
	albums.Methods("POST").Path("").Name("create_album").HandlerFunc(h.CreateAlbum)
	albums.Methods("GET").Path("/{id}").Name("get_album").HandlerFunc(h.GetAlbum)
	albums.Methods("PUT").Path("/{id}").Name("update_album").HandlerFunc(h.UpdateAlbum)
	albums.Methods("DELETE").Path("/{id}").Name("delete_album").HandlerFunc(h.DeleteAlbum)

	h.router = r
	return r
}
