package http

import (
	"album-service/internal"
	"album-service/internal/auth"

	"github.com/gorilla/mux"
	"github.com/twitsprout/tools"
)

type Handler struct {
	Version    string
	AppName    string
	router     *mux.Router
	Logger     tools.Logger
	AlbumStore internal.AlbumStore
	UserStore  internal.UserStore
	Auth       *auth.Authenticator
}
