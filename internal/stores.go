package internal

import (
	"context"

	cl "album-service/pkg/catalog"
)

type AlbumStore interface {
	ListAlbums(ctx context.Context) (cl.ListAlbumsRes, error)
	ListAlbumsOwnedBy(ctx context.Context, ownerID string) (cl.ListAlbumsRes, error)
	GetAlbum(ctx context.Context, id string) (cl.GetAlbumRes, error)
	CreateAlbum(ctx context.Context, req cl.CreateAlbumRequest, ownerID string) (cl.CreateAlbumResponse, error)
	UpdateAlbum(ctx context.Context, id string, req cl.UpdateAlbumRequest) (cl.UpdateAlbumResponse, error)
	DeleteAlbum(ctx context.Context, id string) error
}

type UserStore interface {
	CreateUser(ctx context.Context, req cl.RegisterRequest, passwordHash string) (cl.User, error)
	GetUser(ctx context.Context, id string) (cl.User, error)
	GetUserByUsername(ctx context.Context, username string) (cl.User, error)
}
