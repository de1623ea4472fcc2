package mock

import (
	"context"

	cl "album-service/pkg/catalog"
)

// AlbumStore implements the album store interface for mocking purposes.
type AlbumStore struct {
	ListAlbumsFn        func(ctx context.Context) (cl.ListAlbumsRes, error)
	ListAlbumsOwnedByFn func(ctx context.Context, ownerID string) (cl.ListAlbumsRes, error)
	GetAlbumFn          func(ctx context.Context, id string) (cl.GetAlbumRes, error)
	CreateAlbumFn       func(ctx context.Context, req cl.CreateAlbumRequest, ownerID string) (cl.CreateAlbumResponse, error)
	UpdateAlbumFn       func(ctx context.Context, id string, req cl.UpdateAlbumRequest) (cl.UpdateAlbumResponse, error)
	DeleteAlbumFn       func(ctx context.Context, id string) error
}

// ListAlbums proxies the request to the ListAlbumsFn that's injected when
// the mock store is created.
func (s *AlbumStore) ListAlbums(ctx context.Context) (cl.ListAlbumsRes, error) {
	return s.ListAlbumsFn(ctx)
}

// ListAlbumsOwnedBy proxies the request to the ListAlbumsOwnedByFn that's
// injected when the mock store is created.
func (s *AlbumStore) ListAlbumsOwnedBy(ctx context.Context, ownerID string) (cl.ListAlbumsRes, error) {
	return s.ListAlbumsOwnedByFn(ctx, ownerID)
}

// GetAlbum proxies the request to the GetAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) GetAlbum(ctx context.Context, id string) (cl.GetAlbumRes, error) {
	return s.GetAlbumFn(ctx, id)
}

// CreateAlbum proxies the request to the CreateAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) CreateAlbum(ctx context.Context, req cl.CreateAlbumRequest, ownerID string) (cl.CreateAlbumResponse, error) {
	return s.CreateAlbumFn(ctx, req, ownerID)
}

// UpdateAlbum proxies the request to the UpdateAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) UpdateAlbum(ctx context.Context, id string, req cl.UpdateAlbumRequest) (cl.UpdateAlbumResponse, error) {
	return s.UpdateAlbumFn(ctx, id, req)
}

// DeleteAlbum proxies the request to the DeleteAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) DeleteAlbum(ctx context.Context, id string) error {
	return s.DeleteAlbumFn(ctx, id)
}
