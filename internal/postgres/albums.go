package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	cl "album-service/pkg/catalog"
)

const tableAlbums = "albums"

const (
	albumsColumnID        = `"id"`
	albumsColumnTitle     = `"title"`
	albumsColumnArtist    = `"artist"`
	albumsColumnGenre     = `"genre"`
	albumsColumnYear      = `"year"`
	albumsColumnTracks    = `"tracks"`
	albumsColumnOwnerID   = `"owner_id"`
	albumsColumnCreatedAt = `"created_at"`
	albumsColumnUpdatedAt = `"updated_at"`
)

var albumsColumns = []string{
	albumsColumnID,
	albumsColumnTitle,
	albumsColumnArtist,
	albumsColumnGenre,
	albumsColumnYear,
	albumsColumnTracks,
	albumsColumnOwnerID,
	albumsColumnCreatedAt,
	albumsColumnUpdatedAt,
}

// ListAlbums returns every album in the store, newest first. An empty store
// yields an empty list, not an error.
func (p *Postgres) ListAlbums(ctx context.Context) (cl.ListAlbumsRes, error) {

	var res cl.ListAlbumsRes

	var r []cl.Album
	qv, err := buildListAlbumsQuery(nil)
	if err != nil {
		return res, errors.Wrap(err, "build list albums query")
	}
	err = p.sqldb.SelectContext(ctx, &r, qv.query, qv.args...)
	if err != nil {
		return res, errors.Wrap(err, "execute list albums query")
	}
	if r == nil {
		r = []cl.Album{}
	}

	res = cl.ListAlbumsRes{
		Albums: r,
	}
	return res, nil

}

// ListAlbumsOwnedBy returns the albums owned by the given user plus albums
// without an owner.
func (p *Postgres) ListAlbumsOwnedBy(ctx context.Context, ownerID string) (cl.ListAlbumsRes, error) {

	var res cl.ListAlbumsRes

	var r []cl.Album
	qv, err := buildListAlbumsQuery(sq.Or{
		sq.Eq{albumsColumnOwnerID: ownerID},
		sq.Eq{albumsColumnOwnerID: nil},
	})
	if err != nil {
		return res, errors.Wrap(err, "build list owned albums query")
	}
	err = p.sqldb.SelectContext(ctx, &r, qv.query, qv.args...)
	if err != nil {
		return res, errors.Wrap(err, "execute list owned albums query")
	}
	if r == nil {
		r = []cl.Album{}
	}

	res = cl.ListAlbumsRes{
		Albums: r,
	}
	return res, nil

}

func buildListAlbumsQuery(where sq.Sqlizer) (QueryValues, error) {
	b := psql.
		Select(tableColumns(tableAlbums, albumsColumns)...).
		From(tableAlbums).
		OrderBy(albumsColumnCreatedAt + " DESC")
	if where != nil {
		b = b.Where(where)
	}
	q, args, err := b.ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "list albums build query into SQL string")
}

// GetAlbum fetches a single album by id.
func (p *Postgres) GetAlbum(ctx context.Context, id string) (cl.GetAlbumRes, error) {

	var res cl.GetAlbumRes

	var r []cl.Album
	qv, err := buildGetAlbumQuery(id)
	if err != nil {
		return res, errors.Wrap(err, "build get album query")
	}
	err = p.sqldb.SelectContext(ctx, &r, qv.query, qv.args...)
	if err != nil {
		return res, errors.Wrap(err, "execute get album query")
	}

	// If no rows are found, return a 404.
	if len(r) == 0 {
		return res, cl.ErrNotFound
	}

	res = cl.GetAlbumRes{
		Album: &r[0],
	}
	return res, nil

}

func buildGetAlbumQuery(id string) (QueryValues, error) {
	q, args, err := psql.
		Select(tableColumns(tableAlbums, albumsColumns)...).
		From(tableAlbums).
		Where(sq.Eq{albumsColumnID: id}).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "get album build query into SQL string")
}

// CreateAlbum inserts a new album owned by ownerID. The owner always comes
// from the authenticated request, never from the payload.
func (p *Postgres) CreateAlbum(ctx context.Context, req cl.CreateAlbumRequest, ownerID string) (cl.CreateAlbumResponse, error) {

	var res cl.CreateAlbumResponse

	var r cl.Album
	qv, err := buildCreateAlbumQuery(req, ownerID)
	if err != nil {
		return res, errors.Wrap(err, "build create album query")
	}
	err = p.sqldb.GetContext(ctx, &r, qv.query, qv.args...)
	if err != nil {
		return res, errors.Wrap(err, "execute create album query")
	}

	res = cl.CreateAlbumResponse{
		Album: &r,
	}
	return res, nil

}

func buildCreateAlbumQuery(req cl.CreateAlbumRequest, ownerID string) (QueryValues, error) {
	now := time.Now().UTC()
	q, args, err := psql.
		Insert(tableAlbums).
		Columns(albumsColumns...).
		Values(uuid.NewString(), req.Title, req.Artist, req.Genre, req.Year, req.Tracks, ownerID, now, now).
		Suffix("RETURNING " + strings.Join(albumsColumns, ", ")).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "create album build query into SQL string")
}

// UpdateAlbum applies the mutable fields to an existing album. The owner_id
// column is deliberately absent from the SET list so ownership can never be
// reassigned.
func (p *Postgres) UpdateAlbum(ctx context.Context, id string, req cl.UpdateAlbumRequest) (cl.UpdateAlbumResponse, error) {

	var res cl.UpdateAlbumResponse

	var r cl.Album
	qv, err := buildUpdateAlbumQuery(id, req)
	if err != nil {
		return res, errors.Wrap(err, "build update album query")
	}
	err = p.sqldb.GetContext(ctx, &r, qv.query, qv.args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, cl.ErrNotFound
		}
		return res, errors.Wrap(err, "execute update album query")
	}

	res = cl.UpdateAlbumResponse{
		Album: &r,
	}
	return res, nil

}

func buildUpdateAlbumQuery(id string, req cl.UpdateAlbumRequest) (QueryValues, error) {
	q, args, err := psql.
		Update(tableAlbums).
		Set(albumsColumnTitle, req.Title).
		Set(albumsColumnArtist, req.Artist).
		Set(albumsColumnGenre, req.Genre).
		Set(albumsColumnYear, req.Year).
		Set(albumsColumnTracks, req.Tracks).
		Set(albumsColumnUpdatedAt, time.Now().UTC()).
		Where(sq.Eq{albumsColumnID: id}).
		Suffix("RETURNING " + strings.Join(albumsColumns, ", ")).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "update album build query into SQL string")
}

// DeleteAlbum removes an album by id, returning ErrNotFound when the id does
// not resolve.
func (p *Postgres) DeleteAlbum(ctx context.Context, id string) error {

	qv, err := buildDeleteAlbumQuery(id)
	if err != nil {
		return errors.Wrap(err, "build delete album query")
	}
	result, err := p.sqldb.ExecContext(ctx, qv.query, qv.args...)
	if err != nil {
		return errors.Wrap(err, "execute delete album query")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete album rows affected")
	}
	if n == 0 {
		return cl.ErrNotFound
	}
	return nil

}

func buildDeleteAlbumQuery(id string) (QueryValues, error) {
	q, args, err := psql.
		Delete(tableAlbums).
		Where(sq.Eq{albumsColumnID: id}).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "delete album build query into SQL string")
}
