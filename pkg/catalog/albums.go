package catalog

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

// Album is the owned catalog entity. OwnerID is null for shared albums that
// every authenticated user may read.
type Album struct {
	ID        string      `json:"id" db:"id"`
	Title     string      `json:"title" db:"title"`
	Artist    string      `json:"artist" db:"artist"`
	Genre     string      `json:"genre" db:"genre"`
	Year      int         `json:"year" db:"year"`
	Tracks    null.Int    `json:"tracks" db:"tracks"`
	OwnerID   null.String `json:"owner_id" db:"owner_id"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

type ListAlbumsRes struct {
	Albums []Album `json:"albums"`
}

type GetAlbumRes struct {
	Album *Album `json:"album"`
}

type CreateAlbumRequest struct {
	Title  string   `json:"title"`
	Artist string   `json:"artist"`
	Genre  string   `json:"genre"`
	Year   int      `json:"year"`
	Tracks null.Int `json:"tracks"`
}

type CreateAlbumResponse struct {
	Message string `json:"message"`
	Album   *Album `json:"album"`
}

// UpdateAlbumRequest carries the mutable album fields. The owner is never
// part of an update payload.
type UpdateAlbumRequest struct {
	Title  string   `json:"title"`
	Artist string   `json:"artist"`
	Genre  string   `json:"genre"`
	Year   int      `json:"year"`
	Tracks null.Int `json:"tracks"`
}

type UpdateAlbumResponse struct {
	Message string `json:"message"`
	Album   *Album `json:"album"`
}

type DeleteAlbumResponse struct {
	Message string `json:"message"`
}
