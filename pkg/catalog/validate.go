package catalog

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

// Genres is the fixed set of acceptable album genres.
var Genres = []string{
	"Rock",
	"Pop",
	"Jazz",
	"Hip-Hop",
	"Country",
	"Classical",
	"Electronic",
}

func ValidGenre(genre string) bool {
	for _, g := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}

func validateAlbumFields(title, artist, genre string, year int, tracks null.Int) error {
	if len(title) < 3 || len(title) > 50 {
		return ErrInvalidTitle
	}
	if len(artist) < 3 || len(artist) > 50 {
		return ErrInvalidArtist
	}
	if !ValidGenre(genre) {
		return ErrInvalidGenre
	}
	if year < 1900 || year > time.Now().Year() {
		return ErrInvalidYear
	}
	if tracks.Valid && (tracks.Int64 < 1 || tracks.Int64 > 100) {
		return ErrInvalidTracks
	}
	return nil
}

// Validate checks the request against the album schema constraints.
func (r CreateAlbumRequest) Validate() error {
	return validateAlbumFields(r.Title, r.Artist, r.Genre, r.Year, r.Tracks)
}

// Validate checks the request against the album schema constraints.
func (r UpdateAlbumRequest) Validate() error {
	return validateAlbumFields(r.Title, r.Artist, r.Genre, r.Year, r.Tracks)
}

// Validate checks the registration payload. An empty role defaults to the
// regular user role.
func (r *RegisterRequest) Validate() error {
	if r.Username == "" {
		return ErrMissingUsername
	}
	if r.Password == "" {
		return ErrMissingPassword
	}
	if r.Password != r.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if r.Role == "" {
		r.Role = RoleUser
	}
	if r.Role != RoleAdmin && r.Role != RoleUser {
		return ErrInvalidRole
	}
	return nil
}
