package auth

import (
	cl "album-service/pkg/catalog"
)

// CanRead reports whether the user may view the album. Admins read
// everything, owners read their own, and albums without an owner are shared
// reads for any authenticated user.
func CanRead(user cl.User, album cl.Album) bool {
	if user.IsAdmin() {
		return true
	}
	if !album.OwnerID.Valid {
		return true
	}
	return album.OwnerID.String == user.ID
}

// CanWrite reports whether the user may update or delete the album. Unlike
// reads, an unowned album is not writable by a non-admin: mutation requires
// explicit ownership.
func CanWrite(user cl.User, album cl.Album) bool {
	if user.IsAdmin() {
		return true
	}
	return album.OwnerID.Valid && album.OwnerID.String == user.ID
}
