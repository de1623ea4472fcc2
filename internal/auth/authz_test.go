package auth

import (
	"testing"

	"gopkg.in/guregu/null.v3"

	cl "album-service/pkg/catalog"
)

func TestCanReadCanWrite(t *testing.T) {
	admin := cl.User{ID: "admin-1", Role: cl.RoleAdmin}
	owner := cl.User{ID: "user-1", Role: cl.RoleUser}
	other := cl.User{ID: "user-2", Role: cl.RoleUser}

	owned := cl.Album{ID: "al-1", OwnerID: null.StringFrom("user-1")}
	unowned := cl.Album{ID: "al-2"}

	table := []struct {
		label    string
		user     cl.User
		album    cl.Album
		expRead  bool
		expWrite bool
	}{
		{
			label:    "admin can read and write any owned album",
			user:     admin,
			album:    owned,
			expRead:  true,
			expWrite: true,
		},
		{
			label:    "admin can read and write unowned albums",
			user:     admin,
			album:    unowned,
			expRead:  true,
			expWrite: true,
		},
		{
			label:    "owner can read and write their own album",
			user:     owner,
			album:    owned,
			expRead:  true,
			expWrite: true,
		},
		{
			label:    "non-owner can neither read nor write someone else's album",
			user:     other,
			album:    owned,
			expRead:  false,
			expWrite: false,
		},
		{
			label:    "unowned albums are readable but not writable by regular users",
			user:     other,
			album:    unowned,
			expRead:  true,
			expWrite: false,
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			if got := CanRead(ts.user, ts.album); got != ts.expRead {
				t.Fatalf("CanRead returned %v, expected %v", got, ts.expRead)
			}
			if got := CanWrite(ts.user, ts.album); got != ts.expWrite {
				t.Fatalf("CanWrite returned %v, expected %v", got, ts.expWrite)
			}
		})
	}
}

// Write permission must always imply read permission, for every combination
// of role and ownership.
func TestWriteImpliesRead(t *testing.T) {
	users := []cl.User{
		{ID: "admin-1", Role: cl.RoleAdmin},
		{ID: "user-1", Role: cl.RoleUser},
		{ID: "user-2", Role: cl.RoleUser},
	}
	albums := []cl.Album{
		{ID: "al-1", OwnerID: null.StringFrom("user-1")},
		{ID: "al-2", OwnerID: null.StringFrom("user-2")},
		{ID: "al-3"},
	}
	for _, u := range users {
		for _, a := range albums {
			if CanWrite(u, a) && !CanRead(u, a) {
				t.Fatalf("user %s can write album %s but not read it", u.ID, a.ID)
			}
		}
	}
}
