package catalog

import (
	"testing"
	"time"

	"gopkg.in/guregu/null.v3"
)

func validCreateRequest() CreateAlbumRequest {
	return CreateAlbumRequest{
		Title:  "Nevermind",
		Artist: "Nirvana",
		Genre:  "Rock",
		Year:   1991,
	}
}

func TestCreateAlbumRequestValidate(t *testing.T) {
	table := []struct {
		label  string
		modify func(r *CreateAlbumRequest)
		expErr error
	}{
		{
			label:  "valid request",
			modify: func(r *CreateAlbumRequest) {},
			expErr: nil,
		},
		{
			label:  "title too short",
			modify: func(r *CreateAlbumRequest) { r.Title = "ab" },
			expErr: ErrInvalidTitle,
		},
		{
			label:  "missing artist",
			modify: func(r *CreateAlbumRequest) { r.Artist = "" },
			expErr: ErrInvalidArtist,
		},
		{
			label:  "genre outside the enum",
			modify: func(r *CreateAlbumRequest) { r.Genre = "Polka" },
			expErr: ErrInvalidGenre,
		},
		{
			label:  "year before 1900",
			modify: func(r *CreateAlbumRequest) { r.Year = 1850 },
			expErr: ErrInvalidYear,
		},
		{
			label:  "year in the future",
			modify: func(r *CreateAlbumRequest) { r.Year = time.Now().Year() + 1 },
			expErr: ErrInvalidYear,
		},
		{
			label:  "zero tracks",
			modify: func(r *CreateAlbumRequest) { r.Tracks = null.IntFrom(0) },
			expErr: ErrInvalidTracks,
		},
		{
			label:  "too many tracks",
			modify: func(r *CreateAlbumRequest) { r.Tracks = null.IntFrom(101) },
			expErr: ErrInvalidTracks,
		},
		{
			label:  "tracks omitted is fine",
			modify: func(r *CreateAlbumRequest) { r.Tracks = null.Int{} },
			expErr: nil,
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			req := validCreateRequest()
			ts.modify(&req)
			if err := req.Validate(); err != ts.expErr {
				t.Fatalf("unexpected validation result: got %v, expected %v", err, ts.expErr)
			}
		})
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	table := []struct {
		label   string
		req     RegisterRequest
		expErr  error
		expRole string
	}{
		{
			label: "valid request with explicit role",
			req: RegisterRequest{
				Username:        "frank",
				Email:           "frank@example.com",
				Password:        "hunter22",
				ConfirmPassword: "hunter22",
				Role:            "admin",
			},
			expRole: RoleAdmin,
		},
		{
			label: "empty role defaults to user",
			req: RegisterRequest{
				Username:        "frank",
				Password:        "hunter22",
				ConfirmPassword: "hunter22",
			},
			expRole: RoleUser,
		},
		{
			label: "password mismatch",
			req: RegisterRequest{
				Username:        "frank",
				Password:        "hunter22",
				ConfirmPassword: "hunter23",
			},
			expErr: ErrPasswordMismatch,
		},
		{
			label: "unknown role",
			req: RegisterRequest{
				Username:        "frank",
				Password:        "hunter22",
				ConfirmPassword: "hunter22",
				Role:            "superuser",
			},
			expErr: ErrInvalidRole,
		},
		{
			label: "missing username",
			req: RegisterRequest{
				Password:        "hunter22",
				ConfirmPassword: "hunter22",
			},
			expErr: ErrMissingUsername,
		},
		{
			label: "missing password",
			req: RegisterRequest{
				Username: "frank",
			},
			expErr: ErrMissingPassword,
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			err := ts.req.Validate()
			if err != ts.expErr {
				t.Fatalf("unexpected validation result: got %v, expected %v", err, ts.expErr)
			}
			if err == nil && ts.req.Role != ts.expRole {
				t.Fatalf("unexpected role: got %s, expected %s", ts.req.Role, ts.expRole)
			}
		})
	}
}
