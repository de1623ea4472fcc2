package catalog

import "errors"

var ErrNotFound = errors.New("not found")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrUsernameTaken = errors.New("username already exists")
var ErrPasswordMismatch = errors.New("passwords do not match")
var ErrInvalidRole = errors.New("role must be admin or user")
var ErrMissingUsername = errors.New("username must be provided")
var ErrMissingPassword = errors.New("password must be provided")

var ErrInvalidTitle = errors.New("title must be between 3 and 50 characters")
var ErrInvalidArtist = errors.New("artist must be between 3 and 50 characters")
var ErrInvalidGenre = errors.New("genre must be one of Rock, Pop, Jazz, Hip-Hop, Country, Classical, Electronic")
var ErrInvalidYear = errors.New("year must be between 1900 and the current year")
var ErrInvalidTracks = errors.New("tracks must be between 1 and 100")
