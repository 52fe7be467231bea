package service

import "errors"

// Errors returned by the stores. Handlers translate these to HTTP statuses;
// anything else is logged and reported as an opaque server error.
var (
	ErrMissingFields      = errors.New("required fields are missing")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrDuplicateUser      = errors.New("username or email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrAlreadyFavorited   = errors.New("recipe already in favorites")
	ErrNotFavorited       = errors.New("recipe not in favorites")
)
