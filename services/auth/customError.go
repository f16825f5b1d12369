package auth

import "errors"

var (
	// ErrInvalidCredentials is the single generic failure login surfaces;
	// no field-level detail is exposed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthenticated is returned when no current-user record exists.
	ErrNotAuthenticated = errors.New("not authenticated")
)
