package users

import "errors"

var (
	// ErrMissingFields is returned when a signup request omits required fields
	ErrMissingFields = errors.New("email, password and name are required")

	// ErrInvalidRole is returned when the role is neither patient nor doctor
	ErrInvalidRole = errors.New("role must be patient or doctor")

	// ErrUserNotFound is returned when no profile exists for the given ID
	ErrUserNotFound = errors.New("user not found")
)
