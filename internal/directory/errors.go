package directory

import "errors"

var (
	// ErrDoctorNotFound is returned when no doctor exists for the given ID
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrSpecialtyNotFound is returned when no specialty exists for the given ID
	ErrSpecialtyNotFound = errors.New("specialty not found")

	// ErrInvalidDoctor is returned when a doctor record is missing required fields
	ErrInvalidDoctor = errors.New("doctor id and name are required")

	// ErrInvalidDailyLimit is returned when a doctor's daily patient limit is not positive
	ErrInvalidDailyLimit = errors.New("daily limit must be positive")
)
