package bookings

import "errors"

var (
	// ErrUnknownService is returned when the service type is not recognized
	ErrUnknownService = errors.New("unknown service type")

	// ErrMissingPatientName is returned when the intake form has no patient name
	ErrMissingPatientName = errors.New("patient name is required")

	// ErrMissingContact is returned when both email and phone are missing
	ErrMissingContact = errors.New("either email or phone is required")

	// ErrMissingDoctor is returned when a doctor appointment names no doctor
	ErrMissingDoctor = errors.New("doctor selection is required")

	// ErrPeriodUnavailable is returned when the period label is recognized but
	// not offered on the requested date
	ErrPeriodUnavailable = errors.New("period not offered on that date")

	// ErrBookingNotFound is returned when no booking exists for the given ID
	ErrBookingNotFound = errors.New("booking not found")

	// ErrForbidden is returned when the requester does not own the booking
	ErrForbidden = errors.New("not the booking owner")

	// ErrInvalidStatus is returned for status values outside the lifecycle
	ErrInvalidStatus = errors.New("status must be confirmed or cancelled")

	// ErrInvalidTransition is returned when updating a terminal booking's status
	ErrInvalidTransition = errors.New("booking status is terminal")
)
