package availability

import "errors"

var (
	// ErrInvalidDate is returned when the date is not a well-formed YYYY-MM-DD calendar date
	ErrInvalidDate = errors.New("date must be a valid YYYY-MM-DD calendar date")

	// ErrInvalidPeriod is returned when the period label is not recognized for the service
	ErrInvalidPeriod = errors.New("unrecognized period label")

	// ErrCapacityExceeded is returned when an increment would push a period past its ceiling
	ErrCapacityExceeded = errors.New("period capacity exceeded")
)
