package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/medibook/booking-platform/internal/availability"
	"github.com/medibook/booking-platform/internal/bookings"
	"github.com/medibook/booking-platform/internal/directory"
	"github.com/medibook/booking-platform/internal/users"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps domain sentinels onto HTTP statuses so clients can
// tell capacity rejections from validation and auth failures.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, directory.ErrDoctorNotFound),
		errors.Is(err, directory.ErrSpecialtyNotFound),
		errors.Is(err, users.ErrUserNotFound),
		errors.Is(err, bookings.ErrBookingNotFound):
		writeError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, availability.ErrCapacityExceeded):
		writeError(w, http.StatusConflict, err.Error())

	case errors.Is(err, bookings.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())

	case errors.Is(err, availability.ErrInvalidDate),
		errors.Is(err, availability.ErrInvalidPeriod),
		errors.Is(err, bookings.ErrUnknownService),
		errors.Is(err, bookings.ErrMissingPatientName),
		errors.Is(err, bookings.ErrMissingContact),
		errors.Is(err, bookings.ErrMissingDoctor),
		errors.Is(err, bookings.ErrPeriodUnavailable),
		errors.Is(err, bookings.ErrInvalidStatus),
		errors.Is(err, bookings.ErrInvalidTransition),
		errors.Is(err, users.ErrMissingFields),
		errors.Is(err, users.ErrInvalidRole),
		errors.Is(err, directory.ErrInvalidDoctor),
		errors.Is(err, directory.ErrInvalidDailyLimit):
		writeError(w, http.StatusBadRequest, err.Error())

	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
