package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medibook/booking-platform/internal/availability"
	"github.com/medibook/booking-platform/internal/bookings"
	"github.com/medibook/booking-platform/internal/http/middleware"
	"github.com/medibook/booking-platform/internal/observability/metrics"
	"github.com/medibook/booking-platform/internal/users"
	"github.com/medibook/booking-platform/pkg/logging"
)

// BookingsHandler exposes booking submission and lifecycle updates.
type BookingsHandler struct {
	svc     *bookings.Service
	users   users.Repository
	metrics *metrics.BookingMetrics
	logger  *logging.Logger
}

// NewBookingsHandler creates a bookings handler.
func NewBookingsHandler(svc *bookings.Service, userRepo users.Repository, m *metrics.BookingMetrics, logger *logging.Logger) *BookingsHandler {
	if svc == nil {
		panic("handlers: bookings service required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BookingsHandler{svc: svc, users: userRepo, metrics: m, logger: logger}
}

// Create handles POST /bookings.
func (h *BookingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req bookings.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	booking, err := h.svc.Create(r.Context(), userID, &req)
	if err != nil {
		h.metrics.ObserveRejected(rejectionReason(err))
		h.logger.Warn("booking rejected", "error", err, "user_id", userID)
		writeDomainError(w, err)
		return
	}

	h.metrics.ObserveCreated(booking.ServiceType)
	writeJSON(w, http.StatusCreated, map[string]*bookings.Booking{"booking": booking})
}

// List handles GET /bookings, returning the requester's bookings.
func (h *BookingsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	list, err := h.svc.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list bookings", "error", err, "user_id", userID)
		writeDomainError(w, err)
		return
	}
	if list == nil {
		list = []*bookings.Booking{}
	}
	writeJSON(w, http.StatusOK, map[string][]*bookings.Booking{"bookings": list})
}

// Update handles PUT /bookings/{bookingID}.
func (h *BookingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req bookings.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bookingID := chi.URLParam(r, "bookingID")
	booking, err := h.svc.UpdateStatus(r.Context(), userID, bookingID, &req)
	if err != nil {
		h.logger.Warn("booking update rejected", "error", err, "booking_id", bookingID, "user_id", userID)
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*bookings.Booking{"booking": booking})
}

// DoctorAppointments handles GET /doctor/appointments; doctor role only.
func (h *BookingsHandler) DoctorAppointments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := h.users.Get(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if profile.Role != users.RoleDoctor {
		writeError(w, http.StatusForbidden, "doctor role required")
		return
	}

	list, err := h.svc.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list appointments", "error", err)
		writeDomainError(w, err)
		return
	}
	if list == nil {
		list = []*bookings.Booking{}
	}
	writeJSON(w, http.StatusOK, map[string][]*bookings.Booking{"appointments": list})
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, availability.ErrCapacityExceeded):
		return "capacity"
	case errors.Is(err, availability.ErrInvalidDate),
		errors.Is(err, availability.ErrInvalidPeriod),
		errors.Is(err, bookings.ErrUnknownService),
		errors.Is(err, bookings.ErrMissingPatientName),
		errors.Is(err, bookings.ErrMissingContact),
		errors.Is(err, bookings.ErrMissingDoctor),
		errors.Is(err, bookings.ErrPeriodUnavailable):
		return "validation"
	default:
		return "internal"
	}
}
