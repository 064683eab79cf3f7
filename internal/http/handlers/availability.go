package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/medibook/booking-platform/internal/availability"
	"github.com/medibook/booking-platform/internal/observability/metrics"
	"github.com/medibook/booking-platform/pkg/logging"
)

// AvailabilityHandler answers slot-availability queries. This is the only
// read surface the booking UI consults before allowing a submission.
type AvailabilityHandler struct {
	ledger  *availability.Ledger
	metrics *metrics.BookingMetrics
	logger  *logging.Logger
}

// NewAvailabilityHandler creates an availability handler.
func NewAvailabilityHandler(ledger *availability.Ledger, m *metrics.BookingMetrics, logger *logging.Logger) *AvailabilityHandler {
	if ledger == nil {
		panic("handlers: availability ledger required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &AvailabilityHandler{ledger: ledger, metrics: m, logger: logger}
}

// Check handles GET /availability/{doctorID}/{date}/{period}. The period
// segment arrives URL-escaped ("Morning%20Period").
func (h *AvailabilityHandler) Check(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	doctorID := chi.URLParam(r, "doctorID")
	date := chi.URLParam(r, "date")
	period, err := url.PathUnescape(chi.URLParam(r, "period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed period label")
		return
	}

	avail, err := h.ledger.CheckAvailability(r.Context(), doctorID, date, period)
	if err != nil {
		h.metrics.ObserveAvailabilityCheck("error", time.Since(start).Seconds())
		h.logger.Error("availability check failed",
			"error", err,
			"doctor_id", doctorID,
			"date", date,
			"period", period,
		)
		writeDomainError(w, err)
		return
	}

	h.metrics.ObserveAvailabilityCheck("ok", time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, avail)
}
