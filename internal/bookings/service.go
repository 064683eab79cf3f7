package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/medibook/booking-platform/internal/availability"
	"github.com/medibook/booking-platform/internal/capacity"
	"github.com/medibook/booking-platform/internal/directory"
	"github.com/medibook/booking-platform/internal/events"
	"github.com/medibook/booking-platform/internal/scheduling"
	"github.com/medibook/booking-platform/pkg/logging"
)

// CapacityLedger is the slice of the availability ledger the service needs.
type CapacityLedger interface {
	IncrementOnBooking(ctx context.Context, doctorID, date, period string, limit int) (int, error)
	RecordUncapped(ctx context.Context, doctorID, date, period string) (int, error)
}

// Service owns booking creation and lifecycle updates. Creation runs the
// atomic ledger increment before the record write, so a booking can never
// be persisted past the period ceiling.
type Service struct {
	store     Store
	doctors   directory.Repository
	ledger    CapacityLedger
	publisher *events.Publisher
	logger    *logging.Logger
	tracer    trace.Tracer
}

// NewService constructs a bookings service. The publisher may be nil when no
// event feed is configured.
func NewService(store Store, doctors directory.Repository, ledger CapacityLedger, publisher *events.Publisher, logger *logging.Logger) *Service {
	if store == nil {
		panic("bookings: store required")
	}
	if doctors == nil {
		panic("bookings: doctor repository required")
	}
	if ledger == nil {
		panic("bookings: capacity ledger required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		store:     store,
		doctors:   doctors,
		ledger:    ledger,
		publisher: publisher,
		logger:    logger,
		tracer:    otel.Tracer("medibook.internal.bookings"),
	}
}

// Create validates the submission, accounts for it against the availability
// ledger, and persists the booking with status pending.
//
// The ledger increment and the record write are two separate operations; a
// crash between them leaves an incremented counter with no record. The
// increment runs first so the failure mode is a lost slot, never an
// overbooked period.
func (s *Service) Create(ctx context.Context, userID string, req *CreateBookingRequest) (*Booking, error) {
	ctx, span := s.tracer.Start(ctx, "bookings.create")
	defer span.End()
	span.SetAttributes(
		attribute.String("booking.user_id", userID),
		attribute.String("booking.service_type", req.ServiceType),
	)

	st, err := req.Validate()
	if err != nil {
		return nil, err
	}
	if err := availability.ValidateDate(req.Date); err != nil {
		return nil, err
	}
	if !scheduling.IsRecognizedPeriod(st, req.Period) {
		return nil, availability.ErrInvalidPeriod
	}
	day, _ := time.Parse("2006-01-02", req.Date)
	if !periodOffered(scheduling.AvailablePeriods(st, day, time.Now().UTC()), req.Period) {
		return nil, ErrPeriodUnavailable
	}

	if st == scheduling.ServiceDoctorAppointment {
		doctor, err := s.doctors.GetDoctor(ctx, req.DoctorID)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		limit := capacity.PeriodLimit(doctor.DailyLimit)
		if _, err := s.ledger.IncrementOnBooking(ctx, req.DoctorID, req.Date, req.Period, limit); err != nil {
			span.RecordError(err)
			return nil, err
		}
	} else if req.DoctorID != "" {
		// Non-appointment services track demand but have no period ceiling.
		if _, err := s.ledger.RecordUncapped(ctx, req.DoctorID, req.Date, req.Period); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	now := time.Now().UTC()
	booking := &Booking{
		ID:               uuid.New().String(),
		UserID:           userID,
		ServiceType:      req.ServiceType,
		SpecialtyID:      req.SpecialtyID,
		DoctorID:         req.DoctorID,
		Date:             req.Date,
		Period:           req.Period,
		PatientName:      req.PatientName,
		Email:            req.Email,
		Phone:            req.Phone,
		Urgency:          req.Urgency,
		Symptoms:         req.Symptoms,
		PreferredContact: req.PreferredContact,
		Insurance:        req.Insurance,
		Status:           StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.store.Put(ctx, booking); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("bookings: persist after ledger increment: %w", err)
	}

	s.logger.Info("booking created",
		"booking_id", booking.ID,
		"user_id", userID,
		"doctor_id", booking.DoctorID,
		"date", booking.Date,
		"period", booking.Period,
	)
	s.publish(ctx, events.TypeBookingCreated, booking)
	return booking, nil
}

// Get returns a booking if the requester owns it.
func (s *Service) Get(ctx context.Context, userID, bookingID string) (*Booking, error) {
	booking, err := s.store.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrForbidden
	}
	return booking, nil
}

// ListByUser returns the requester's bookings.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	return s.store.ListByUser(ctx, userID)
}

// ListAll returns every booking for the doctor dashboard.
func (s *Service) ListAll(ctx context.Context) ([]*Booking, error) {
	return s.store.ListAll(ctx)
}

// UpdateStatus merges status and payment status into the booking. Only the
// owner may update, and terminal statuses cannot be left. Cancelling does
// NOT release ledger capacity; cancelled slots stay counted.
func (s *Service) UpdateStatus(ctx context.Context, userID, bookingID string, req *UpdateBookingRequest) (*Booking, error) {
	ctx, span := s.tracer.Start(ctx, "bookings.update_status")
	defer span.End()
	span.SetAttributes(attribute.String("booking.id", bookingID))

	booking, err := s.store.Get(ctx, bookingID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrForbidden
	}

	if req.Status != nil {
		next := *req.Status
		if next != StatusConfirmed && next != StatusCancelled {
			return nil, ErrInvalidStatus
		}
		if booking.Status.Terminal() && booking.Status != next {
			return nil, ErrInvalidTransition
		}
		booking.Status = next
	}
	if req.PaymentStatus != nil {
		booking.PaymentStatus = *req.PaymentStatus
	}
	booking.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, booking); err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.logger.Info("booking updated", "booking_id", booking.ID, "status", booking.Status)
	s.publish(ctx, events.TypeBookingUpdated, booking)
	return booking, nil
}

func periodOffered(offered []string, label string) bool {
	for _, p := range offered {
		if p == label {
			return true
		}
	}
	return false
}

// publish emits a lifecycle event; failures are logged, not fatal.
func (s *Service) publish(ctx context.Context, eventType string, booking *Booking) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.Publish(ctx, events.BookingEvent{
		Type:      eventType,
		BookingID: booking.ID,
		UserID:    booking.UserID,
		DoctorID:  booking.DoctorID,
		Date:      booking.Date,
		Period:    booking.Period,
		Status:    string(booking.Status),
	})
	if err != nil {
		s.logger.Error("failed to publish booking event", "error", err, "booking_id", booking.ID)
	}
}
