// Package availability owns the booking counters keyed by
// (doctor, date, period) and answers every "is this slot open?" question.
// It is the single write path for capacity accounting: a booking is only
// accepted through the atomic check-and-increment here, which closes the
// race a separate read-then-write sequence would allow.
package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/medibook/booking-platform/internal/capacity"
	"github.com/medibook/booking-platform/internal/directory"
	"github.com/medibook/booking-platform/internal/scheduling"
	"github.com/medibook/booking-platform/pkg/logging"
)

const dateLayout = "2006-01-02"

// checkAndIncrScript rejects the increment when the counter already sits at
// or above the ceiling, otherwise increments and returns the new count.
// Running it as a single script keeps concurrent bookings from both passing
// the limit check.
var checkAndIncrScript = redis.NewScript(`
local count = tonumber(redis.call('GET', KEYS[1]) or '0')
local limit = tonumber(ARGV[1])
if count >= limit then
	return -1
end
return redis.call('INCR', KEYS[1])
`)

// Availability is the read surface the booking UI consults before allowing
// a submission.
type Availability struct {
	Booked    int  `json:"booked"`
	Limit     int  `json:"limit"`
	Available bool `json:"available"`
}

// Ledger tracks booking counts per (doctor, date, period) in Redis.
type Ledger struct {
	redis   *redis.Client
	doctors directory.Repository
	logger  *logging.Logger
	tracer  trace.Tracer
}

// NewLedger builds a ledger over the given Redis client and doctor catalog.
func NewLedger(client *redis.Client, doctors directory.Repository, logger *logging.Logger) *Ledger {
	if client == nil {
		panic("availability: redis client cannot be nil")
	}
	if doctors == nil {
		panic("availability: doctor repository cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Ledger{
		redis:   client,
		doctors: doctors,
		logger:  logger,
		tracer:  otel.Tracer("medibook.internal.availability"),
	}
}

// GetCount returns the number of bookings recorded for the key, 0 when the
// key has never been written. Read-only and safe to call repeatedly.
func (l *Ledger) GetCount(ctx context.Context, doctorID, date, period string) (int, error) {
	count, err := l.redis.Get(ctx, counterKey(doctorID, date, period)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("availability: failed to read counter: %w", err)
	}
	return count, nil
}

// IncrementOnBooking atomically checks the period ceiling and increments the
// counter, returning the post-increment count. It returns ErrCapacityExceeded
// when the increment would push the count past limit. Called exactly once per
// accepted booking.
func (l *Ledger) IncrementOnBooking(ctx context.Context, doctorID, date, period string, limit int) (int, error) {
	ctx, span := l.tracer.Start(ctx, "availability.increment")
	defer span.End()
	span.SetAttributes(
		attribute.String("booking.doctor_id", doctorID),
		attribute.String("booking.date", date),
		attribute.String("booking.period", period),
	)

	if limit <= 0 {
		return 0, ErrCapacityExceeded
	}

	key := counterKey(doctorID, date, period)
	res, err := checkAndIncrScript.Run(ctx, l.redis, []string{key}, limit).Int()
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("availability: failed to increment counter: %w", err)
	}
	if res < 0 {
		l.logger.Warn("booking rejected at capacity",
			"doctor_id", doctorID,
			"date", date,
			"period", period,
			"limit", limit,
		)
		return 0, ErrCapacityExceeded
	}
	return res, nil
}

// RecordUncapped increments the counter without a ceiling. Used for service
// types that track demand per slot but carry no per-period capacity limit.
func (l *Ledger) RecordUncapped(ctx context.Context, doctorID, date, period string) (int, error) {
	count, err := l.redis.Incr(ctx, counterKey(doctorID, date, period)).Result()
	if err != nil {
		return 0, fmt.Errorf("availability: failed to increment counter: %w", err)
	}
	return int(count), nil
}

// CheckAvailability resolves the doctor, validates the date and period, and
// returns the booked count against the period ceiling. An unknown doctor is
// an error, never an open slot; storage failures likewise surface as errors
// so callers degrade to "unavailable".
func (l *Ledger) CheckAvailability(ctx context.Context, doctorID, date, period string) (*Availability, error) {
	ctx, span := l.tracer.Start(ctx, "availability.check")
	defer span.End()
	span.SetAttributes(
		attribute.String("booking.doctor_id", doctorID),
		attribute.String("booking.date", date),
		attribute.String("booking.period", period),
	)

	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	if !scheduling.IsRecognizedPeriod(scheduling.ServiceDoctorAppointment, period) {
		return nil, ErrInvalidPeriod
	}

	doctor, err := l.doctors.GetDoctor(ctx, doctorID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	booked, err := l.GetCount(ctx, doctorID, date, period)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	limit := capacity.PeriodLimit(doctor.DailyLimit)
	return &Availability{
		Booked:    booked,
		Limit:     limit,
		Available: capacity.IsAvailable(booked, limit),
	}, nil
}

// ValidateDate checks for a well-formed YYYY-MM-DD calendar date.
func ValidateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// counterKey mirrors the bookings:{doctor}:{date}:{period} layout the rest
// of the system expects.
func counterKey(doctorID, date, period string) string {
	return fmt.Sprintf("bookings:%s:%s:%s", doctorID, date, period)
}
