package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibook/booking-platform/internal/availability"
	"github.com/medibook/booking-platform/internal/directory"
	"github.com/medibook/booking-platform/internal/events"
	"github.com/medibook/booking-platform/pkg/logging"
)

type serviceFixture struct {
	svc    *Service
	store  *InMemoryStore
	ledger *availability.Ledger
	queue  *events.MemoryQueue
}

func setupService(t *testing.T) *serviceFixture {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := logging.Default()
	doctors := directory.NewInMemoryRepository()
	require.NoError(t, directory.SeedDefaults(context.Background(), doctors))

	ledger := availability.NewLedger(client, doctors, logger)
	store := NewInMemoryStore()
	queue := events.NewMemoryQueue()
	publisher := events.NewPublisher(queue, logger)

	return &serviceFixture{
		svc:    NewService(store, doctors, ledger, publisher, logger),
		store:  store,
		ledger: ledger,
		queue:  queue,
	}
}

func appointmentRequest(doctorID string) *CreateBookingRequest {
	return &CreateBookingRequest{
		ServiceType: "doctor-appointment",
		SpecialtyID: "cardiology",
		DoctorID:    doctorID,
		Date:        "2024-03-22",
		Period:      "Morning Period",
		PatientName: "John Doe",
		Email:       "john@example.com",
		Phone:       "+1234567890",
		Symptoms:    "chest pain",
	}
}

func TestCreate_Success(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	booking, err := f.svc.Create(ctx, "user-a", appointmentRequest("2"))
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, StatusPending, booking.Status)
	assert.Equal(t, "user-a", booking.UserID)

	count, err := f.ledger.GetCount(ctx, "2", "2024-03-22", "Morning Period")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Len(t, f.queue.Messages(), 1)
}

func TestCreate_RejectsWhenPeriodFull(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	// doctor 2 has dailyLimit 10 → period ceiling 5
	for i := 0; i < 5; i++ {
		_, err := f.svc.Create(ctx, "user-a", appointmentRequest("2"))
		require.NoError(t, err)
	}

	_, err := f.svc.Create(ctx, "user-b", appointmentRequest("2"))
	assert.ErrorIs(t, err, availability.ErrCapacityExceeded)

	// the rejected submission must not leave a record behind
	all, err := f.store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestCreate_UnknownDoctor(t *testing.T) {
	f := setupService(t)

	_, err := f.svc.Create(context.Background(), "user-a", appointmentRequest("999"))
	assert.ErrorIs(t, err, directory.ErrDoctorNotFound)
}

func TestCreate_Validation(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	req := appointmentRequest("1")
	req.ServiceType = "veterinary"
	_, err := f.svc.Create(ctx, "user-a", req)
	assert.ErrorIs(t, err, ErrUnknownService)

	req = appointmentRequest("1")
	req.Date = "22-03-2024"
	_, err = f.svc.Create(ctx, "user-a", req)
	assert.ErrorIs(t, err, availability.ErrInvalidDate)

	req = appointmentRequest("1")
	req.Period = "Midnight Period"
	_, err = f.svc.Create(ctx, "user-a", req)
	assert.ErrorIs(t, err, availability.ErrInvalidPeriod)

	req = appointmentRequest("1")
	req.PatientName = "  "
	_, err = f.svc.Create(ctx, "user-a", req)
	assert.ErrorIs(t, err, ErrMissingPatientName)

	req = appointmentRequest("1")
	req.Email, req.Phone = "", ""
	_, err = f.svc.Create(ctx, "user-a", req)
	assert.ErrorIs(t, err, ErrMissingContact)

	req = appointmentRequest("")
	_, err = f.svc.Create(ctx, "user-a", req)
	assert.ErrorIs(t, err, ErrMissingDoctor)
}

func TestCreate_UncappedServiceTracksDemand(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	req := &CreateBookingRequest{
		ServiceType: "health-chat",
		DoctorID:    "12",
		Date:        "2024-03-22",
		Period:      "Available 24/7",
		PatientName: "Jane Doe",
		Phone:       "+1987654321",
	}

	// no catalog entry and no ceiling, but demand is still counted
	for i := 0; i < 3; i++ {
		_, err := f.svc.Create(ctx, "user-a", req)
		require.NoError(t, err)
	}

	count, err := f.ledger.GetCount(ctx, "12", "2024-03-22", "Available 24/7")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCreate_SurgeryNeedsLeadTime(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	req := &CreateBookingRequest{
		ServiceType: "surgery-booking",
		DoctorID:    "surgeon-1",
		Period:      "7:00 AM",
		PatientName: "John Doe",
		Phone:       "+1234567890",
	}

	req.Date = time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	_, err := f.svc.Create(ctx, "user-a", req)
	assert.ErrorIs(t, err, ErrPeriodUnavailable)

	req.Date = time.Now().UTC().AddDate(0, 0, 5).Format("2006-01-02")
	_, err = f.svc.Create(ctx, "user-a", req)
	assert.NoError(t, err)
}

func TestCreate_GroupConsultationSchedule(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	req := &CreateBookingRequest{
		ServiceType: "group-consultation",
		DoctorID:    "group-1",
		PatientName: "John Doe",
		Phone:       "+1234567890",
	}

	// 2030-01-05 is a Saturday, 2030-01-07 a Monday, 2030-01-09 a Wednesday.
	req.Date, req.Period = "2030-01-05", "10:00 AM"
	_, err := f.svc.Create(ctx, "user-a", req)
	assert.NoError(t, err)

	req.Date, req.Period = "2030-01-07", "6:00 PM"
	_, err = f.svc.Create(ctx, "user-a", req)
	assert.NoError(t, err)

	req.Date, req.Period = "2030-01-05", "6:00 PM"
	_, err = f.svc.Create(ctx, "user-a", req)
	assert.ErrorIs(t, err, ErrPeriodUnavailable)

	req.Date, req.Period = "2030-01-09", "10:00 AM"
	_, err = f.svc.Create(ctx, "user-a", req)
	assert.ErrorIs(t, err, ErrPeriodUnavailable)
}

func TestUpdateStatus_OwnerConfirms(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	booking, err := f.svc.Create(ctx, "user-a", appointmentRequest("1"))
	require.NoError(t, err)

	confirmed := StatusConfirmed
	paid := "paid"
	updated, err := f.svc.UpdateStatus(ctx, "user-a", booking.ID, &UpdateBookingRequest{
		Status:        &confirmed,
		PaymentStatus: &paid,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, updated.Status)
	assert.Equal(t, "paid", updated.PaymentStatus)
	assert.True(t, updated.UpdatedAt.After(booking.CreatedAt) || updated.UpdatedAt.Equal(booking.CreatedAt))
}

func TestUpdateStatus_NonOwnerForbidden(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	booking, err := f.svc.Create(ctx, "user-a", appointmentRequest("1"))
	require.NoError(t, err)

	cancelled := StatusCancelled
	_, err = f.svc.UpdateStatus(ctx, "user-b", booking.ID, &UpdateBookingRequest{Status: &cancelled})
	assert.ErrorIs(t, err, ErrForbidden)

	// booking unchanged
	got, err := f.store.Get(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
}

func TestUpdateStatus_MissingBooking(t *testing.T) {
	f := setupService(t)

	confirmed := StatusConfirmed
	_, err := f.svc.UpdateStatus(context.Background(), "user-a", "nope", &UpdateBookingRequest{Status: &confirmed})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_TerminalIsFinal(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	booking, err := f.svc.Create(ctx, "user-a", appointmentRequest("1"))
	require.NoError(t, err)

	cancelled := StatusCancelled
	_, err = f.svc.UpdateStatus(ctx, "user-a", booking.ID, &UpdateBookingRequest{Status: &cancelled})
	require.NoError(t, err)

	confirmed := StatusConfirmed
	_, err = f.svc.UpdateStatus(ctx, "user-a", booking.ID, &UpdateBookingRequest{Status: &confirmed})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	booking, err := f.svc.Create(ctx, "user-a", appointmentRequest("1"))
	require.NoError(t, err)

	bogus := Status("completed")
	_, err = f.svc.UpdateStatus(ctx, "user-a", booking.ID, &UpdateBookingRequest{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCancelDoesNotReleaseCapacity(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	// doctor 9 has dailyLimit 6 → period ceiling 3
	req := appointmentRequest("9")
	var first *Booking
	for i := 0; i < 3; i++ {
		b, err := f.svc.Create(ctx, "user-a", req)
		require.NoError(t, err)
		if first == nil {
			first = b
		}
	}

	cancelled := StatusCancelled
	_, err := f.svc.UpdateStatus(ctx, "user-a", first.ID, &UpdateBookingRequest{Status: &cancelled})
	require.NoError(t, err)

	// cancelled slots stay counted; the period remains full
	_, err = f.svc.Create(ctx, "user-b", req)
	assert.ErrorIs(t, err, availability.ErrCapacityExceeded)
}

func TestListByUser(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, "user-a", appointmentRequest("1"))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, "user-b", appointmentRequest("2"))
	require.NoError(t, err)

	mine, err := f.svc.ListByUser(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "user-a", mine[0].UserID)

	all, err := f.svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
