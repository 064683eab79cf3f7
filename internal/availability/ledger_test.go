package availability

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibook/booking-platform/internal/directory"
	"github.com/medibook/booking-platform/pkg/logging"
)

func setupLedger(t *testing.T) (*Ledger, *directory.InMemoryRepository) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	doctors := directory.NewInMemoryRepository()
	return NewLedger(client, doctors, logging.Default()), doctors
}

func TestGetCount_UnknownKeyIsZero(t *testing.T) {
	ledger, _ := setupLedger(t)
	ctx := context.Background()

	count, err := ledger.GetCount(ctx, "1", "2099-01-01", "Evening Period")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// reads are idempotent
	again, err := ledger.GetCount(ctx, "1", "2099-01-01", "Evening Period")
	require.NoError(t, err)
	assert.Equal(t, count, again)
}

func TestIncrementOnBooking_Monotonic(t *testing.T) {
	ledger, _ := setupLedger(t)
	ctx := context.Background()

	before, err := ledger.GetCount(ctx, "1", "2024-03-22", "Morning Period")
	require.NoError(t, err)

	got, err := ledger.IncrementOnBooking(ctx, "1", "2024-03-22", "Morning Period", 6)
	require.NoError(t, err)
	assert.Equal(t, before+1, got)

	after, err := ledger.GetCount(ctx, "1", "2024-03-22", "Morning Period")
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}

func TestIncrementOnBooking_RejectsAtCeiling(t *testing.T) {
	ledger, _ := setupLedger(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		got, err := ledger.IncrementOnBooking(ctx, "9", "2024-03-22", "Morning Period", 3)
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}

	_, err := ledger.IncrementOnBooking(ctx, "9", "2024-03-22", "Morning Period", 3)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	count, err := ledger.GetCount(ctx, "9", "2024-03-22", "Morning Period")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestIncrementOnBooking_ZeroLimitAlwaysRejects(t *testing.T) {
	ledger, _ := setupLedger(t)
	ctx := context.Background()

	_, err := ledger.IncrementOnBooking(ctx, "1", "2024-03-22", "Morning Period", 0)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestIncrementOnBooking_ConcurrentCallersCannotOverbook(t *testing.T) {
	ledger, _ := setupLedger(t)
	ctx := context.Background()

	const limit = 5
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		rejected int
	)

	for i := 0; i < limit+1; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledger.IncrementOnBooking(ctx, "1", "2024-03-22", "Morning Period", limit)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				accepted++
			} else {
				assert.ErrorIs(t, err, ErrCapacityExceeded)
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, limit, accepted)
	assert.Equal(t, 1, rejected)

	count, err := ledger.GetCount(ctx, "1", "2024-03-22", "Morning Period")
	require.NoError(t, err)
	assert.Equal(t, limit, count)
}

func TestCheckAvailability_FullPeriod(t *testing.T) {
	ledger, doctors := setupLedger(t)
	ctx := context.Background()

	require.NoError(t, doctors.PutDoctor(ctx, &directory.Doctor{
		ID: "doctorX", Name: "Dr. X", SpecialtyID: "cardiology", DailyLimit: 10,
	}))

	for i := 0; i < 5; i++ {
		_, err := ledger.IncrementOnBooking(ctx, "doctorX", "2024-03-22", "Morning Period", 5)
		require.NoError(t, err)
	}

	avail, err := ledger.CheckAvailability(ctx, "doctorX", "2024-03-22", "Morning Period")
	require.NoError(t, err)
	assert.Equal(t, &Availability{Booked: 5, Limit: 5, Available: false}, avail)

	// a sixth submission against the same key must be rejected
	_, err = ledger.IncrementOnBooking(ctx, "doctorX", "2024-03-22", "Morning Period", 5)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestCheckAvailability_UnknownKeyIsFullyAvailable(t *testing.T) {
	ledger, doctors := setupLedger(t)
	ctx := context.Background()

	require.NoError(t, doctors.PutDoctor(ctx, &directory.Doctor{
		ID: "doctorX", Name: "Dr. X", SpecialtyID: "cardiology", DailyLimit: 12,
	}))

	avail, err := ledger.CheckAvailability(ctx, "doctorX", "2099-01-01", "Evening Period")
	require.NoError(t, err)
	assert.Equal(t, &Availability{Booked: 0, Limit: 6, Available: true}, avail)
}

func TestCheckAvailability_UnknownDoctor(t *testing.T) {
	ledger, _ := setupLedger(t)

	_, err := ledger.CheckAvailability(context.Background(), "ghost", "2024-03-22", "Morning Period")
	assert.ErrorIs(t, err, directory.ErrDoctorNotFound)
}

func TestCheckAvailability_ValidatesInput(t *testing.T) {
	ledger, doctors := setupLedger(t)
	ctx := context.Background()

	require.NoError(t, doctors.PutDoctor(ctx, &directory.Doctor{
		ID: "1", Name: "Dr. A", SpecialtyID: "cardiology", DailyLimit: 10,
	}))

	_, err := ledger.CheckAvailability(ctx, "1", "not-a-date", "Morning Period")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ledger.CheckAvailability(ctx, "1", "2024-02-30", "Morning Period")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ledger.CheckAvailability(ctx, "1", "2024-03-22", "Night Period")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestCheckAvailability_TinyDailyLimitIsPermanentlyFull(t *testing.T) {
	ledger, doctors := setupLedger(t)
	ctx := context.Background()

	require.NoError(t, doctors.PutDoctor(ctx, &directory.Doctor{
		ID: "solo", Name: "Dr. Solo", SpecialtyID: "psychiatry", DailyLimit: 1,
	}))

	avail, err := ledger.CheckAvailability(ctx, "solo", "2024-03-22", "Morning Period")
	require.NoError(t, err)
	assert.Equal(t, &Availability{Booked: 0, Limit: 0, Available: false}, avail)
}
