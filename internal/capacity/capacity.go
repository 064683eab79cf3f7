// Package capacity holds the arithmetic that decides whether a doctor's
// period slot can take another booking. All functions are pure; validation
// of doctor IDs, dates and period labels happens upstream in the
// availability ledger.
package capacity

// PeriodLimit returns the booking ceiling for a single period: half of the
// doctor's daily patient limit, rounded down. A daily limit of 0 or 1 yields
// a ceiling of 0, which renders every period for that doctor permanently full.
func PeriodLimit(dailyLimit int) int {
	if dailyLimit < 0 {
		return 0
	}
	return dailyLimit / 2
}

// IsAvailable reports whether another booking fits under the period ceiling.
// A limit of 0 is never available.
func IsAvailable(booked, limit int) bool {
	return booked < limit
}

// Remaining returns how many slots are left for display purposes. The result
// is clamped at 0 so an overbooked period never reports negative capacity.
func Remaining(booked, limit int) int {
	if r := limit - booked; r > 0 {
		return r
	}
	return 0
}
