// Package events publishes booking lifecycle events to a queue for
// downstream consumers (reporting, dashboards). It is a plain event feed,
// not a notification channel.
package events

import "time"

// Event types emitted by the bookings service.
const (
	TypeBookingCreated = "booking.created"
	TypeBookingUpdated = "booking.updated"
)

// BookingEvent is the queue payload for a booking lifecycle change.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"bookingId"`
	UserID     string    `json:"userId"`
	DoctorID   string    `json:"doctorId,omitempty"`
	Date       string    `json:"date"`
	Period     string    `json:"period"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}
