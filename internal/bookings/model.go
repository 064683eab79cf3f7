package bookings

import (
	"strings"
	"time"

	"github.com/medibook/booking-platform/internal/scheduling"
)

// Status is the booking lifecycle state. Bookings start pending and move to
// confirmed or cancelled; both are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no further status transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// Booking is a persisted appointment request.
type Booking struct {
	ID          string `dynamodbav:"id" json:"id"`
	UserID      string `dynamodbav:"userId" json:"userId"`
	ServiceType string `dynamodbav:"serviceType" json:"serviceType"`
	SpecialtyID string `dynamodbav:"specialtyId,omitempty" json:"specialty,omitempty"`
	DoctorID    string `dynamodbav:"doctorId,omitempty" json:"doctor,omitempty"`
	Date        string `dynamodbav:"date" json:"date"`
	Period      string `dynamodbav:"period" json:"period"`

	// Patient intake fields
	PatientName      string `dynamodbav:"patientName" json:"patientName"`
	Email            string `dynamodbav:"email,omitempty" json:"email,omitempty"`
	Phone            string `dynamodbav:"phone,omitempty" json:"phone,omitempty"`
	Urgency          string `dynamodbav:"urgency,omitempty" json:"urgency,omitempty"`
	Symptoms         string `dynamodbav:"symptoms,omitempty" json:"symptoms,omitempty"`
	PreferredContact string `dynamodbav:"preferredContact,omitempty" json:"preferredContact,omitempty"`
	Insurance        string `dynamodbav:"insurance,omitempty" json:"insurance,omitempty"`

	Status        Status    `dynamodbav:"status" json:"status"`
	PaymentStatus string    `dynamodbav:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	CreatedAt     time.Time `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `dynamodbav:"updatedAt" json:"updatedAt"`
}

// CreateBookingRequest is the submission payload.
type CreateBookingRequest struct {
	ServiceType string `json:"serviceType"`
	SpecialtyID string `json:"specialty"`
	DoctorID    string `json:"doctor"`
	Date        string `json:"date"`
	Period      string `json:"period"`

	PatientName      string `json:"patientName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Urgency          string `json:"urgency"`
	Symptoms         string `json:"symptoms"`
	PreferredContact string `json:"preferredContact"`
	Insurance        string `json:"insurance"`
}

// Validate checks required fields and that the period belongs to the service.
// Date well-formedness is checked by the availability ledger's validator.
func (r *CreateBookingRequest) Validate() (scheduling.ServiceType, error) {
	st, ok := scheduling.ParseServiceType(r.ServiceType)
	if !ok {
		return "", ErrUnknownService
	}
	if strings.TrimSpace(r.PatientName) == "" {
		return "", ErrMissingPatientName
	}
	if strings.TrimSpace(r.Email) == "" && strings.TrimSpace(r.Phone) == "" {
		return "", ErrMissingContact
	}
	if st == scheduling.ServiceDoctorAppointment && strings.TrimSpace(r.DoctorID) == "" {
		return "", ErrMissingDoctor
	}
	return st, nil
}

// UpdateBookingRequest merges status and payment status into a booking.
// Nil fields are left unchanged.
type UpdateBookingRequest struct {
	Status        *Status `json:"status,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
}
