// Package scheduling defines the service types patients can book and the
// coarse time periods each one exposes. Capacity is tracked against these
// period labels, not against clock times.
package scheduling

import (
	"time"
)

// ServiceType identifies a bookable service category.
type ServiceType string

const (
	ServiceDoctorAppointment     ServiceType = "doctor-appointment"
	ServiceDigitalInquiry        ServiceType = "digital-inquiry"
	ServiceSurgeryBooking        ServiceType = "surgery-booking"
	ServiceEmergencyConsultation ServiceType = "emergency-consultation"
	ServiceGroupConsultation     ServiceType = "group-consultation"
	ServiceHealthChat            ServiceType = "health-chat"
)

// Doctor appointments are tracked against two half-day periods.
const (
	PeriodMorning = "Morning Period"
	PeriodEvening = "Evening Period"
)

var recognizedPeriods = map[ServiceType][]string{
	ServiceDoctorAppointment:     {PeriodMorning, PeriodEvening},
	ServiceDigitalInquiry:        {"Available Now", "12:00 PM", "12:30 PM", "1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM", "3:00 PM"},
	ServiceSurgeryBooking:        {"7:00 AM", "9:00 AM", "11:00 AM", "1:00 PM"},
	ServiceEmergencyConsultation: {"Available Now", "Next 15 min", "Next 30 min", "Next 45 min"},
	ServiceGroupConsultation:     {"10:00 AM", "2:00 PM", "6:00 PM"},
	ServiceHealthChat:            {"Available 24/7"},
}

// ParseServiceType validates a raw service identifier.
func ParseServiceType(raw string) (ServiceType, bool) {
	st := ServiceType(raw)
	_, ok := recognizedPeriods[st]
	return st, ok
}

// RecognizedPeriods returns every period label the service accepts,
// independent of date. Used to validate incoming period labels.
func RecognizedPeriods(st ServiceType) []string {
	return recognizedPeriods[st]
}

// IsRecognizedPeriod reports whether label is a valid period for the service.
func IsRecognizedPeriod(st ServiceType, label string) bool {
	for _, p := range recognizedPeriods[st] {
		if p == label {
			return true
		}
	}
	return false
}

// AvailablePeriods returns the period labels offered for the service on the
// given date. Surgery slots need at least two days of lead time; group
// consultations run Saturdays and Monday evenings only.
func AvailablePeriods(st ServiceType, date time.Time, now time.Time) []string {
	switch st {
	case ServiceSurgeryBooking:
		if withinTwoDays(date, now) {
			return nil
		}
		return recognizedPeriods[st]
	case ServiceGroupConsultation:
		switch date.Weekday() {
		case time.Saturday:
			return []string{"10:00 AM", "2:00 PM"}
		case time.Monday:
			return []string{"6:00 PM"}
		default:
			return nil
		}
	default:
		return recognizedPeriods[st]
	}
}

func withinTwoDays(date, now time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	today := now.Truncate(24 * time.Hour)
	return !d.After(today.Add(24 * time.Hour))
}
