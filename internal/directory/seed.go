package directory

import (
	"context"
	"fmt"
)

// DefaultSpecialties returns the hospital's eight stock departments.
func DefaultSpecialties() []*Specialty {
	return []*Specialty{
		{ID: "cardiology", Name: "Cardiology", Description: "Heart and cardiovascular system"},
		{ID: "neurology", Name: "Neurology", Description: "Brain and nervous system"},
		{ID: "pediatrics", Name: "Pediatrics", Description: "Children and adolescent care"},
		{ID: "orthopedics", Name: "Orthopedics", Description: "Bones, joints, and muscles"},
		{ID: "ophthalmology", Name: "Ophthalmology", Description: "Eye and vision care"},
		{ID: "dermatology", Name: "Dermatology", Description: "Skin and related conditions"},
		{ID: "psychiatry", Name: "Psychiatry", Description: "Mental health and wellness"},
		{ID: "internal-medicine", Name: "Internal Medicine", Description: "General adult medicine"},
	}
}

// DefaultDoctors returns the stock roster with per-doctor daily limits.
func DefaultDoctors() []*Doctor {
	return []*Doctor{
		{ID: "1", Name: "Dr. Sarah Wilson", SpecialtyID: "cardiology", DailyLimit: 12, Rating: 4.9, Experience: "15 years"},
		{ID: "2", Name: "Dr. Michael Chen", SpecialtyID: "cardiology", DailyLimit: 10, Rating: 4.8, Experience: "12 years"},
		{ID: "3", Name: "Dr. Emily Johnson", SpecialtyID: "neurology", DailyLimit: 8, Rating: 4.9, Experience: "18 years"},
		{ID: "4", Name: "Dr. James Rodriguez", SpecialtyID: "neurology", DailyLimit: 10, Rating: 4.7, Experience: "14 years"},
		{ID: "5", Name: "Dr. Lisa Thompson", SpecialtyID: "pediatrics", DailyLimit: 15, Rating: 4.8, Experience: "10 years"},
		{ID: "6", Name: "Dr. Robert Martinez", SpecialtyID: "orthopedics", DailyLimit: 8, Rating: 4.7, Experience: "16 years"},
		{ID: "7", Name: "Dr. Jennifer Davis", SpecialtyID: "ophthalmology", DailyLimit: 12, Rating: 4.9, Experience: "13 years"},
		{ID: "8", Name: "Dr. Alex Rodriguez", SpecialtyID: "dermatology", DailyLimit: 14, Rating: 4.8, Experience: "11 years"},
		{ID: "9", Name: "Dr. Maria Garcia", SpecialtyID: "psychiatry", DailyLimit: 6, Rating: 4.7, Experience: "9 years"},
		{ID: "10", Name: "Dr. Thomas Brown", SpecialtyID: "internal-medicine", DailyLimit: 16, Rating: 4.6, Experience: "20 years"},
	}
}

// SeedDefaults loads the stock specialties and doctors into the repository.
// Existing records with the same IDs are overwritten, so the call is
// idempotent.
func SeedDefaults(ctx context.Context, repo Repository) error {
	for _, sp := range DefaultSpecialties() {
		if err := repo.PutSpecialty(ctx, sp); err != nil {
			return fmt.Errorf("directory: seed specialty %s: %w", sp.ID, err)
		}
	}
	for _, d := range DefaultDoctors() {
		if err := repo.PutDoctor(ctx, d); err != nil {
			return fmt.Errorf("directory: seed doctor %s: %w", d.ID, err)
		}
	}
	return nil
}
