package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_GetDoctor(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	err := repo.PutDoctor(ctx, &Doctor{ID: "1", Name: "Dr. Sarah Wilson", SpecialtyID: "cardiology", DailyLimit: 12})
	require.NoError(t, err)

	doctor, err := repo.GetDoctor(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Wilson", doctor.Name)
	assert.Equal(t, 12, doctor.DailyLimit)

	_, err = repo.GetDoctor(ctx, "999")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestInMemoryRepository_RejectsInvalidDoctor(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	err := repo.PutDoctor(ctx, &Doctor{ID: "x", Name: "Dr. Zero", DailyLimit: 0})
	assert.ErrorIs(t, err, ErrInvalidDailyLimit)

	err = repo.PutDoctor(ctx, &Doctor{Name: "No ID", DailyLimit: 5})
	assert.ErrorIs(t, err, ErrInvalidDoctor)
}

func TestInMemoryRepository_ListDoctorsBySpecialty(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, SeedDefaults(ctx, repo))

	cardio, err := repo.ListDoctorsBySpecialty(ctx, "cardiology")
	require.NoError(t, err)
	assert.Len(t, cardio, 2)

	none, err := repo.ListDoctorsBySpecialty(ctx, "radiology")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSeedDefaults_Idempotent(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, SeedDefaults(ctx, repo))
	require.NoError(t, SeedDefaults(ctx, repo))

	specialties, err := repo.ListSpecialties(ctx)
	require.NoError(t, err)
	assert.Len(t, specialties, 8)
	assert.Equal(t, "cardiology", specialties[0].ID)
}
