package users

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequest_Validate(t *testing.T) {
	valid := CreateUserRequest{Email: "a@b.com", Password: "secret", Name: "Alice", Role: RolePatient}
	assert.NoError(t, valid.Validate())

	missing := CreateUserRequest{Email: "a@b.com", Role: RolePatient}
	assert.ErrorIs(t, missing.Validate(), ErrMissingFields)

	badRole := CreateUserRequest{Email: "a@b.com", Password: "secret", Name: "Alice", Role: "admin"}
	assert.ErrorIs(t, badRole.Validate(), ErrInvalidRole)
}

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	user, err := repo.Create(ctx, &CreateUserRequest{
		Email: "alice@example.com", Password: "secret", Name: "Alice", Role: RolePatient,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	got, err := repo.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestIssueToken_RoundTrip(t *testing.T) {
	user := &User{ID: "user-123"}

	signed, err := IssueToken("test-secret", user, time.Hour)
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(signed, &claims, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestIssueToken_RequiresSecret(t *testing.T) {
	_, err := IssueToken("", &User{ID: "u"}, time.Hour)
	assert.Error(t, err)
}
