package users

import (
	"strings"
	"time"
)

// Roles a profile can carry. Doctors get access to the appointment dashboard.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// User is a stored profile. Authentication itself is token-based; the
// profile only records who the token subject is.
type User struct {
	ID        string    `dynamodbav:"id" json:"id"`
	Email     string    `dynamodbav:"email" json:"email"`
	Name      string    `dynamodbav:"name" json:"name"`
	Role      string    `dynamodbav:"role" json:"role"`
	CreatedAt time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// CreateUserRequest is the signup payload.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Validate checks the signup payload for required fields.
func (r *CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || strings.TrimSpace(r.Password) == "" || strings.TrimSpace(r.Name) == "" {
		return ErrMissingFields
	}
	switch r.Role {
	case RolePatient, RoleDoctor:
		return nil
	default:
		return ErrInvalidRole
	}
}
