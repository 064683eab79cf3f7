package users

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueToken signs an HMAC bearer token whose subject is the user ID. The
// auth middleware validates it and resolves the profile on each request.
func IssueToken(secret string, user *User, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("users: signing secret required")
	}
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("users: failed to sign token: %w", err)
	}
	return signed, nil
}
