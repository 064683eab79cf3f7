package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/medibook/booking-platform/internal/http/middleware"
	"github.com/medibook/booking-platform/internal/users"
	"github.com/medibook/booking-platform/pkg/logging"
)

// AuthHandler covers signup and profile lookup. It is account plumbing
// around the booking core: its only job is handing out authenticated user
// identities.
type AuthHandler struct {
	repo     users.Repository
	secret   string
	tokenTTL time.Duration
	logger   *logging.Logger
}

// NewAuthHandler creates an auth handler signing tokens with the secret.
func NewAuthHandler(repo users.Repository, secret string, tokenTTL time.Duration, logger *logging.Logger) *AuthHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AuthHandler{repo: repo, secret: secret, tokenTTL: tokenTTL, logger: logger}
}

type signupResponse struct {
	User        *users.User `json:"user"`
	AccessToken string      `json:"accessToken"`
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req users.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Role == "" {
		req.Role = users.RolePatient
	}

	user, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("signup failed", "error", err)
		writeDomainError(w, err)
		return
	}

	token, err := users.IssueToken(h.secret, user, h.tokenTTL)
	if err != nil {
		h.logger.Error("failed to issue token", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("user created", "user_id", user.ID, "role", user.Role)
	writeJSON(w, http.StatusCreated, signupResponse{User: user, AccessToken: token})
}

// Profile handles GET /auth/profile.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.repo.Get(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*users.User{"user": user})
}
