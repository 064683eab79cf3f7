package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medibook/booking-platform/internal/directory"
	"github.com/medibook/booking-platform/pkg/logging"
)

// DirectoryHandler serves the specialty/doctor catalog.
type DirectoryHandler struct {
	repo   directory.Repository
	logger *logging.Logger
}

// NewDirectoryHandler creates a catalog handler.
func NewDirectoryHandler(repo directory.Repository, logger *logging.Logger) *DirectoryHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &DirectoryHandler{repo: repo, logger: logger}
}

// ListSpecialties handles GET /specialties.
func (h *DirectoryHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.repo.ListSpecialties(r.Context())
	if err != nil {
		h.logger.Error("failed to list specialties", "error", err)
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]*directory.Specialty{"specialties": specialties})
}

// ListDoctors handles GET /specialties/{specialtyID}/doctors.
func (h *DirectoryHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	specialtyID := chi.URLParam(r, "specialtyID")
	doctors, err := h.repo.ListDoctorsBySpecialty(r.Context(), specialtyID)
	if err != nil {
		h.logger.Error("failed to list doctors", "error", err, "specialty_id", specialtyID)
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]*directory.Doctor{"doctors": doctors})
}

// InitData handles POST /init-data, seeding the stock catalog.
func (h *DirectoryHandler) InitData(w http.ResponseWriter, r *http.Request) {
	if err := directory.SeedDefaults(r.Context(), h.repo); err != nil {
		h.logger.Error("failed to seed catalog", "error", err)
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "data initialized successfully"})
}
