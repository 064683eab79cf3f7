package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/medibook/booking-platform/internal/http/handlers"
	httpmiddleware "github.com/medibook/booking-platform/internal/http/middleware"
	"github.com/medibook/booking-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	AuthHandler         *handlers.AuthHandler
	DirectoryHandler    *handlers.DirectoryHandler
	AvailabilityHandler *handlers.AvailabilityHandler
	BookingsHandler     *handlers.BookingsHandler
	AuthSecret          string
	MetricsHandler      http.Handler
	CORSAllowedOrigins  []string

	// Requests/sec and burst for the write-path rate limit; zero disables it.
	WriteRateLimit float64
	WriteRateBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints
	r.Group(func(public chi.Router) {
		public.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok"}`))
		})

		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}

		if cfg.AuthHandler != nil {
			public.Post("/auth/signup", cfg.AuthHandler.Signup)
		}

		if cfg.DirectoryHandler != nil {
			public.Post("/init-data", cfg.DirectoryHandler.InitData)
			public.Get("/specialties", cfg.DirectoryHandler.ListSpecialties)
			public.Get("/specialties/{specialtyID}/doctors", cfg.DirectoryHandler.ListDoctors)
		}

		if cfg.AvailabilityHandler != nil {
			public.Get("/availability/{doctorID}/{date}/{period}", cfg.AvailabilityHandler.Check)
		}
	})

	// Authenticated endpoints
	r.Group(func(private chi.Router) {
		private.Use(httpmiddleware.BearerAuth(cfg.AuthSecret))

		if cfg.AuthHandler != nil {
			private.Get("/auth/profile", cfg.AuthHandler.Profile)
		}

		if cfg.BookingsHandler != nil {
			if cfg.WriteRateLimit > 0 {
				private.With(httpmiddleware.RateLimit(cfg.WriteRateLimit, cfg.WriteRateBurst)).
					Post("/bookings", cfg.BookingsHandler.Create)
			} else {
				private.Post("/bookings", cfg.BookingsHandler.Create)
			}
			private.Get("/bookings", cfg.BookingsHandler.List)
			private.Put("/bookings/{bookingID}", cfg.BookingsHandler.Update)
			private.Get("/doctor/appointments", cfg.BookingsHandler.DoctorAppointments)
		}
	})

	return r
}
