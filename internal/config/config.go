package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	PublicBaseURL string
	LogLevel      string

	// Identity
	AuthJWTSecret string
	TokenTTL      time.Duration

	// Availability ledger
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	// Record stores
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string
	BookingsTable       string
	DoctorsTable        string
	SpecialtiesTable    string
	UsersTable          string

	// UseMemoryStores swaps DynamoDB for in-process stores in local dev.
	UseMemoryStores bool

	// Booking event feed
	UseMemoryQueue   bool
	BookingEventsURL string

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		AuthJWTSecret: getEnv("AUTH_JWT_SECRET", ""),
		TokenTTL:      getEnvAsDuration("AUTH_TOKEN_TTL", 24*time.Hour),

		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),
		BookingsTable:       getEnv("BOOKINGS_TABLE", "bookings"),
		DoctorsTable:        getEnv("DOCTORS_TABLE", "doctors"),
		SpecialtiesTable:    getEnv("SPECIALTIES_TABLE", "specialties"),
		UsersTable:          getEnv("USERS_TABLE", "users"),

		UseMemoryStores: getEnvAsBool("USE_MEMORY_STORES", false),

		UseMemoryQueue:   getEnvAsBool("USE_MEMORY_QUEUE", false),
		BookingEventsURL: getEnv("BOOKING_EVENTS_QUEUE_URL", ""),

		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsSlice splits a comma separated environment variable into a slice.
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
