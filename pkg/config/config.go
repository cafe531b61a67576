package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const defaultJWTSecret = "secret"

type Config struct {
	Port               string `validate:"required,numeric"`
	DatabaseURL        string `validate:"required"`
	AppEnv             string `validate:"required"`
	BaseURL            string `validate:"omitempty,url"`
	FrontendURL        string `validate:"omitempty,url"`
	CORSOrigin         string
	JWTSecret          string `validate:"required"`
	AdminAPIKey        string
	AdminUsername      string `validate:"required"`
	AdminPassword      string
	AllowedEmails      []string `validate:"dive,email"`
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	LogLevel           string `validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat          string `validate:"oneof=text json"`
	SeedSampleData     bool
	BreakerFailures    uint32
	BreakerTimeout     time.Duration
}

func Load() *Config {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", "file:jobboard.sqlite"),
		AppEnv:             getEnv("APP_ENV", "local"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:8080"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		CORSOrigin:         getEnv("CORS_ORIGIN", "http://localhost:3000"),
		JWTSecret:          getEnv("JWT_SECRET", defaultJWTSecret),
		AdminAPIKey:        getEnv("ADMIN_API_KEY", ""),
		AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
		AllowedEmails:      splitList(getEnv("ALLOWED_EMAILS", "")),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/auth/google/callback"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		SeedSampleData:     getBool("SEED_SAMPLE_DATA", true),
		BreakerFailures:    uint32(getInt("BREAKER_FAILURES", 5)),
		BreakerTimeout:     getDuration("BREAKER_TIMEOUT", 30*time.Second),
	}
}

// Validate checks field formats and refuses the default JWT secret in production.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.IsProduction() && c.JWTSecret == defaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// GoogleEnabled reports whether admin sign-in through Google is configured.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
