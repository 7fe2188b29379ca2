package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Email domains accepted by the two login forms. The remote API performs the
// real credential check; these suffixes only stop obviously wrong submissions
// before any network call is made.
const (
	CustomerEmailSuffix = "@gmail.com"
	AdminEmailSuffix    = "@admins.gourmetslice.in"
)

// Config carries everything the web app needs at startup.
type Config struct {
	Port          string
	APIBaseURL    string
	SessionDB     string
	SessionCookie string
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	return &Config{
		Port:          getEnv("PORT", "8080"),
		APIBaseURL:    getEnv("API_BASE_URL", "https://gourmet-slice.onrender.com"),
		SessionDB:     getEnv("SESSION_DB", "gourmet_slice_sessions.db"),
		SessionCookie: getEnv("SESSION_COOKIE", "gs_session"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
