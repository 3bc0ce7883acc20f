package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Env carries developer-supplied configuration read from the environment.
// The Google credentials feed the calendar OAuth flow and may be empty, in
// which case the calendar connect action is disabled.
type Env struct {
	GoogleClientID     string
	GoogleClientSecret string
}

// LoadEnv reads a .env file when present, then the process environment.
// A missing .env file is not an error.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
	}
}

// HasGoogleCredentials reports whether both OAuth credentials are set.
func (e Env) HasGoogleCredentials() bool {
	return e.GoogleClientID != "" && e.GoogleClientSecret != ""
}
