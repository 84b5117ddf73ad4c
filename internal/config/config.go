// ABOUTME: Configuration loader for the rentadesk client
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"os"
	"strconv"

	"rentadesk/internal/session"
)

// DefaultAPIURL is used when neither flag nor environment specify a backend.
const DefaultAPIURL = "http://localhost:8001"

type Config struct {
	APIURL   string // backend base URL
	StateDir string // where the session token and profile are persisted
	Debug    bool   // write a debug log file into the state dir
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		APIURL:   getEnv("RENTADESK_API_URL", DefaultAPIURL),
		StateDir: getEnv("RENTADESK_STATE_DIR", session.DefaultStateDir()),
		Debug:    getEnvBool("RENTADESK_DEBUG", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
