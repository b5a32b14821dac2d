// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os"   // For reading environment variables
	"time" // For session lifetime parsing

	"github.com/joho/godotenv" // Loads .env files into the environment
)

type Config struct { // Config struct holds all configuration values
	Port          string        // Port the HTTP server listens on
	DBPath        string        // Path to the SQLite database file
	SessionSecret string        // Secret key for signing session cookies
	SessionTTL    time.Duration // How long a login session stays valid
	LogLevel      string        // Log level: debug, info, warn, error
	LogFormat     string        // Log format: console or json
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	_ = godotenv.Load() // Load .env if present; missing file is fine

	return &Config{
		Port:          getEnv("PORT", "8080"),                   // Get server port or use default
		DBPath:        getEnv("DB_PATH", "storefront.db"),       // Get DB path or use default
		SessionSecret: getEnv("SESSION_SECRET", "supersecret"),  // Get session secret or use default
		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour), // Get session lifetime or use default
		LogLevel:      getEnv("LOG_LEVEL", "info"),              // Get log level or use default
		LogFormat:     getEnv("LOG_FORMAT", "console"),          // Get log format or use default
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}

func getDuration(key string, fallback time.Duration) time.Duration { // Helper to parse a duration env var
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value) // Accepts forms like "30m" or "24h"
	if err != nil {
		return fallback // Malformed values fall back rather than crash
	}
	return d
}
