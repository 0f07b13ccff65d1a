// Package config loads the server-level settings from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds settings that are not owned by the db or redis packages.
type Config struct {
	Port string
	// CORSEnabled adds gin-contrib/cors with the default policy.
	CORSEnabled bool
	// LogErrors enables logging in the global error handler.
	LogErrors      bool
	CourseCacheTTL time.Duration
}

// Load reads .env if present, then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	return FromEnv()
}

// FromEnv reads the environment without touching .env.
func FromEnv() Config {
	return Config{
		Port:           getEnv("PORT", "5000"),
		CORSEnabled:    getEnvBool("CORS_ENABLED", false),
		LogErrors:      getEnvBool("ENABLE_GLOBAL_ERROR_LOGGING", false),
		CourseCacheTTL: getEnvDuration("COURSE_CACHE_TTL", 5*time.Minute),
	}
}

// Addr returns the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}
