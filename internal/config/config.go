package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string
	APIBaseURL   string // Base URL of the bookstore REST backend
	StorePath    string // Path of the durable local fallback store
	JWTSecret    string
	LogLevel     string
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:   port,
		DatabasePath: getEnv("DATABASE_PATH", "./bookstore.db"),
		APIBaseURL:   getEnv("API_BASE_URL", "http://localhost:8080"),
		StorePath:    getEnv("STORE_PATH", "./bookstore-local.db"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
