package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"wealthcheck/internal/models"
	"wealthcheck/internal/report"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Firm printed on every report
	Firm models.Firm
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	return FromEnv(), nil
}

// FromEnv builds a Config from the current environment without reading .env.
func FromEnv() *Config {
	def := report.DefaultFirm

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Firm
		Firm: models.Firm{
			Name:    getEnv("FIRM_NAME", def.Name),
			Advisor: getEnv("FIRM_ADVISOR", def.Advisor),
			Phone:   getEnv("FIRM_PHONE", def.Phone),
			Email:   getEnv("FIRM_EMAIL", def.Email),
			Website: getEnv("FIRM_WEBSITE", def.Website),
			License: getEnv("FIRM_LICENSE", def.License),
		},
	}

	return config
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
