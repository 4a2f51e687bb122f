// Package config loads the backend configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP Server
	Port string

	// Database
	DBPath         string
	DBWaitTimeout  time.Duration
	DBWaitInterval time.Duration

	// Authentication
	TokenSecret   string
	TokenLifetime time.Duration
}

// Load reads the configuration from the environment. A .env file in the
// working directory is read first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8080"),

		DBPath:         getEnv("DB_PATH", "data/outlay.db"),
		DBWaitTimeout:  getEnvDuration("DB_WAIT_TIMEOUT", 30*time.Second),
		DBWaitInterval: getEnvDuration("DB_WAIT_INTERVAL", time.Second),

		TokenSecret:   getEnv("TOKEN_SECRET", ""),
		TokenLifetime: getEnvDuration("TOKEN_LIFETIME", 24*time.Hour),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.TokenSecret == "" {
		errors = append(errors, "TOKEN_SECRET must be set")
	}

	if c.TokenLifetime < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid token lifetime %v: must be at least 1 minute", c.TokenLifetime))
	}

	if c.DBWaitInterval > c.DBWaitTimeout {
		errors = append(errors, "DB_WAIT_INTERVAL must not be larger than DB_WAIT_TIMEOUT")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
