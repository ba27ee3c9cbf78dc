package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Cookie   CookieConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DSN string
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret           string
	SessionTokenDays int
	APITokenDays     int
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// Load reads configuration from .env file and environment variables.
// The signing secret and the database DSN have no defaults: a missing
// value is a startup failure, never a silently insecure fallback.
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required")
	}

	sessionDays, _ := strconv.Atoi(getEnv("SESSION_TOKEN_DAYS", "3"))
	apiDays, _ := strconv.Atoi(getEnv("API_TOKEN_DAYS", "30"))
	secure, _ := strconv.ParseBool(getEnv("COOKIE_SECURE", "false"))

	config := &Config{
		AppMode: appMode,
		Port:    getEnv("PORT", "3000"),
		Database: DatabaseConfig{
			DSN: dsn,
		},
		JWT: JWTConfig{
			Secret:           secret,
			SessionTokenDays: sessionDays,
			APITokenDays:     apiDays,
		},
		Cookie: CookieConfig{
			Secure:   secure,
			SameSite: getEnv("COOKIE_SAMESITE", "lax"),
			Domain:   getEnv("COOKIE_DOMAIN", ""),
		},
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://port-russell.example.com"
	}
	return origins
}
