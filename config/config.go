// Package config provides configuration management for the projtrack application.
// It handles loading and validation of configuration values from environment
// variables, with support for required variables, default values, and
// collective error reporting: all problems found during loading are reported
// at once instead of one at a time.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// MongoConfig holds document store connection settings.
type MongoConfig struct {
	URI      string // MongoDB connection string
	Database string // Database name
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret     string        // Secret key for signing JWTs
	TokenDuration time.Duration // Lifetime of issued bearer tokens
}

// MailConfig holds SMTP settings for outgoing mail (password reset emails).
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // Sender address for outgoing messages
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port           string   // Port for the HTTP server
	AllowedOrigins []string // CORS allowed origins
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Mongo  *MongoConfig
	Auth   *AuthConfig
	Mail   *MailConfig
	Server *ServerConfig
}

// getRequiredEnv reads a required environment variable, appending an error to
// the errors slice if the variable is not set.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// getOptionalEnv reads an optional environment variable with a default value.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvInt reads an optional environment variable parsed as an int.
// Uses defaultValue if not set; appends an error if parsing fails.
func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// getOptionalEnvDuration reads an optional environment variable parsed as a
// time.Duration (e.g. "15m", "168h"). Uses defaultValue if not set; appends an
// error if parsing fails.
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// parseOrigins splits a comma-separated origins list, trimming whitespace and
// dropping empty entries.
func parseOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables. It collects all errors encountered during loading
// and returns a single aggregated error if any exist.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	// Document store configuration
	mongoURI := getRequiredEnv("MONGODB_URI", &errors)
	mongoDatabase := getOptionalEnv("MONGODB_DATABASE", "projtrack")

	mongoConfig := &MongoConfig{
		URI:      mongoURI,
		Database: mongoDatabase,
	}

	// Auth configuration
	jwtSecret := getRequiredEnv("JWT_SECRET", &errors)
	// Bearer tokens are valid for 7 days from issuance.
	tokenDuration := getOptionalEnvDuration("JWT_TOKEN_DURATION", 168*time.Hour, &errors)

	authConfig := &AuthConfig{
		JWTSecret:     jwtSecret,
		TokenDuration: tokenDuration,
	}

	// Mail configuration. The password reset flow depends on outgoing mail, so
	// the SMTP settings are required.
	mailConfig := &MailConfig{
		Host:     getRequiredEnv("SMTP_HOST", &errors),
		Port:     getOptionalEnvInt("SMTP_PORT", 587, &errors),
		Username: getRequiredEnv("SMTP_USERNAME", &errors),
		Password: getRequiredEnv("SMTP_PASSWORD", &errors),
		From:     getOptionalEnv("MAIL_FROM", ""),
	}
	if mailConfig.From == "" {
		// Default the sender to the SMTP account, matching the original setup.
		mailConfig.From = mailConfig.Username
	}

	// Server configuration
	serverConfig := &ServerConfig{
		Port:           getOptionalEnv("PORT", "8080"),
		AllowedOrigins: parseOrigins(getOptionalEnv("ALLOWED_ORIGINS", "*")),
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		Mongo:  mongoConfig,
		Auth:   authConfig,
		Mail:   mailConfig,
		Server: serverConfig,
	}, nil
}
