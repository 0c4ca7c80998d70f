// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultJWTSecret signs tokens when JWT_SECRET is unset. It is only fit for
// local development.
const DefaultJWTSecret = "splitpayment-dev-secret"

// MinJWTSecretLength is the shortest accepted signing secret.
const MinJWTSecretLength = 16

type Config struct {
	// HTTP Server
	Port       string
	StaticPath string

	// Database
	DBPath string

	// Logging
	LogLevel string

	// Auth
	JWTSecret     string
	TokenDuration time.Duration
	DemoUserID    string
	DemoUserName  string

	// AMQP, disabled when AMQPURL is empty
	AMQPURL        string
	AMQPExchange   string
	AMQPRoutingKey string

	MetricsEnabled bool
}

// Load reads the configuration from environment variables, falling back to
// defaults for anything unset. Call godotenv.Load first to pick up a .env file.
func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8080"),
		StaticPath: getEnv("STATIC_PATH", "../frontend/static"),

		DBPath: getEnv("DB_PATH", "./data/splitpayment.db"),

		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),

		JWTSecret:     getEnv("JWT_SECRET", DefaultJWTSecret),
		TokenDuration: getEnvDuration("TOKEN_DURATION", 24*time.Hour),
		DemoUserID:    getEnv("DEMO_USER_ID", "demo-user-id"),
		DemoUserName:  getEnv("DEMO_USER_NAME", "Demo User"),

		AMQPURL:        getEnv("AMQP_URL", ""),
		AMQPExchange:   getEnv("AMQP_EXCHANGE", "splitpayment.events"),
		AMQPRoutingKey: getEnv("AMQP_ROUTING_KEY", "expense.created"),

		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}
}

// Validate reports every invalid setting in a single error.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	}

	if _, err := c.Level(); err != nil {
		errors = append(errors, err.Error())
	}

	if len(c.JWTSecret) < MinJWTSecretLength {
		errors = append(errors, fmt.Sprintf("JWT secret must be at least %d characters", MinJWTSecretLength))
	}
	if c.TokenDuration < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid token duration %v: must be at least 1 minute", c.TokenDuration))
	}
	if c.DemoUserID != "" && strings.TrimSpace(c.DemoUserName) == "" {
		errors = append(errors, "demo user name cannot be empty when a demo user ID is set")
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPRoutingKey == "" {
			errors = append(errors, "AMQP routing key cannot be empty when AMQP URL is provided")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// Level converts LogLevel to a slog level.
func (c *Config) Level() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel)
	}
}

// Addr is the listen address for Port.
func (c *Config) Addr() string {
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
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
