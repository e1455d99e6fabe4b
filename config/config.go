// Package config provides configuration management for the kit service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Session  SessionConfig
	Pricing  PricingConfig
	Upload   UploadConfig
	Assets   AssetsConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Notifier NotifierConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port             string
	RateLimit        int
	SessionRateLimit int
	RateWindow       time.Duration
	CORSOrigins      []string
	SwaggerUser      string
	SwaggerPass      string
}

// SessionConfig holds kit session lifecycle configuration.
type SessionConfig struct {
	TTL         time.Duration
	MaxSessions int
}

// PricingConfig holds order pricing constants.
type PricingConfig struct {
	UnitPrice float64
	TaxRate   float64
}

// UploadConfig holds artwork upload limits.
type UploadConfig struct {
	MaxBytes     int64
	MaxDimension int
}

// AssetsConfig holds garment artwork resolution configuration.
type AssetsConfig struct {
	BaseURL string
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled      bool
	APIKeys      map[string]bool
	JWTSecretKey string
}

// DatabaseConfig holds MongoDB configuration for the team directory
// and order archive.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	Enabled      bool

	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// NotifierConfig holds the order-confirmation collaborator configuration.
type NotifierConfig struct {
	EndpointURL string
	Timeout     time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:             getEnv("PORT", "8080"),
			RateLimit:        getEnvInt("RATE_LIMIT", 100),
			SessionRateLimit: getEnvInt("SESSION_RATE_LIMIT", 60),
			RateWindow:       getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins:      parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:      getEnv("SWAGGER_USER", ""),
			SwaggerPass:      getEnv("SWAGGER_PASS", ""),
		},
		Session: SessionConfig{
			TTL:         getEnvDuration("SESSION_TTL", 2*time.Hour),
			MaxSessions: getEnvInt("SESSION_MAX", 10000),
		},
		Pricing: PricingConfig{
			UnitPrice: getEnvFloat("UNIT_PRICE", 25.00),
			TaxRate:   getEnvFloat("TAX_RATE", 0.10),
		},
		Upload: UploadConfig{
			MaxBytes:     int64(getEnvInt("UPLOAD_MAX_BYTES", 2*1024*1024)),
			MaxDimension: getEnvInt("UPLOAD_MAX_DIMENSION", 1000),
		},
		Assets: AssetsConfig{
			BaseURL: getEnv("ASSETS_BASE_URL", "/assets/polos"),
		},
		Auth: AuthConfig{
			Enabled:      getEnvBool("AUTH_ENABLED", false),
			APIKeys:      parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecretKey: getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
		},
		Database: DatabaseConfig{
			URI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName: getEnv("MONGODB_DATABASE", "kit_service"),
			Enabled:      getEnvBool("MONGODB_ENABLED", false),

			CircuitBreakerFailureThreshold: getEnvInt("DB_CB_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("DB_CB_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("DB_CB_TIMEOUT", 30*time.Second),
		},
		Notifier: NotifierConfig{
			EndpointURL: getEnv("ORDER_NOTIFIER_URL", ""),
			Timeout:     getEnvDuration("ORDER_NOTIFIER_TIMEOUT", 10*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
