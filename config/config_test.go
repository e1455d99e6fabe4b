package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, 60, cfg.Server.SessionRateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")

	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 10000, cfg.Session.MaxSessions)

	assert.InDelta(t, 25.00, cfg.Pricing.UnitPrice, 0.001)
	assert.InDelta(t, 0.10, cfg.Pricing.TaxRate, 0.001)

	assert.Equal(t, int64(2*1024*1024), cfg.Upload.MaxBytes)
	assert.Equal(t, 1000, cfg.Upload.MaxDimension)

	assert.Equal(t, "/assets/polos", cfg.Assets.BaseURL)

	assert.False(t, cfg.Auth.Enabled)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "kit_service", cfg.Database.DatabaseName)
	assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)

	assert.Empty(t, cfg.Notifier.EndpointURL)
	assert.Equal(t, 10*time.Second, cfg.Notifier.Timeout)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("UNIT_PRICE", "19.50")
	t.Setenv("TAX_RATE", "0.21")
	t.Setenv("UPLOAD_MAX_BYTES", "1024")
	t.Setenv("MONGODB_ENABLED", "true")
	t.Setenv("ORDER_NOTIFIER_URL", "https://orders.example.com/hook")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.InDelta(t, 19.50, cfg.Pricing.UnitPrice, 0.001)
	assert.InDelta(t, 0.21, cfg.Pricing.TaxRate, 0.001)
	assert.Equal(t, int64(1024), cfg.Upload.MaxBytes)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "https://orders.example.com/hook", cfg.Notifier.EndpointURL)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("TAX_RATE", "ten percent")
	t.Setenv("MONGODB_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.InDelta(t, 0.10, cfg.Pricing.TaxRate, 0.001)
	assert.False(t, cfg.Database.Enabled)
}

func TestParseAPIKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]bool
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single key", input: "key-1", expected: map[string]bool{"key-1": true}},
		{
			name:     "multiple with whitespace",
			input:    " key-1 , key-2 ,, ",
			expected: map[string]bool{"key-1": true, "key-2": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseAPIKeys(tt.input))
		})
	}
}

func TestParseCORSOrigins(t *testing.T) {
	origins := parseCORSOrigins("https://kits.example.com, https://staging.example.com")

	assert.Contains(t, origins, "http://localhost:3000")
	assert.Contains(t, origins, "https://kits.example.com")
	assert.Contains(t, origins, "https://staging.example.com")
}
