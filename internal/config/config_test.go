package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var configKeys = []string{
	"APP_ENV", "APP_PORT", "MYSQL_HOST", "MYSQL_PORT", "MYSQL_DB", "MYSQL_USER", "MYSQL_PASS",
	"DB_LOG_LEVEL", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "IDEMPOTENCY_TTL_SECONDS",
	"FEED_CACHE_TTL_SECONDS", "JWT_SECRET", "JWT_ISSUER", "JWT_AUDIENCE",
	"MIN_CONTRIBUTION", "MAX_CONTRIBUTION",
}

// clearEnv blanks every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.AppEnv != "development" || c.AppPort != "8080" || c.MySQLDB != "peerlend" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.IdempotencyTTL() != 5*time.Minute || c.FeedCacheTTL() != 30*time.Second {
		t.Fatalf("ttl defaults = %v/%v", c.IdempotencyTTL(), c.FeedCacheTTL())
	}
	if c.MinContribution.String() != "50" || c.MaxContribution.String() != "5000" {
		t.Fatalf("contribution defaults = %s/%s", c.MinContribution, c.MaxContribution)
	}
	if c.JWTIssuer != "peerlend" || c.JWTAudience != "peerlend-api" {
		t.Fatalf("jwt defaults = %s/%s", c.JWTIssuer, c.JWTAudience)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "60")
	t.Setenv("MIN_CONTRIBUTION", "25.50")
	t.Setenv("MAX_CONTRIBUTION", "10000")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.IsProduction() || c.RedisDB != 3 || c.IdempTTLSecs != 60 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.MinContribution.StringFixed(2) != "25.50" || c.MaxContribution.String() != "10000" {
		t.Fatalf("contribution overrides = %s/%s", c.MinContribution, c.MaxContribution)
	}
}

func TestLoad_MalformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_DB", "one")
	t.Setenv("MAX_CONTRIBUTION", "lots")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error for malformed values")
	}
	if !strings.Contains(err.Error(), "REDIS_DB") || !strings.Contains(err.Error(), "MAX_CONTRIBUTION") {
		t.Fatalf("error should name every bad key: %v", err)
	}
}

func validConfig(t *testing.T) *Config {
	t.Helper()
	clearEnv(t)
	t.Setenv("JWT_SECRET", strings.Repeat("s", 32))
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return c
}

func TestValidate(t *testing.T) {
	if err := validConfig(t).Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing mysql host", func(c *Config) { c.MySQLHost = "" }},
		{"bad mysql port", func(c *Config) { c.MySQLPort = "not-a-port" }},
		{"missing app port", func(c *Config) { c.AppPort = "" }},
		{"missing redis", func(c *Config) { c.RedisAddr = "" }},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }},
		{"short secret in production", func(c *Config) { c.AppEnv = "production"; c.JWTSecret = "short" }},
		{"zero ttl", func(c *Config) { c.FeedCacheTTLSecs = 0 }},
		{"non-positive min", func(c *Config) { c.MinContribution = decimal.Zero }},
		{"max below min", func(c *Config) { c.MaxContribution = decimal.NewFromInt(10) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig(t)
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected Validate error")
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("JWT_SECRET=from-file\nAPP_PORT=9090\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// Already-set variables win over the file.
	t.Setenv("APP_PORT", "7070")
	os.Unsetenv("JWT_SECRET")
	t.Cleanup(func() { os.Unsetenv("JWT_SECRET") })

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.JWTSecret != "from-file" {
		t.Fatalf("JWT_SECRET = %q, want from-file", c.JWTSecret)
	}
	if c.AppPort != "7070" {
		t.Fatalf("APP_PORT = %q, want existing 7070", c.AppPort)
	}
}

func TestMySQLDSN(t *testing.T) {
	c := validConfig(t)
	dsn := c.MySQLDSN()
	if !strings.HasPrefix(dsn, "peerlend:peerlend@tcp(mysql:3306)/peerlend?") || !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("dsn = %q", dsn)
	}
}
