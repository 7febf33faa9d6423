package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	AppEnv  string
	AppPort string

	MySQLHost  string
	MySQLPort  string
	MySQLDB    string
	MySQLUser  string
	MySQLPass  string
	DBLogLevel string

	RedisAddr string
	RedisPass string
	RedisDB   int

	IdempTTLSecs     int
	FeedCacheTTLSecs int

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	MinContribution decimal.Decimal
	MaxContribution decimal.Decimal
}

func getenv(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

// LoadDotEnv loads KEY=VALUE files into the environment without overriding
// variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads the configuration from the environment. Malformed numeric
// values are errors rather than silently defaulted.
func Load() (*Config, error) {
	c := &Config{
		AppEnv:     getenv("APP_ENV", "development"),
		AppPort:    getenv("APP_PORT", "8080"),
		MySQLHost:  getenv("MYSQL_HOST", "mysql"),
		MySQLPort:  getenv("MYSQL_PORT", "3306"),
		MySQLDB:    getenv("MYSQL_DB", "peerlend"),
		MySQLUser:  getenv("MYSQL_USER", "peerlend"),
		MySQLPass:  getenv("MYSQL_PASS", "peerlend"),
		DBLogLevel: getenv("DB_LOG_LEVEL", "warn"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   getenv("JWT_ISSUER", "peerlend"),
		JWTAudience: getenv("JWT_AUDIENCE", "peerlend-api"),
	}

	var errs []error
	intVar := func(dst *int, key string, def int) {
		*dst = def
		raw := getenv(key, "")
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s %q: %w", key, raw, err))
			return
		}
		*dst = n
	}
	decVar := func(dst *decimal.Decimal, key, def string) {
		raw := getenv(key, def)
		d, err := decimal.NewFromString(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s %q: %w", key, raw, err))
			return
		}
		*dst = d
	}

	intVar(&c.RedisDB, "REDIS_DB", 0)
	intVar(&c.IdempTTLSecs, "IDEMPOTENCY_TTL_SECONDS", 300)
	intVar(&c.FeedCacheTTLSecs, "FEED_CACHE_TTL_SECONDS", 30)
	decVar(&c.MinContribution, "MIN_CONTRIBUTION", "50")
	decVar(&c.MaxContribution, "MAX_CONTRIBUTION", "5000")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) IsProduction() bool { return c.AppEnv == "prod" || c.AppEnv == "production" }

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.RedisAddr == "" {
		return errors.New("missing REDIS_ADDR")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.IsProduction() && len(c.JWTSecret) < 32 {
		return errors.New("JWT_SECRET must be at least 32 bytes in production")
	}
	if c.IdempTTLSecs <= 0 || c.FeedCacheTTLSecs <= 0 {
		return errors.New("IDEMPOTENCY_TTL_SECONDS and FEED_CACHE_TTL_SECONDS must be positive")
	}
	if !c.MinContribution.IsPositive() {
		return fmt.Errorf("MIN_CONTRIBUTION must be positive, got %s", c.MinContribution)
	}
	if c.MaxContribution.LessThan(c.MinContribution) {
		return fmt.Errorf("MAX_CONTRIBUTION %s is below MIN_CONTRIBUTION %s", c.MaxContribution, c.MinContribution)
	}
	return nil
}

func (c *Config) IdempotencyTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }

func (c *Config) FeedCacheTTL() time.Duration { return time.Duration(c.FeedCacheTTLSecs) * time.Second }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime is needed for DATETIME columns
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
