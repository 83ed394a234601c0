package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, read from the environment.
type Config struct {
	Env             string
	HTTPPort        string
	GRPCAddr        string
	JWTSecret       string
	ShutdownTimeout time.Duration

	Spanner SpannerConfig
	Redis   RedisConfig
	Pricing PricingConfig
	CORS    CORSConfig
}

type SpannerConfig struct {
	// Database is the full name: projects/P/instances/I/databases/D.
	Database string
}

// RedisConfig configures the cart store. Store "memory" keeps carts in
// process instead.
type RedisConfig struct {
	Store    string
	Addr     string
	Password string
	DB       int
	CartTTL  time.Duration
}

type PricingConfig struct {
	// UpsertMaxAttempts bounds the retries of a client price upsert that lost
	// a version race.
	UpsertMaxAttempts int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables, loading a .env file
// from the working directory first when one exists.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments use the environment only.
	_ = godotenv.Load()

	cfg := &Config{
		Env:       getEnv("ENV", "development"),
		HTTPPort:  getEnv("HTTP_PORT", "8080"),
		GRPCAddr:  getEnv("GRPC_ADDR", ":50051"),
		JWTSecret: getEnv("JWT_SECRET", ""),
		Spanner: SpannerConfig{
			Database: getEnv("SPANNER_DATABASE", "projects/test-project/instances/test-instance/databases/catalog"),
		},
		Redis: RedisConfig{
			Store:    getEnv("CART_STORE", "redis"),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Pricing: PricingConfig{
			UpsertMaxAttempts: getEnvInt("PRICING_UPSERT_MAX_ATTEMPTS", 3),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		},
	}

	var err error
	if cfg.Redis.CartTTL, err = parseDurationEnv("CART_TTL", "72h"); err != nil {
		return nil, fmt.Errorf("invalid CART_TTL: %w", err)
	}
	if cfg.ShutdownTimeout, err = parseDurationEnv("SHUTDOWN_TIMEOUT", "10s"); err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set for authentication")
	}
	if cfg.Pricing.UpsertMaxAttempts < 1 {
		return nil, errors.New("PRICING_UPSERT_MAX_ATTEMPTS must be at least 1")
	}
	if cfg.Redis.Store != "redis" && cfg.Redis.Store != "memory" {
		return nil, fmt.Errorf("CART_STORE must be redis or memory, got %q", cfg.Redis.Store)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool { return c.Env == "production" }

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// parseDurationEnv reads an environment variable as a time.Duration,
// falling back to def when unset.
func parseDurationEnv(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, def))
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
