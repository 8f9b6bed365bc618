package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devJWTSecret = "petshop-dev-secret"

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set in production")

type Config struct {
	Addr        string
	Env         string
	DBDriver    string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration

	CookieSecure bool
	CORSOrigins  string

	RedisURL     string
	RedisChannel string

	AdminEmail    string
	AdminPassword string
	SeedPets      bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:          getEnvOrDefault("PET_SHOP_ADDR", ":8080"),
		Env:           getEnvOrDefault("APP_ENV", "development"),
		DBDriver:      getEnvOrDefault("DB_DRIVER", "sqlite3"),
		DatabaseURL:   getEnvOrDefault("DATABASE_URL", "petshop.db"),
		JWTSecret:     getEnvOrDefault("JWT_SECRET", ""),
		TokenTTL:      getDurationEnv("TOKEN_TTL", 24, time.Hour),
		CORSOrigins:   getEnvOrDefault("CORS_ORIGINS", "*"),
		RedisURL:      getEnvOrDefault("REDIS_URL", ""),
		RedisChannel:  getEnvOrDefault("REDIS_CHANNEL", "petshop:events"),
		AdminEmail:    getEnvOrDefault("ADMIN_EMAIL", "admin@petshop.com"),
		AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", "admin123"),
	}
	cfg.CookieSecure = getBoolEnv("COOKIE_SECURE", cfg.IsProduction())
	cfg.SeedPets = getBoolEnv("SEED_PETS", true)

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return Config{}, ErrMissingJWTSecret
		}
		cfg.JWTSecret = devJWTSecret
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
