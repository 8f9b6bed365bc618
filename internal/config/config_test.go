package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PET_SHOP_ADDR", "APP_ENV", "DB_DRIVER", "DATABASE_URL", "JWT_SECRET", "TOKEN_TTL", "COOKIE_SECURE", "SEED_PETS"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.Addr)
	}
	if cfg.DBDriver != "sqlite3" || cfg.DatabaseURL != "petshop.db" {
		t.Errorf("unexpected database defaults %q %q", cfg.DBDriver, cfg.DatabaseURL)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected 24h token ttl, got %v", cfg.TokenTTL)
	}
	if cfg.JWTSecret == "" {
		t.Errorf("expected development secret fallback")
	}
	if cfg.CookieSecure {
		t.Errorf("cookie should not be secure outside production by default")
	}
	if !cfg.SeedPets {
		t.Errorf("expected seeding enabled by default")
	}
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "2")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("DB_DRIVER", "pgx")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Errorf("expected 2h, got %v", cfg.TokenTTL)
	}
	if cfg.CookieSecure {
		t.Errorf("explicit COOKIE_SECURE=false should win")
	}
	if cfg.DBDriver != "pgx" {
		t.Errorf("expected pgx driver, got %q", cfg.DBDriver)
	}
}
