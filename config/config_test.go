package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"GIN_MODE", "DATABASE_DRIVER", "DATABASE_DSN", "PORT", "ALLOWED_ORIGINS", "CAFE_API_KEY", "CAFE_API_KEY_HASH"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Database.Driver != "sqlite" || cfg.Database.DSN != "cafes.db" {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
	if !cfg.Debug || !cfg.Database.Debug {
		t.Errorf("expected debug mode when GIN_MODE is unset")
	}
	if cfg.Port != "8083" {
		t.Errorf("expected port 8083, got %s", cfg.Port)
	}
	if cfg.APIKey != "TopSecretAPIKey" {
		t.Errorf("expected default api key, got %q", cfg.APIKey)
	}
	if len(cfg.AllowedOrigins) != 1 {
		t.Errorf("expected only the localhost origin, got %v", cfg.AllowedOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_DSN", "host=db user=cafe dbname=cafe")
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("CAFE_API_KEY", "s3cret")
	t.Setenv("CAFE_API_KEY_HASH", "$2a$10$hash")

	cfg := Load()

	if cfg.Debug {
		t.Errorf("expected release mode")
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected driver to be lower-cased, got %s", cfg.Database.Driver)
	}
	if cfg.Database.DSN != "host=db user=cafe dbname=cafe" {
		t.Errorf("unexpected dsn %q", cfg.Database.DSN)
	}
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 3 || cfg.AllowedOrigins[2] != "https://b.example" {
		t.Errorf("unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.APIKey != "s3cret" || cfg.APIKeyHash != "$2a$10$hash" {
		t.Errorf("unexpected api key config %q / %q", cfg.APIKey, cfg.APIKeyHash)
	}
}
