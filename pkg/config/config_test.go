package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.App.Name != "lexai-backend" {
		t.Errorf("expected default app name lexai-backend, got %s", cfg.App.Name)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.MongoDB.Database != "lexai_db" {
		t.Errorf("expected default database lexai_db, got %s", cfg.MongoDB.Database)
	}
	if cfg.JWT.TokenTTL != 24*time.Hour {
		t.Errorf("expected default token TTL 24h, got %s", cfg.JWT.TokenTTL)
	}
	if cfg.JWT.Issuer != "lexai-backend" {
		t.Errorf("expected default issuer lexai-backend, got %s", cfg.JWT.Issuer)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MONGODB_DATABASE", "lexai_test")
	t.Setenv("JWT_TOKEN_TTL", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.MongoDB.Database != "lexai_test" {
		t.Errorf("expected database lexai_test, got %s", cfg.MongoDB.Database)
	}
	if cfg.JWT.TokenTTL != time.Hour {
		t.Errorf("expected token TTL 1h, got %s", cfg.JWT.TokenTTL)
	}
}

func TestServerAddr(t *testing.T) {
	cfg := &ServerConfig{Host: "127.0.0.1", Port: 8081}
	if cfg.Addr() != "127.0.0.1:8081" {
		t.Errorf("unexpected addr: %s", cfg.Addr())
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:     AppConfig{Name: "lexai-backend", Environment: "development"},
			Server:  ServerConfig{Host: "0.0.0.0", Port: 8080},
			MongoDB: MongoDBConfig{URI: "mongodb://localhost:27017", Database: "lexai_db"},
			JWT:     JWTConfig{Secret: "test-secret", TokenTTL: 24 * time.Hour},
		}
	}

	t.Run("valid config", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("expected valid config, got error: %v", err)
		}
	})

	t.Run("missing app name", func(t *testing.T) {
		cfg := valid()
		cfg.App.Name = ""
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for missing app name")
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = 0
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for invalid port")
		}
	})

	t.Run("missing mongodb uri", func(t *testing.T) {
		cfg := valid()
		cfg.MongoDB.URI = ""
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for missing mongodb uri")
		}
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := valid()
		cfg.JWT.Secret = ""
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for missing JWT secret")
		}
	})

	t.Run("non-positive token ttl", func(t *testing.T) {
		cfg := valid()
		cfg.JWT.TokenTTL = 0
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for zero token TTL")
		}
	})

	t.Run("placeholder secret rejected in production", func(t *testing.T) {
		cfg := valid()
		cfg.App.Environment = "production"
		cfg.JWT.Secret = defaultJWTSecret
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for placeholder secret in production")
		}
	})

	t.Run("placeholder secret allowed in development", func(t *testing.T) {
		cfg := valid()
		cfg.JWT.Secret = defaultJWTSecret
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected placeholder secret to be allowed in development, got %v", err)
		}
	})
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := &Config{App: AppConfig{Environment: "production"}}
	if !cfg.IsProduction() {
		t.Error("expected IsProduction to be true")
	}
	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to be false")
	}
}
