package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func loadFrom(t *testing.T, env map[string]string) (*Config, error) {
	t.Helper()
	var cfg Config
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(env),
	})
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadFrom(t, map[string]string{"JWT_SECRET": "s3cret"})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected default token ttl 24h, got %v", cfg.TokenTTL)
	}
	if cfg.Mongo.Database != "user_address_api" {
		t.Errorf("expected default mongo database, got %s", cfg.Mongo.Database)
	}
	if cfg.Redis.Timeout != 5*time.Second {
		t.Errorf("expected default redis timeout 5s, got %v", cfg.Redis.Timeout)
	}
	if cfg.ViaCEP.BaseURL != "https://viacep.com.br" {
		t.Errorf("expected default viacep base url, got %s", cfg.ViaCEP.BaseURL)
	}
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	if _, err := loadFrom(t, map[string]string{}); err == nil {
		t.Fatalf("expected an error when JWT_SECRET is missing")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := loadFrom(t, map[string]string{
		"JWT_SECRET":    "s3cret",
		"PORT":          "9090",
		"TOKEN_TTL":     "1h",
		"REDIS_TIMEOUT": "250ms",
		"REDIS_ADDR":    "redis:6380",
	})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("expected token ttl 1h, got %v", cfg.TokenTTL)
	}
	if cfg.Redis.Timeout != 250*time.Millisecond {
		t.Errorf("expected redis timeout 250ms, got %v", cfg.Redis.Timeout)
	}
	if cfg.Redis.Addr != "redis:6380" {
		t.Errorf("expected redis addr override, got %s", cfg.Redis.Addr)
	}
}
