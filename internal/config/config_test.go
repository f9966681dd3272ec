package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("EXPENSE_FUND_ACCOUNTING", "")
		t.Setenv("JWT_EXPIRES_IN", "")
		t.Setenv("PORT", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("expected port 8080, got %s", cfg.Port)
		}
		if cfg.JWTExpirationDur != 24*time.Hour {
			t.Errorf("expected 24h expiry, got %v", cfg.JWTExpirationDur)
		}
		if cfg.SymmetricExpenseAccounting() {
			t.Error("expected delete_only expense accounting by default")
		}
	})

	t.Run("symmetric_mode", func(t *testing.T) {
		t.Setenv("EXPENSE_FUND_ACCOUNTING", ExpenseFundSymmetric)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.SymmetricExpenseAccounting() {
			t.Error("expected symmetric expense accounting")
		}
	})

	t.Run("invalid_mode", func(t *testing.T) {
		t.Setenv("EXPENSE_FUND_ACCOUNTING", "sometimes")

		if _, err := Load(); err == nil {
			t.Fatal("expected error for unknown accounting mode")
		}
	})

	t.Run("invalid_jwt_expiry_falls_back", func(t *testing.T) {
		t.Setenv("EXPENSE_FUND_ACCOUNTING", "")
		t.Setenv("JWT_EXPIRES_IN", "soon")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.JWTExpirationDur != 24*time.Hour {
			t.Errorf("expected fallback 24h, got %v", cfg.JWTExpirationDur)
		}
	})

	t.Run("production_requires_secret", func(t *testing.T) {
		t.Setenv("EXPENSE_FUND_ACCOUNTING", "")
		t.Setenv("ENV", "production")
		t.Setenv("JWT_SECRET", "")

		if _, err := Load(); err == nil {
			t.Fatal("expected error for default secret in production")
		}
	})
}
