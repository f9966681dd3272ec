package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Expense fund accounting modes. See SymmetricExpenseAccounting.
const (
	ExpenseFundDeleteOnly = "delete_only"
	ExpenseFundSymmetric  = "symmetric"
)

// Config holds application configuration
type Config struct {
	Env string

	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// MetricsAPIKey guards /metrics. Empty disables the endpoint.
	MetricsAPIKey string

	// ExpenseFundAccounting selects whether expense create/update move fund
	// balances ("symmetric") or only expense deletion does ("delete_only").
	ExpenseFundAccounting string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "hearth"),
		DBPassword: getEnv("DB_PASSWORD", "hearth"),
		DBName:     getEnv("DB_NAME", "hearth"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		MetricsAPIKey: os.Getenv("METRICS_API_KEY"),

		ExpenseFundAccounting: getEnv("EXPENSE_FUND_ACCOUNTING", ExpenseFundDeleteOnly),
	}

	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	switch config.ExpenseFundAccounting {
	case ExpenseFundDeleteOnly, ExpenseFundSymmetric:
	default:
		return nil, fmt.Errorf("invalid EXPENSE_FUND_ACCOUNTING %q (use %s or %s)",
			config.ExpenseFundAccounting, ExpenseFundDeleteOnly, ExpenseFundSymmetric)
	}

	if config.Env == "production" && config.JWTSecret == "fallback-secret-key-for-dev-only" {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// SymmetricExpenseAccounting reports whether expense writes adjust fund balances
// on create and update as well as on delete.
func (c *Config) SymmetricExpenseAccounting() bool {
	return c.ExpenseFundAccounting == ExpenseFundSymmetric
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
