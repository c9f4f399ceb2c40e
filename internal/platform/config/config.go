package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values of DB_DRIVER.
const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	Port         string `validate:"required,numeric"`
	IsProduction bool

	DBDriver      string `validate:"oneof=postgres sqlite"`
	DatabaseURL   string `validate:"required_if=DBDriver postgres"`
	SQLitePath    string `validate:"required_if=DBDriver sqlite"`
	RunMigrations bool

	// RDS IAM authentication for the postgres pool
	DBIAMAuth     bool
	AWSRegion     string `validate:"required_if=DBIAMAuth true"`
	AWSProfile    string
	DBIAMEndpoint string `validate:"required_if=DBIAMAuth true"`
	DBIAMUser     string `validate:"required_if=DBIAMAuth true"`

	JWTSecret string `validate:"required,min=16"`
	JWTIssuer string

	CORSAllowedOrigins []string `validate:"dive,required"`
	RateLimit          string   `validate:"required"`
	PosthogAPIKey      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DB_DRIVER", DBDriverPostgres)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_PATH", "ratechart.db")
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("DB_IAM_AUTH", false)
	viper.SetDefault("AWS_REGION", "")
	viper.SetDefault("AWS_PROFILE", "")
	viper.SetDefault("DB_IAM_ENDPOINT", "")
	viper.SetDefault("DB_IAM_USER", "")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		DBDriver:           strings.ToLower(viper.GetString("DB_DRIVER")),
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		SQLitePath:         viper.GetString("SQLITE_PATH"),
		RunMigrations:      viper.GetBool("RUN_MIGRATIONS"),
		DBIAMAuth:          viper.GetBool("DB_IAM_AUTH"),
		AWSRegion:          viper.GetString("AWS_REGION"),
		AWSProfile:         viper.GetString("AWS_PROFILE"),
		DBIAMEndpoint:      viper.GetString("DB_IAM_ENDPOINT"),
		DBIAMUser:          viper.GetString("DB_IAM_USER"),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		JWTIssuer:          viper.GetString("JWT_ISSUER"),
		CORSAllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:          viper.GetString("RATE_LIMIT"),
		PosthogAPIKey:      viper.GetString("POSTHOG_API_KEY"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.PosthogAPIKey == "" {
		slog.Info("POSTHOG_API_KEY not set. Usage analytics disabled.")
	}

	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
