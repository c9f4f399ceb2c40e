package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/ratechart_app/internal/analytics"
	portsrepo "github.com/SscSPs/ratechart_app/internal/core/ports/repositories"
	"github.com/SscSPs/ratechart_app/internal/core/services"
	"github.com/SscSPs/ratechart_app/internal/handlers"
	"github.com/SscSPs/ratechart_app/internal/middleware"
	"github.com/SscSPs/ratechart_app/internal/platform/config"
	"github.com/SscSPs/ratechart_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/ratechart_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/ratechart_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/stdlib"
)

// @title Rate Chart Backend API
// @version 1.0
// @description Read API for interest rate chart slabs and their incentives.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, closeDB, err := setupRepositories(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeDB()

	posthogClient := analytics.NewClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(rateLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(repos)
	handlers.RegisterRoutes(r, cfg, serviceContainer, repos.Health, middleware.UsageTrackingMiddleware(posthogClient))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupRepositories opens the configured database, applies migrations when enabled
// and returns the repositories together with a function that releases the database.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.DBDriver {
	case config.DBDriverSQLite:
		db, err := database.NewSQLiteDB(ctx, cfg.SQLitePath, logger)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		closeDB := func() {
			if cerr := db.Close(); cerr != nil {
				logger.Error("Error closing SQLite database", slog.String("error", cerr.Error()))
			}
		}
		if cfg.RunMigrations {
			if err := database.RunMigrations(db, database.DialectSQLite, logger); err != nil {
				closeDB()
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		return sqlite.NewRepositoryProvider(db), closeDB, nil

	case config.DBDriverPostgres:
		opts := database.PgxPoolOptions{DatabaseURL: cfg.DatabaseURL}
		if cfg.DBIAMAuth {
			opts.IAMAuth = &database.IAMAuthConfig{
				Region:   cfg.AWSRegion,
				Profile:  cfg.AWSProfile,
				Endpoint: cfg.DBIAMEndpoint,
				User:     cfg.DBIAMUser,
			}
		}
		dbPool, err := database.NewPgxPool(ctx, opts, logger)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		closeDB := func() { database.ClosePgxPool(dbPool, logger) }

		if cfg.RunMigrations {
			logger.Info("Running database migrations...")
			// Share the pool's connections so IAM tokens apply to migrations as well
			migrationDB := stdlib.OpenDBFromPool(dbPool)
			if err := runPostgresMigrations(migrationDB, logger); err != nil {
				closeDB()
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		return pgsql.NewRepositoryProvider(dbPool), closeDB, nil

	default:
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func runPostgresMigrations(db *sql.DB, logger *slog.Logger) error {
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}
	return database.RunMigrations(db, database.DialectPostgres, logger)
}
