package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPoolOptions configures NewPgxPool.
type PgxPoolOptions struct {
	DatabaseURL string
	// IAMAuth, when set, replaces the password of every new connection with an RDS IAM token.
	IAMAuth *IAMAuthConfig
}

// NewPgxPool creates a new PostgreSQL connection pool.
func NewPgxPool(ctx context.Context, opts PgxPoolOptions, logger *slog.Logger) (*pgxpool.Pool, error) {
	if opts.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	config, err := pgxpool.ParseConfig(opts.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}

	if opts.IAMAuth != nil {
		tokens, err := NewIAMTokenProvider(ctx, *opts.IAMAuth)
		if err != nil {
			return nil, err
		}
		config.BeforeConnect = func(ctx context.Context, connConfig *pgx.ConnConfig) error {
			token, err := tokens.Token(ctx)
			if err != nil {
				return err
			}
			connConfig.Password = token
			return nil
		}
		logger.Info("Using RDS IAM authentication for database connections",
			slog.String("endpoint", opts.IAMAuth.Endpoint),
			slog.String("user", opts.IAMAuth.User))
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Successfully connected to PostgreSQL database.")
	return pool, nil
}

// ClosePgxPool closes the PostgreSQL connection pool.
func ClosePgxPool(pool *pgxpool.Pool, logger *slog.Logger) {
	if pool != nil {
		pool.Close()
		logger.Info("PostgreSQL connection pool closed.")
	}
}
