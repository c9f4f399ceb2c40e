package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/ratechart_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Ping checks that the database is reachable
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.Pool.Ping(ctx); err != nil {
		return apperrors.NewAppError(http.StatusServiceUnavailable, "database unreachable", err)
	}
	return nil
}
