// Package sqlite implements the repositories on a SQLite database. It backs
// local development and the SQL integration tests.
package sqlite

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/SscSPs/ratechart_app/internal/apperrors"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sql.DB
}

// Ping checks that the database is reachable
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.DB.PingContext(ctx); err != nil {
		return apperrors.NewAppError(http.StatusServiceUnavailable, "database unreachable", err)
	}
	return nil
}
