package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/ratechart_app/internal/core/ports/repositories"
	"github.com/SscSPs/ratechart_app/internal/models"
	"github.com/SscSPs/ratechart_app/internal/repositories/database/query"
	"github.com/jackc/pgx/v5/pgxpool"
)

var codeValueQueries = query.NewCodeValueQueries(query.Dollar)

type PgxCodeValueRepository struct {
	BaseRepository
}

// newPgxCodeValueRepository creates a new repository for code values.
func newPgxCodeValueRepository(pool *pgxpool.Pool) portsrepo.CodeValueReader {
	return &PgxCodeValueRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CodeValueReader = (*PgxCodeValueRepository)(nil)

// FindActiveCodeValuesByCodeName retrieves the active values of a code ordered by position.
func (r *PgxCodeValueRepository) FindActiveCodeValuesByCodeName(ctx context.Context, codeName string) ([]models.CodeValue, error) {
	rows, err := r.Pool.Query(ctx, codeValueQueries.ActiveByCodeName, codeName)
	if err != nil {
		return nil, fmt.Errorf("failed to query code values of %s: %w", codeName, err)
	}
	defer rows.Close()

	values := []models.CodeValue{}
	for rows.Next() {
		var v models.CodeValue
		if err := rows.Scan(&v.ID, &v.CodeID, &v.Value, &v.Description, &v.Position, &v.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan code value row: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating code value rows: %w", err)
	}
	return values, nil
}
