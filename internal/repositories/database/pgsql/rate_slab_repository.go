package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/ratechart_app/internal/core/ports/repositories"
	"github.com/SscSPs/ratechart_app/internal/models"
	"github.com/SscSPs/ratechart_app/internal/repositories/database/query"
	"github.com/jackc/pgx/v5/pgxpool"
)

var rateSlabQueries = query.NewRateSlabQueries(query.Dollar)

type PgxRateSlabRepository struct {
	BaseRepository
}

// newPgxRateSlabRepository creates a new repository for rate slab rows.
func newPgxRateSlabRepository(pool *pgxpool.Pool) portsrepo.RateSlabRowReader {
	return &PgxRateSlabRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RateSlabRowReader = (*PgxRateSlabRepository)(nil)

// FindRateSlabRowsByChart retrieves the joined rows of every slab of a chart.
func (r *PgxRateSlabRepository) FindRateSlabRowsByChart(ctx context.Context, chartID int64) ([]models.RateSlabRow, error) {
	rows, err := r.queryRows(ctx, rateSlabQueries.ByChart, chartID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate slabs of chart %d: %w", chartID, err)
	}
	return rows, nil
}

// FindRateSlabRowsByChartAndSlab retrieves the joined rows of one slab of a chart.
func (r *PgxRateSlabRepository) FindRateSlabRowsByChartAndSlab(ctx context.Context, chartID, slabID int64) ([]models.RateSlabRow, error) {
	rows, err := r.queryRows(ctx, rateSlabQueries.ByChartAndSlab, chartID, slabID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate slab %d of chart %d: %w", slabID, chartID, err)
	}
	return rows, nil
}

func (r *PgxRateSlabRepository) queryRows(ctx context.Context, sql string, args ...any) ([]models.RateSlabRow, error) {
	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.RateSlabRow{}
	for rows.Next() {
		var row models.RateSlabRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, fmt.Errorf("failed to scan rate slab row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rate slab rows: %w", err)
	}
	return result, nil
}
