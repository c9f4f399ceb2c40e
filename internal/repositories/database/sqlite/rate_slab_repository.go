package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	portsrepo "github.com/SscSPs/ratechart_app/internal/core/ports/repositories"
	"github.com/SscSPs/ratechart_app/internal/models"
	"github.com/SscSPs/ratechart_app/internal/repositories/database/query"
)

var rateSlabQueries = query.NewRateSlabQueries(query.Question)

type SQLiteRateSlabRepository struct {
	BaseRepository
}

func newSQLiteRateSlabRepository(db *sql.DB) portsrepo.RateSlabRowReader {
	return &SQLiteRateSlabRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.RateSlabRowReader = (*SQLiteRateSlabRepository)(nil)

func (r *SQLiteRateSlabRepository) FindRateSlabRowsByChart(ctx context.Context, chartID int64) ([]models.RateSlabRow, error) {
	rows, err := r.queryRows(ctx, rateSlabQueries.ByChart, chartID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate slabs of chart %d: %w", chartID, err)
	}
	return rows, nil
}

func (r *SQLiteRateSlabRepository) FindRateSlabRowsByChartAndSlab(ctx context.Context, chartID, slabID int64) ([]models.RateSlabRow, error) {
	rows, err := r.queryRows(ctx, rateSlabQueries.ByChartAndSlab, chartID, slabID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate slab %d of chart %d: %w", slabID, chartID, err)
	}
	return rows, nil
}

func (r *SQLiteRateSlabRepository) queryRows(ctx context.Context, stmt string, args ...any) ([]models.RateSlabRow, error) {
	rows, err := r.DB.QueryContext(ctx, stmt, args...)
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
