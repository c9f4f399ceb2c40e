package repositories

import (
	"context"

	"github.com/SscSPs/ratechart_app/internal/models"
)

// RateSlabRowReader reads the flat rows of the slab/incentive/code value/currency left join.
//
// Implementations must return rows ordered by slab id and then incentive id, so that all
// rows of one slab are contiguous. Slabs without incentives yield one row whose
// incentive columns are NULL.
type RateSlabRowReader interface {
	// FindRateSlabRowsByChart retrieves the rows of every slab of a chart.
	FindRateSlabRowsByChart(ctx context.Context, chartID int64) ([]models.RateSlabRow, error)

	// FindRateSlabRowsByChartAndSlab retrieves the rows of one slab, restricted to the given chart.
	FindRateSlabRowsByChartAndSlab(ctx context.Context, chartID, slabID int64) ([]models.RateSlabRow, error)
}
