package services

import (
	"context"

	"github.com/SscSPs/ratechart_app/internal/core/domain"
)

// RateSlabReaderSvc is the read API for interest rate chart slabs.
// Every operation requires an authenticated session.
type RateSlabReaderSvc interface {
	// RetrieveAll returns the slabs of a chart, possibly none.
	RetrieveAll(ctx context.Context, chartID int64) ([]domain.RateSlab, error)

	// RetrieveOne returns one slab of a chart or an *apperrors.RateSlabNotFoundError.
	RetrieveOne(ctx context.Context, chartID, slabID int64) (*domain.RateSlab, error)

	// RetrieveTemplate returns the option lists for a new slab.
	RetrieveTemplate(ctx context.Context) (*domain.RateSlabTemplate, error)

	// RetrieveWithTemplate returns slab together with the option lists for editing it.
	RetrieveWithTemplate(ctx context.Context, slab domain.RateSlab) (*domain.RateSlabTemplate, error)
}
