package services

import (
	"context"

	"github.com/SscSPs/ratechart_app/internal/core/domain"
)

// ChartDropdownSvc provides option lists for interest rate chart forms.
type ChartDropdownSvc interface {
	RetrievePeriodTypeOptions(ctx context.Context) ([]domain.EnumOption, error)
}

// IncentiveDropdownSvc provides option lists for interest incentive forms.
type IncentiveDropdownSvc interface {
	RetrieveEntityTypeOptions(ctx context.Context) ([]domain.EnumOption, error)
	RetrieveAttributeNameOptions(ctx context.Context) ([]domain.EnumOption, error)
	RetrieveConditionTypeOptions(ctx context.Context) ([]domain.EnumOption, error)
	RetrieveIncentiveTypeOptions(ctx context.Context) ([]domain.EnumOption, error)
}
