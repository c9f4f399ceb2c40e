package services

import (
	"context"

	"github.com/SscSPs/ratechart_app/internal/core/domain"
	"github.com/SscSPs/ratechart_app/internal/core/enumerations"
	portssvc "github.com/SscSPs/ratechart_app/internal/core/ports/services"
)

// DropdownService serves the fixed enumeration option lists.
type DropdownService struct{}

// NewDropdownService creates the option provider for chart and incentive forms.
func NewDropdownService() *DropdownService {
	return &DropdownService{}
}

var (
	_ portssvc.ChartDropdownSvc     = (*DropdownService)(nil)
	_ portssvc.IncentiveDropdownSvc = (*DropdownService)(nil)
)

func (s *DropdownService) RetrievePeriodTypeOptions(_ context.Context) ([]domain.EnumOption, error) {
	return enumerations.PeriodTypeOptions(), nil
}

func (s *DropdownService) RetrieveEntityTypeOptions(_ context.Context) ([]domain.EnumOption, error) {
	return enumerations.EntityTypeOptions(), nil
}

func (s *DropdownService) RetrieveAttributeNameOptions(_ context.Context) ([]domain.EnumOption, error) {
	return enumerations.AttributeNameOptions(), nil
}

func (s *DropdownService) RetrieveConditionTypeOptions(_ context.Context) ([]domain.EnumOption, error) {
	return enumerations.ConditionTypeOptions(), nil
}

func (s *DropdownService) RetrieveIncentiveTypeOptions(_ context.Context) ([]domain.EnumOption, error) {
	return enumerations.IncentiveTypeOptions(), nil
}
