package mapping

import (
	"github.com/SscSPs/ratechart_app/internal/core/domain"
	"github.com/SscSPs/ratechart_app/internal/models"
)

// ToDomainCodeValue converts a model CodeValue to a domain CodeValue
func ToDomainCodeValue(m models.CodeValue) domain.CodeValue {
	return domain.CodeValue{
		ID:          m.ID,
		Name:        m.Value,
		Description: m.Description,
		Position:    m.Position,
		Active:      m.IsActive,
	}
}

// ToDomainCodeValueSlice converts a slice of model CodeValues to a slice of domain CodeValues
func ToDomainCodeValueSlice(ms []models.CodeValue) []domain.CodeValue {
	ds := make([]domain.CodeValue, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCodeValue(m)
	}
	return ds
}
