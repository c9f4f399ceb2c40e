package mapping

import (
	"github.com/SscSPs/ratechart_app/internal/core/domain"
	"github.com/SscSPs/ratechart_app/internal/core/enumerations"
	"github.com/SscSPs/ratechart_app/internal/models"
)

// ToDomainRateSlab projects the slab and currency columns of a row.
// ok is false when the slab id is NULL or zero, i.e. the row carries no slab.
// The returned slab has no incentives.
func ToDomainRateSlab(row models.RateSlabRow) (slab domain.RateSlab, ok bool) {
	id, ok := presentID(row.SlabID)
	if !ok {
		return domain.RateSlab{}, false
	}

	return domain.RateSlab{
		ID:                 id,
		Description:        deref(row.Description),
		PeriodType:         enumerations.PeriodType(row.PeriodType),
		FromPeriod:         row.FromPeriod,
		ToPeriod:           row.ToPeriod,
		AmountRangeFrom:    row.AmountRangeFrom,
		AmountRangeTo:      row.AmountRangeTo,
		AnnualInterestRate: row.AnnualInterestRate.Decimal,
		Currency:           toDomainCurrency(row),
	}, true
}

// ToDomainIncentive projects the incentive columns of a row.
// ok is false when the incentive id is NULL or zero (no matching incentive in the join),
// whatever the other incentive columns hold.
func ToDomainIncentive(row models.RateSlabRow) (incentive domain.Incentive, ok bool) {
	id, ok := presentID(row.IncentiveID)
	if !ok {
		return domain.Incentive{}, false
	}

	var attributeValueDesc *string
	if enumerations.IsCodeValueAttribute(row.AttributeName) {
		attributeValueDesc = row.AttributeValueDesc
	}

	return domain.Incentive{
		ID:                        id,
		EntityType:                enumerations.EntityType(row.EntityType),
		AttributeName:             enumerations.AttributeName(row.AttributeName),
		ConditionType:             enumerations.ConditionType(row.ConditionType),
		AttributeValue:            deref(row.AttributeValue),
		AttributeValueDescription: attributeValueDesc,
		IncentiveType:             enumerations.IncentiveType(row.IncentiveType),
		Amount:                    row.Amount.Decimal,
	}, true
}

func toDomainCurrency(row models.RateSlabRow) domain.Currency {
	return domain.Currency{
		Code:          deref(row.CurrencyCode),
		Name:          deref(row.CurrencyName),
		NameCode:      deref(row.CurrencyNameCode),
		DisplaySymbol: deref(row.CurrencyDisplaySymbol),
		DecimalPlaces: row.CurrencyDigits,
		InMultiplesOf: row.CurrencyInMultiplesOf,
	}
}

// presentID treats NULL and zero ids as absent.
func presentID(id *int64) (int64, bool) {
	if id == nil || *id == 0 {
		return 0, false
	}
	return *id, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
