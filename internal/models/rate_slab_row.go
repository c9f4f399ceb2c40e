package models

import "github.com/shopspring/decimal"

// RateSlabRow is one row of the slab/incentive/code value/currency left join.
// Every column is nullable because a row may be an outer-join sentinel.
type RateSlabRow struct {
	// Slab columns (m_interest_rate_slab)
	SlabID             *int64              `db:"ircd_id"`
	Description        *string             `db:"ircd_description"`
	PeriodType         *int32              `db:"ircd_period_type_enum"`
	FromPeriod         *int32              `db:"ircd_from_period"`
	ToPeriod           *int32              `db:"ircd_to_period"`
	AmountRangeFrom    decimal.NullDecimal `db:"ircd_amount_range_from"`
	AmountRangeTo      decimal.NullDecimal `db:"ircd_amount_range_to"`
	AnnualInterestRate decimal.NullDecimal `db:"ircd_annual_interest_rate"`

	// Currency columns (m_currency)
	CurrencyCode          *string `db:"currency_code"`
	CurrencyName          *string `db:"currency_name"`
	CurrencyNameCode      *string `db:"currency_name_code"`
	CurrencyDisplaySymbol *string `db:"currency_display_symbol"`
	CurrencyDigits        *int32  `db:"currency_digits"`
	CurrencyInMultiplesOf *int32  `db:"currency_multiplesof"`

	// Incentive columns (m_interest_incentives)
	IncentiveID    *int64              `db:"iri_id"`
	EntityType     *int32              `db:"entity_type"`
	AttributeName  *int32              `db:"attribute_name"`
	ConditionType  *int32              `db:"condition_type"`
	AttributeValue *string             `db:"attribute_value"`
	IncentiveType  *int32              `db:"incentive_type"`
	Amount         decimal.NullDecimal `db:"amount"`

	// Code value column (m_code_value), joined on the attribute value
	AttributeValueDesc *string `db:"attribute_value_desc"`
}

// ScanTargets returns pointers to the row's fields in select-list order.
func (r *RateSlabRow) ScanTargets() []any {
	return []any{
		&r.SlabID,
		&r.Description,
		&r.PeriodType,
		&r.FromPeriod,
		&r.ToPeriod,
		&r.AmountRangeFrom,
		&r.AmountRangeTo,
		&r.AnnualInterestRate,
		&r.CurrencyCode,
		&r.CurrencyName,
		&r.CurrencyNameCode,
		&r.CurrencyDisplaySymbol,
		&r.CurrencyDigits,
		&r.CurrencyInMultiplesOf,
		&r.IncentiveID,
		&r.EntityType,
		&r.AttributeName,
		&r.ConditionType,
		&r.AttributeValue,
		&r.IncentiveType,
		&r.Amount,
		&r.AttributeValueDesc,
	}
}
