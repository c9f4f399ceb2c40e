package mapping

import (
	"testing"

	"github.com/SscSPs/ratechart_app/internal/core/enumerations"
	"github.com/SscSPs/ratechart_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64   { return &v }
func i32(v int32) *int32   { return &v }
func str(v string) *string { return &v }
func dec(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(v))
}

func fullRow() models.RateSlabRow {
	return models.RateSlabRow{
		SlabID:                i64(1),
		Description:           str("0-6 months"),
		PeriodType:            i32(int32(enumerations.PeriodTypeMonths)),
		FromPeriod:            i32(0),
		ToPeriod:              i32(6),
		AmountRangeFrom:       dec("1000"),
		AnnualInterestRate:    dec("5.25"),
		CurrencyCode:          str("USD"),
		CurrencyName:          str("US Dollar"),
		CurrencyNameCode:      str("currency.USD"),
		CurrencyDisplaySymbol: str("$"),
		CurrencyDigits:        i32(2),
		CurrencyInMultiplesOf: i32(1),
		IncentiveID:           i64(10),
		EntityType:            i32(int32(enumerations.EntityTypeCustomer)),
		AttributeName:         i32(int32(enumerations.AttributeNameGender)),
		ConditionType:         i32(int32(enumerations.ConditionTypeEqual)),
		AttributeValue:        str("21"),
		IncentiveType:         i32(int32(enumerations.IncentiveTypeFixed)),
		Amount:                dec("0.5"),
		AttributeValueDesc:    str("Female"),
	}
}

func TestToDomainRateSlab(t *testing.T) {
	slab, ok := ToDomainRateSlab(fullRow())

	require.True(t, ok)
	assert.Equal(t, int64(1), slab.ID)
	assert.Equal(t, "0-6 months", slab.Description)
	assert.Equal(t, "interestChartPeriodType.months", slab.PeriodType.Code)
	assert.Equal(t, int32(6), *slab.ToPeriod)
	assert.True(t, slab.AmountRangeFrom.Valid)
	assert.False(t, slab.AmountRangeTo.Valid)
	assert.True(t, decimal.RequireFromString("5.25").Equal(slab.AnnualInterestRate))
	assert.Equal(t, "USD", slab.Currency.Code)
	assert.Equal(t, "$", slab.Currency.DisplaySymbol)
	assert.Equal(t, int32(2), *slab.Currency.DecimalPlaces)
	assert.Empty(t, slab.Incentives)
}

func TestToDomainRateSlab_Sentinel(t *testing.T) {
	row := fullRow()
	row.SlabID = nil
	_, ok := ToDomainRateSlab(row)
	assert.False(t, ok)

	row.SlabID = i64(0)
	_, ok = ToDomainRateSlab(row)
	assert.False(t, ok)
}

func TestToDomainIncentive(t *testing.T) {
	inc, ok := ToDomainIncentive(fullRow())

	require.True(t, ok)
	assert.Equal(t, int64(10), inc.ID)
	assert.Equal(t, "Customer", inc.EntityType.Value)
	assert.Equal(t, "Gender", inc.AttributeName.Value)
	assert.Equal(t, "incentive.equal", inc.ConditionType.Code)
	assert.Equal(t, "21", inc.AttributeValue)
	require.NotNil(t, inc.AttributeValueDescription)
	assert.Equal(t, "Female", *inc.AttributeValueDescription)
	assert.Equal(t, "Fixed", inc.IncentiveType.Value)
	assert.True(t, decimal.RequireFromString("0.5").Equal(inc.Amount))
}

func TestToDomainIncentive_SentinelIgnoresOtherColumns(t *testing.T) {
	row := fullRow()
	row.IncentiveID = nil
	_, ok := ToDomainIncentive(row)
	assert.False(t, ok, "null incentive id must not produce an incentive")

	row.IncentiveID = i64(0)
	_, ok = ToDomainIncentive(row)
	assert.False(t, ok, "zero incentive id must not produce an incentive")
}

func TestToDomainIncentive_DescriptionOnlyForCodeValueAttributes(t *testing.T) {
	row := fullRow()
	row.AttributeName = i32(int32(enumerations.AttributeNameAge))
	row.AttributeValue = str("40")

	inc, ok := ToDomainIncentive(row)

	require.True(t, ok)
	assert.Equal(t, "Age", inc.AttributeName.Value)
	assert.Nil(t, inc.AttributeValueDescription)

	row.AttributeName = nil
	inc, ok = ToDomainIncentive(row)
	require.True(t, ok)
	assert.Equal(t, int64(enumerations.AttributeNameInvalid), inc.AttributeName.ID)
	assert.Nil(t, inc.AttributeValueDescription)
}

func TestToDomainIncentive_CodeValueAttributeWithoutDescription(t *testing.T) {
	row := fullRow()
	row.AttributeName = i32(int32(enumerations.AttributeNameClientType))
	row.AttributeValueDesc = nil

	inc, ok := ToDomainIncentive(row)

	require.True(t, ok)
	assert.Nil(t, inc.AttributeValueDescription)
}
