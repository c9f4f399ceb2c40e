package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateSlabTemplate_NoSlabEmptyOptions(t *testing.T) {
	tmpl := NewRateSlabTemplate(nil, RateSlabTemplateOptions{})

	assert.Nil(t, tmpl.Slab)
	assert.NotNil(t, tmpl.PeriodTypes)
	assert.Empty(t, tmpl.PeriodTypes)
	assert.Empty(t, tmpl.EntityTypeOptions)
	assert.Empty(t, tmpl.AttributeNameOptions)
	assert.Empty(t, tmpl.ConditionTypeOptions)
	assert.Empty(t, tmpl.IncentiveTypeOptions)
	assert.NotNil(t, tmpl.GenderOptions)
	assert.Empty(t, tmpl.GenderOptions)
	assert.Empty(t, tmpl.ClientTypeOptions)
	assert.Empty(t, tmpl.ClientClassificationOptions)
}

func TestNewRateSlabTemplate_WithSlab(t *testing.T) {
	slab := RateSlab{ID: 7, Description: "30-90 days", AnnualInterestRate: decimal.RequireFromString("6.5")}
	opts := RateSlabTemplateOptions{
		PeriodTypes:   []EnumOption{{ID: 0, Code: "interestChartPeriodType.days", Value: "Days"}},
		GenderOptions: []CodeValue{{ID: 11, Name: "Female", Active: true}},
	}

	tmpl := NewRateSlabTemplate(&slab, opts)

	require.NotNil(t, tmpl.Slab)
	assert.Equal(t, int64(7), tmpl.Slab.ID)
	assert.Equal(t, opts.PeriodTypes, tmpl.PeriodTypes)
	assert.Equal(t, opts.GenderOptions, tmpl.GenderOptions)
	assert.Empty(t, tmpl.ClientTypeOptions)
}

func TestRateSlabBuilder_BuildCopiesIncentives(t *testing.T) {
	b := NewRateSlabBuilder(RateSlab{ID: 1, Incentives: []Incentive{{ID: 99}}})
	b.AddIncentive(Incentive{ID: 10})
	b.AddIncentive(Incentive{ID: 11})

	first := b.Build()
	b.AddIncentive(Incentive{ID: 12})
	second := b.Build()

	require.Len(t, first.Incentives, 2)
	assert.Equal(t, int64(10), first.Incentives[0].ID)
	assert.Equal(t, int64(11), first.Incentives[1].ID)
	assert.Len(t, second.Incentives, 3)
	assert.Equal(t, int64(1), b.ID())
}

func TestRateSlabBuilder_NoIncentivesBuildsEmptySlice(t *testing.T) {
	slab := NewRateSlabBuilder(RateSlab{ID: 2}).Build()

	assert.NotNil(t, slab.Incentives)
	assert.Empty(t, slab.Incentives)
}
