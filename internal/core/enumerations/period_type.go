// Package enumerations decodes the integer-coded fields of interest rate chart slabs
// and incentives into domain.EnumOption values.
//
// Every decoder is total: a nil or unknown code decodes to the domain's "invalid"
// option instead of failing, because the underlying column is NULL for slabs
// without an incentive row.
package enumerations

import "github.com/SscSPs/ratechart_app/internal/core/domain"

// PeriodTypeID identifies the unit of a slab's from/to period.
type PeriodTypeID int32

const (
	PeriodTypeDays    PeriodTypeID = 0
	PeriodTypeWeeks   PeriodTypeID = 1
	PeriodTypeMonths  PeriodTypeID = 2
	PeriodTypeYears   PeriodTypeID = 3
	PeriodTypeInvalid PeriodTypeID = 4
)

var periodTypes = map[PeriodTypeID]domain.EnumOption{
	PeriodTypeDays:    {ID: int64(PeriodTypeDays), Code: "interestChartPeriodType.days", Value: "Days"},
	PeriodTypeWeeks:   {ID: int64(PeriodTypeWeeks), Code: "interestChartPeriodType.weeks", Value: "Weeks"},
	PeriodTypeMonths:  {ID: int64(PeriodTypeMonths), Code: "interestChartPeriodType.months", Value: "Months"},
	PeriodTypeYears:   {ID: int64(PeriodTypeYears), Code: "interestChartPeriodType.years", Value: "Years"},
	PeriodTypeInvalid: {ID: int64(PeriodTypeInvalid), Code: "interestChartPeriodType.invalid", Value: "Invalid"},
}

// PeriodType decodes a raw period type code.
func PeriodType(code *int32) domain.EnumOption {
	return decode(periodTypes, code, PeriodTypeInvalid)
}

// PeriodTypeOptions lists the selectable period types in id order.
func PeriodTypeOptions() []domain.EnumOption {
	return options(periodTypes, PeriodTypeDays, PeriodTypeWeeks, PeriodTypeMonths, PeriodTypeYears)
}

// decode looks code up in table, falling back to the invalid entry.
func decode[K ~int32](table map[K]domain.EnumOption, code *int32, invalid K) domain.EnumOption {
	if code == nil {
		return table[invalid]
	}
	if opt, ok := table[K(*code)]; ok {
		return opt
	}
	return table[invalid]
}

func options[K ~int32](table map[K]domain.EnumOption, ids ...K) []domain.EnumOption {
	out := make([]domain.EnumOption, 0, len(ids))
	for _, id := range ids {
		out = append(out, table[id])
	}
	return out
}
