// Package query holds the SQL shared by the postgres and sqlite repositories.
// Statements are rendered once per dialect so that only the bind placeholders differ.
package query

import (
	"fmt"
	"strings"
)

// Placeholder renders the n-th (1-based) bind parameter of a dialect.
type Placeholder func(n int) string

// Dollar renders postgres style placeholders ($1, $2, ...).
func Dollar(n int) string { return fmt.Sprintf("$%d", n) }

// Question renders sqlite style placeholders.
func Question(int) string { return "?" }

// rateSlabSelect must list columns in the order of models.RateSlabRow.ScanTargets.
const rateSlabSelect = `
SELECT
	ircd.id, ircd.description, ircd.period_type_enum, ircd.from_period, ircd.to_period,
	ircd.amount_range_from, ircd.amount_range_to, ircd.annual_interest_rate,
	curr.code, curr.name, curr.internationalized_name_code, curr.display_symbol,
	curr.decimal_places, curr.currency_multiplesof,
	iri.id, iri.entity_type, iri.attribute_name, iri.condition_type, iri.attribute_value,
	iri.incentive_type, iri.amount,
	code.code_value
FROM m_interest_rate_slab ircd
LEFT JOIN m_interest_incentives iri ON iri.interest_rate_slab_id = ircd.id
LEFT JOIN m_code_value code ON CAST(code.id AS VARCHAR(40)) = iri.attribute_value
LEFT JOIN m_currency curr ON curr.code = ircd.currency_code
`

// Rows of one slab are contiguous and incentives keep their id order.
const rateSlabOrder = `ORDER BY ircd.id, iri.id`

// RateSlabQueries are the rate slab statements of one dialect.
type RateSlabQueries struct {
	ByChart        string
	ByChartAndSlab string
}

// NewRateSlabQueries renders the rate slab statements with the given placeholder style.
func NewRateSlabQueries(p Placeholder) RateSlabQueries {
	return RateSlabQueries{
		ByChart: strings.Join([]string{
			rateSlabSelect,
			"WHERE ircd.interest_rate_chart_id = " + p(1),
			rateSlabOrder,
		}, "\n"),
		ByChartAndSlab: strings.Join([]string{
			rateSlabSelect,
			"WHERE ircd.interest_rate_chart_id = " + p(1) + " AND ircd.id = " + p(2),
			rateSlabOrder,
		}, "\n"),
	}
}

// CodeValueQueries are the code value statements of one dialect.
type CodeValueQueries struct {
	ActiveByCodeName string
}

// NewCodeValueQueries renders the code value statements with the given placeholder style.
func NewCodeValueQueries(p Placeholder) CodeValueQueries {
	return CodeValueQueries{
		ActiveByCodeName: `
SELECT cv.id, cv.code_id, cv.code_value, cv.code_description, cv.order_position, cv.is_active
FROM m_code_value cv
JOIN m_code c ON c.id = cv.code_id
WHERE c.code_name = ` + p(1) + ` AND cv.is_active = TRUE
ORDER BY cv.order_position, cv.id`,
	}
}
