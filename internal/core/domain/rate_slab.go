package domain

import "github.com/shopspring/decimal"

// RateSlab is a banded sub-range (by period and/or amount) of an interest rate chart.
// A RateSlab is produced by a RateSlabBuilder and is not modified afterwards.
type RateSlab struct {
	ID                 int64               `json:"id"`
	Description        string              `json:"description"`
	PeriodType         EnumOption          `json:"periodType"`
	FromPeriod         *int32              `json:"fromPeriod,omitempty"`
	ToPeriod           *int32              `json:"toPeriod,omitempty"`
	AmountRangeFrom    decimal.NullDecimal `json:"amountRangeFrom"`
	AmountRangeTo      decimal.NullDecimal `json:"amountRangeTo"`
	AnnualInterestRate decimal.Decimal     `json:"annualInterestRate"`
	Currency           Currency            `json:"currency"`
	Incentives         []Incentive         `json:"incentives"`
}

// Incentive is a conditional adjustment to a slab's rate based on a client attribute.
type Incentive struct {
	ID            int64      `json:"id"`
	EntityType    EnumOption `json:"entityType"`
	AttributeName EnumOption `json:"attributeName"`
	ConditionType EnumOption `json:"conditionType"`
	// AttributeValue is the raw value compared against the client attribute;
	// for code-value backed attributes it holds the code value id.
	AttributeValue string `json:"attributeValue"`
	// AttributeValueDescription is only set for code-value backed attributes.
	AttributeValueDescription *string         `json:"attributeValueDesc,omitempty"`
	IncentiveType             EnumOption      `json:"incentiveType"`
	Amount                    decimal.Decimal `json:"amount"`
}

// RateSlabBuilder accumulates the incentives of one slab while its rows are being read.
type RateSlabBuilder struct {
	slab       RateSlab
	incentives []Incentive
}

// NewRateSlabBuilder starts a builder from the slab's own fields. Any incentives already
// present on head are ignored.
func NewRateSlabBuilder(head RateSlab) *RateSlabBuilder {
	head.Incentives = nil
	return &RateSlabBuilder{slab: head}
}

// ID returns the id of the slab being built.
func (b *RateSlabBuilder) ID() int64 {
	return b.slab.ID
}

// AddIncentive appends an incentive, preserving call order.
func (b *RateSlabBuilder) AddIncentive(incentive Incentive) {
	b.incentives = append(b.incentives, incentive)
}

// Build returns the finished slab. The returned slab does not share its incentive
// slice with the builder.
func (b *RateSlabBuilder) Build() RateSlab {
	slab := b.slab
	slab.Incentives = make([]Incentive, len(b.incentives))
	copy(slab.Incentives, b.incentives)
	return slab
}
