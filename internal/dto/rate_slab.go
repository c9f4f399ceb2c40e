package dto

import (
	"github.com/SscSPs/ratechart_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ChartPathParams binds the chart id of /interestratecharts/:chart_id routes.
type ChartPathParams struct {
	ChartID int64 `uri:"chart_id" binding:"required,gt=0"`
}

// SlabPathParams binds the chart and slab ids of /interestratecharts/:chart_id/chartslabs/:slab_id.
type SlabPathParams struct {
	ChartID int64 `uri:"chart_id" binding:"required,gt=0"`
	SlabID  int64 `uri:"slab_id" binding:"required,gt=0"`
}

// RetrieveSlabQuery holds the query parameters of the single slab route.
type RetrieveSlabQuery struct {
	Template bool `form:"template"`
}

// EnumOptionResponse is a decoded enumeration value.
type EnumOptionResponse struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Value string `json:"value"`
}

// CodeValueResponse is a selectable code value.
type CodeValueResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Position    int32   `json:"position"`
	Active      bool    `json:"active"`
}

// CurrencyResponse describes the currency of a slab.
type CurrencyResponse struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	NameCode      string `json:"nameCode"`
	DisplaySymbol string `json:"displaySymbol,omitempty"`
	DecimalPlaces *int32 `json:"decimalPlaces,omitempty"`
	InMultiplesOf *int32 `json:"inMultiplesOf,omitempty"`
}

// IncentiveResponse describes one incentive of a slab.
type IncentiveResponse struct {
	ID                 int64              `json:"id"`
	EntityType         EnumOptionResponse `json:"entityType"`
	AttributeName      EnumOptionResponse `json:"attributeName"`
	ConditionType      EnumOptionResponse `json:"conditionType"`
	AttributeValue     string             `json:"attributeValue"`
	AttributeValueDesc *string            `json:"attributeValueDesc,omitempty"`
	IncentiveType      EnumOptionResponse `json:"incentiveType"`
	Amount             decimal.Decimal    `json:"amount"`
}

// RateSlabResponse describes one slab of an interest rate chart.
type RateSlabResponse struct {
	ID                 int64               `json:"id"`
	Description        string              `json:"description,omitempty"`
	PeriodType         EnumOptionResponse  `json:"periodType"`
	FromPeriod         *int32              `json:"fromPeriod,omitempty"`
	ToPeriod           *int32              `json:"toPeriod,omitempty"`
	AmountRangeFrom    *decimal.Decimal    `json:"amountRangeFrom,omitempty"`
	AmountRangeTo      *decimal.Decimal    `json:"amountRangeTo,omitempty"`
	AnnualInterestRate decimal.Decimal     `json:"annualInterestRate"`
	Currency           CurrencyResponse    `json:"currency"`
	Incentives         []IncentiveResponse `json:"incentives"`
}

// RateSlabTemplateResponse carries an optional slab and the option lists to edit it.
type RateSlabTemplateResponse struct {
	*RateSlabResponse
	PeriodTypes                 []EnumOptionResponse `json:"periodTypes"`
	EntityTypeOptions           []EnumOptionResponse `json:"entityTypeOptions"`
	AttributeNameOptions        []EnumOptionResponse `json:"attributeNameOptions"`
	ConditionTypeOptions        []EnumOptionResponse `json:"conditionTypeOptions"`
	IncentiveTypeOptions        []EnumOptionResponse `json:"incentiveTypeOptions"`
	GenderOptions               []CodeValueResponse  `json:"genderOptions"`
	ClientTypeOptions           []CodeValueResponse  `json:"clientTypeOptions"`
	ClientClassificationOptions []CodeValueResponse  `json:"clientClassificationOptions"`
}

func ToEnumOptionResponse(o domain.EnumOption) EnumOptionResponse {
	return EnumOptionResponse{ID: o.ID, Code: o.Code, Value: o.Value}
}

func ToEnumOptionResponses(options []domain.EnumOption) []EnumOptionResponse {
	resp := make([]EnumOptionResponse, len(options))
	for i, o := range options {
		resp[i] = ToEnumOptionResponse(o)
	}
	return resp
}

func ToCodeValueResponses(values []domain.CodeValue) []CodeValueResponse {
	resp := make([]CodeValueResponse, len(values))
	for i, v := range values {
		resp[i] = CodeValueResponse{
			ID:          v.ID,
			Name:        v.Name,
			Description: v.Description,
			Position:    v.Position,
			Active:      v.Active,
		}
	}
	return resp
}

// ToRateSlabResponse converts a domain.RateSlab to its response DTO
func ToRateSlabResponse(slab domain.RateSlab) RateSlabResponse {
	incentives := make([]IncentiveResponse, len(slab.Incentives))
	for i, in := range slab.Incentives {
		incentives[i] = IncentiveResponse{
			ID:                 in.ID,
			EntityType:         ToEnumOptionResponse(in.EntityType),
			AttributeName:      ToEnumOptionResponse(in.AttributeName),
			ConditionType:      ToEnumOptionResponse(in.ConditionType),
			AttributeValue:     in.AttributeValue,
			AttributeValueDesc: in.AttributeValueDescription,
			IncentiveType:      ToEnumOptionResponse(in.IncentiveType),
			Amount:             in.Amount,
		}
	}

	return RateSlabResponse{
		ID:                 slab.ID,
		Description:        slab.Description,
		PeriodType:         ToEnumOptionResponse(slab.PeriodType),
		FromPeriod:         slab.FromPeriod,
		ToPeriod:           slab.ToPeriod,
		AmountRangeFrom:    nullDecimalPtr(slab.AmountRangeFrom),
		AmountRangeTo:      nullDecimalPtr(slab.AmountRangeTo),
		AnnualInterestRate: slab.AnnualInterestRate,
		Currency: CurrencyResponse{
			Code:          slab.Currency.Code,
			Name:          slab.Currency.Name,
			NameCode:      slab.Currency.NameCode,
			DisplaySymbol: slab.Currency.DisplaySymbol,
			DecimalPlaces: slab.Currency.DecimalPlaces,
			InMultiplesOf: slab.Currency.InMultiplesOf,
		},
		Incentives: incentives,
	}
}

// ToRateSlabResponses converts a slice of domain.RateSlab, never returning nil
func ToRateSlabResponses(slabs []domain.RateSlab) []RateSlabResponse {
	resp := make([]RateSlabResponse, len(slabs))
	for i, s := range slabs {
		resp[i] = ToRateSlabResponse(s)
	}
	return resp
}

// ToRateSlabTemplateResponse flattens the template's slab, if any, next to the option lists
func ToRateSlabTemplateResponse(t domain.RateSlabTemplate) RateSlabTemplateResponse {
	resp := RateSlabTemplateResponse{
		PeriodTypes:                 ToEnumOptionResponses(t.PeriodTypes),
		EntityTypeOptions:           ToEnumOptionResponses(t.EntityTypeOptions),
		AttributeNameOptions:        ToEnumOptionResponses(t.AttributeNameOptions),
		ConditionTypeOptions:        ToEnumOptionResponses(t.ConditionTypeOptions),
		IncentiveTypeOptions:        ToEnumOptionResponses(t.IncentiveTypeOptions),
		GenderOptions:               ToCodeValueResponses(t.GenderOptions),
		ClientTypeOptions:           ToCodeValueResponses(t.ClientTypeOptions),
		ClientClassificationOptions: ToCodeValueResponses(t.ClientClassificationOptions),
	}
	if t.Slab != nil {
		slab := ToRateSlabResponse(*t.Slab)
		resp.RateSlabResponse = &slab
	}
	return resp
}

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
