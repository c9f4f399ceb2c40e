package domain

// RateSlabTemplate bundles an optional slab with the option lists a form needs
// to render or edit it. It is built per request and never persisted.
type RateSlabTemplate struct {
	Slab *RateSlab `json:"slab,omitempty"`
	RateSlabTemplateOptions
}

// RateSlabTemplateOptions holds the option collections of a template.
type RateSlabTemplateOptions struct {
	PeriodTypes                 []EnumOption `json:"periodTypes"`
	EntityTypeOptions           []EnumOption `json:"entityTypeOptions"`
	AttributeNameOptions        []EnumOption `json:"attributeNameOptions"`
	ConditionTypeOptions        []EnumOption `json:"conditionTypeOptions"`
	IncentiveTypeOptions        []EnumOption `json:"incentiveTypeOptions"`
	GenderOptions               []CodeValue  `json:"genderOptions"`
	ClientTypeOptions           []CodeValue  `json:"clientTypeOptions"`
	ClientClassificationOptions []CodeValue  `json:"clientClassificationOptions"`
}

// NewRateSlabTemplate combines slab (nil for a "new" form) with options.
// Missing collections are returned as empty slices.
func NewRateSlabTemplate(slab *RateSlab, options RateSlabTemplateOptions) RateSlabTemplate {
	return RateSlabTemplate{
		Slab: slab,
		RateSlabTemplateOptions: RateSlabTemplateOptions{
			PeriodTypes:                 nonNilEnumOptions(options.PeriodTypes),
			EntityTypeOptions:           nonNilEnumOptions(options.EntityTypeOptions),
			AttributeNameOptions:        nonNilEnumOptions(options.AttributeNameOptions),
			ConditionTypeOptions:        nonNilEnumOptions(options.ConditionTypeOptions),
			IncentiveTypeOptions:        nonNilEnumOptions(options.IncentiveTypeOptions),
			GenderOptions:               nonNilCodeValues(options.GenderOptions),
			ClientTypeOptions:           nonNilCodeValues(options.ClientTypeOptions),
			ClientClassificationOptions: nonNilCodeValues(options.ClientClassificationOptions),
		},
	}
}

func nonNilEnumOptions(options []EnumOption) []EnumOption {
	if options == nil {
		return []EnumOption{}
	}
	return options
}

func nonNilCodeValues(values []CodeValue) []CodeValue {
	if values == nil {
		return []CodeValue{}
	}
	return values
}
