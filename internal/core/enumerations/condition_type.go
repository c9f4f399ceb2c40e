package enumerations

import "github.com/SscSPs/ratechart_app/internal/core/domain"

// ConditionTypeID identifies the comparison an incentive condition applies.
type ConditionTypeID int32

const (
	ConditionTypeInvalid     ConditionTypeID = 1
	ConditionTypeLessThan    ConditionTypeID = 2
	ConditionTypeEqual       ConditionTypeID = 3
	ConditionTypeGreaterThan ConditionTypeID = 4
	ConditionTypeNotEqual    ConditionTypeID = 5
)

// incentiveCodePrefix namespaces condition codes used by incentives.
const incentiveCodePrefix = "incentive"

var conditionTypes = map[ConditionTypeID]domain.EnumOption{
	ConditionTypeInvalid:     conditionType(ConditionTypeInvalid, "invalid", "Invalid"),
	ConditionTypeLessThan:    conditionType(ConditionTypeLessThan, "lessthan", "less than"),
	ConditionTypeEqual:       conditionType(ConditionTypeEqual, "equal", "equal"),
	ConditionTypeGreaterThan: conditionType(ConditionTypeGreaterThan, "greaterthan", "greater than"),
	ConditionTypeNotEqual:    conditionType(ConditionTypeNotEqual, "notequal", "not equal"),
}

func conditionType(id ConditionTypeID, code, value string) domain.EnumOption {
	return domain.EnumOption{ID: int64(id), Code: incentiveCodePrefix + "." + code, Value: value}
}

// ConditionType decodes a raw incentive condition type code.
func ConditionType(code *int32) domain.EnumOption {
	return decode(conditionTypes, code, ConditionTypeInvalid)
}

// ConditionTypeOptions lists the selectable condition types.
func ConditionTypeOptions() []domain.EnumOption {
	return options(conditionTypes, ConditionTypeLessThan, ConditionTypeEqual, ConditionTypeGreaterThan, ConditionTypeNotEqual)
}
