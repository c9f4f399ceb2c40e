package enumerations

import "github.com/SscSPs/ratechart_app/internal/core/domain"

// EntityTypeID identifies what an incentive condition is evaluated against.
type EntityTypeID int32

const (
	EntityTypeInvalid  EntityTypeID = 1
	EntityTypeCustomer EntityTypeID = 2
)

// AttributeNameID identifies the client attribute an incentive condition tests.
type AttributeNameID int32

const (
	AttributeNameInvalid              AttributeNameID = 1
	AttributeNameGender               AttributeNameID = 2
	AttributeNameAge                  AttributeNameID = 3
	AttributeNameClientType           AttributeNameID = 4
	AttributeNameClientClassification AttributeNameID = 5
)

// IncentiveTypeID identifies how an incentive amount is applied to the slab rate.
type IncentiveTypeID int32

const (
	IncentiveTypeInvalid   IncentiveTypeID = 1
	IncentiveTypeFixed     IncentiveTypeID = 2
	IncentiveTypeIncentive IncentiveTypeID = 3
)

var entityTypes = map[EntityTypeID]domain.EnumOption{
	EntityTypeInvalid:  {ID: int64(EntityTypeInvalid), Code: "InterestIncentiveEntityType.invalid", Value: "Invalid"},
	EntityTypeCustomer: {ID: int64(EntityTypeCustomer), Code: "InterestIncentiveEntityType.customer", Value: "Customer"},
}

var attributeNames = map[AttributeNameID]domain.EnumOption{
	AttributeNameInvalid:              {ID: int64(AttributeNameInvalid), Code: "InterestIncentiveAttributeName.invalid", Value: "Invalid"},
	AttributeNameGender:               {ID: int64(AttributeNameGender), Code: "InterestIncentiveAttributeName.gender", Value: "Gender"},
	AttributeNameAge:                  {ID: int64(AttributeNameAge), Code: "InterestIncentiveAttributeName.age", Value: "Age"},
	AttributeNameClientType:           {ID: int64(AttributeNameClientType), Code: "InterestIncentiveAttributeName.clientType", Value: "Client Type"},
	AttributeNameClientClassification: {ID: int64(AttributeNameClientClassification), Code: "InterestIncentiveAttributeName.clientClassification", Value: "Client Classification"},
}

var incentiveTypes = map[IncentiveTypeID]domain.EnumOption{
	IncentiveTypeInvalid:   {ID: int64(IncentiveTypeInvalid), Code: "InterestIncentiveType.invalid", Value: "Invalid"},
	IncentiveTypeFixed:     {ID: int64(IncentiveTypeFixed), Code: "InterestIncentiveType.fixed", Value: "Fixed"},
	IncentiveTypeIncentive: {ID: int64(IncentiveTypeIncentive), Code: "InterestIncentiveType.incentive", Value: "Incentive"},
}

// EntityType decodes a raw incentive entity type code.
func EntityType(code *int32) domain.EnumOption {
	return decode(entityTypes, code, EntityTypeInvalid)
}

// AttributeName decodes a raw incentive attribute name code.
func AttributeName(code *int32) domain.EnumOption {
	return decode(attributeNames, code, AttributeNameInvalid)
}

// IncentiveType decodes a raw incentive type code.
func IncentiveType(code *int32) domain.EnumOption {
	return decode(incentiveTypes, code, IncentiveTypeInvalid)
}

// IsCodeValueAttribute reports whether the attribute's values are ids from the shared
// code value table. Only these attributes carry an attribute value description.
func IsCodeValueAttribute(code *int32) bool {
	if code == nil {
		return false
	}
	switch AttributeNameID(*code) {
	case AttributeNameGender, AttributeNameClientType, AttributeNameClientClassification:
		return true
	default:
		return false
	}
}

// EntityTypeOptions lists the selectable entity types.
func EntityTypeOptions() []domain.EnumOption {
	return options(entityTypes, EntityTypeCustomer)
}

// AttributeNameOptions lists the selectable attribute names.
func AttributeNameOptions() []domain.EnumOption {
	return options(attributeNames, AttributeNameGender, AttributeNameAge, AttributeNameClientType, AttributeNameClientClassification)
}

// IncentiveTypeOptions lists the selectable incentive types.
func IncentiveTypeOptions() []domain.EnumOption {
	return options(incentiveTypes, IncentiveTypeFixed, IncentiveTypeIncentive)
}
