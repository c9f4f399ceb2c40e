package services

import (
	"context"

	"github.com/SscSPs/ratechart_app/internal/core/domain"
)

// Code names of the code lists used by incentive templates.
const (
	CodeGender               = "Gender"
	CodeClientType           = "ClientType"
	CodeClientClassification = "ClientClassification"
)

// CodeValueReaderSvc defines read operations for code values
type CodeValueReaderSvc interface {
	// RetrieveCodeValuesByCode returns the active values of the named code, ordered by position.
	RetrieveCodeValuesByCode(ctx context.Context, codeName string) ([]domain.CodeValue, error)
}
