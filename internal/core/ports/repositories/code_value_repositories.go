package repositories

import (
	"context"

	"github.com/SscSPs/ratechart_app/internal/models"
)

// CodeValueReader defines read operations for code value data
type CodeValueReader interface {
	// FindActiveCodeValuesByCodeName retrieves the active values of a code ordered by position.
	FindActiveCodeValuesByCodeName(ctx context.Context, codeName string) ([]models.CodeValue, error)
}
