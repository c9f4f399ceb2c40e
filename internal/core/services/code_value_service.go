package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ratechart_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ratechart_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ratechart_app/internal/core/ports/services"
	"github.com/SscSPs/ratechart_app/internal/utils/mapping"
)

// codeValueService implements the CodeValueReaderSvc interface
type codeValueService struct {
	BaseService
	codeValueRepo portsrepo.CodeValueReader
}

// NewCodeValueService creates a new code value service
func NewCodeValueService(codeValueRepo portsrepo.CodeValueReader) portssvc.CodeValueReaderSvc {
	return &codeValueService{codeValueRepo: codeValueRepo}
}

var _ portssvc.CodeValueReaderSvc = (*codeValueService)(nil)

// RetrieveCodeValuesByCode returns the active values of the named code
func (s *codeValueService) RetrieveCodeValuesByCode(ctx context.Context, codeName string) ([]domain.CodeValue, error) {
	values, err := s.codeValueRepo.FindActiveCodeValuesByCodeName(ctx, codeName)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve code values", slog.String("code_name", codeName))
		return nil, err
	}
	s.LogDebug(ctx, "Code values retrieved", slog.String("code_name", codeName), slog.Int("count", len(values)))
	return mapping.ToDomainCodeValueSlice(values), nil
}
