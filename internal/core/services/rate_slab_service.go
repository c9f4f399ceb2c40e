package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ratechart_app/internal/apperrors"
	"github.com/SscSPs/ratechart_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ratechart_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ratechart_app/internal/core/ports/services"
	"github.com/SscSPs/ratechart_app/internal/utils/aggregation"
)

// rateSlabService implements the RateSlabReaderSvc interface
type rateSlabService struct {
	BaseService
	rateSlabRepo      portsrepo.RateSlabRowReader
	chartDropdown     portssvc.ChartDropdownSvc
	incentiveDropdown portssvc.IncentiveDropdownSvc
	codeValues        portssvc.CodeValueReaderSvc
}

// RateSlabServiceOption is a functional option for configuring the rate slab service
type RateSlabServiceOption func(*rateSlabService)

// WithSessionAuthenticator sets the authenticator every operation checks first
func WithSessionAuthenticator(authenticator portssvc.SessionAuthenticator) RateSlabServiceOption {
	return func(s *rateSlabService) {
		s.SessionAuthenticator = authenticator
	}
}

// WithChartDropdownService sets the period type option provider
func WithChartDropdownService(svc portssvc.ChartDropdownSvc) RateSlabServiceOption {
	return func(s *rateSlabService) {
		s.chartDropdown = svc
	}
}

// WithIncentiveDropdownService sets the incentive option provider
func WithIncentiveDropdownService(svc portssvc.IncentiveDropdownSvc) RateSlabServiceOption {
	return func(s *rateSlabService) {
		s.incentiveDropdown = svc
	}
}

// WithCodeValueService sets the code value option provider
func WithCodeValueService(svc portssvc.CodeValueReaderSvc) RateSlabServiceOption {
	return func(s *rateSlabService) {
		s.codeValues = svc
	}
}

// NewRateSlabService creates a new rate slab service with the provided options.
// Option providers that are not configured yield empty option lists.
func NewRateSlabService(repo portsrepo.RateSlabRowReader, options ...RateSlabServiceOption) portssvc.RateSlabReaderSvc {
	svc := &rateSlabService{
		rateSlabRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RateSlabReaderSvc = (*rateSlabService)(nil)

// RetrieveAll returns every slab of the chart with its incentives
func (s *rateSlabService) RetrieveAll(ctx context.Context, chartID int64) ([]domain.RateSlab, error) {
	if _, err := s.AuthorizeSession(ctx); err != nil {
		return nil, err
	}

	rows, err := s.rateSlabRepo.FindRateSlabRowsByChart(ctx, chartID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read rate slab rows", slog.Int64("chart_id", chartID))
		return nil, fmt.Errorf("failed to retrieve slabs of chart %d: %w", chartID, err)
	}

	slabs := aggregation.AggregateRateSlabs(aggregation.RegroupBySlabID(rows))
	s.LogDebug(ctx, "Rate slabs retrieved",
		slog.Int64("chart_id", chartID),
		slog.Int("rows", len(rows)),
		slog.Int("slabs", len(slabs)))
	return slabs, nil
}

// RetrieveOne returns a single slab of the chart
func (s *rateSlabService) RetrieveOne(ctx context.Context, chartID, slabID int64) (*domain.RateSlab, error) {
	if _, err := s.AuthorizeSession(ctx); err != nil {
		return nil, err
	}

	rows, err := s.rateSlabRepo.FindRateSlabRowsByChartAndSlab(ctx, chartID, slabID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read rate slab rows",
			slog.Int64("chart_id", chartID),
			slog.Int64("slab_id", slabID))
		return nil, fmt.Errorf("failed to retrieve slab %d of chart %d: %w", slabID, chartID, err)
	}

	slabs := aggregation.AggregateRateSlabs(aggregation.RegroupBySlabID(rows))
	if len(slabs) == 0 {
		return nil, &apperrors.RateSlabNotFoundError{ChartID: chartID, SlabID: slabID}
	}
	if len(slabs) > 1 {
		s.LogInfo(ctx, "Slab query matched more than one slab, using the first",
			slog.Int64("chart_id", chartID),
			slog.Int64("slab_id", slabID),
			slog.Int("slabs", len(slabs)))
	}

	slab := slabs[0]
	return &slab, nil
}

// RetrieveTemplate returns the option lists for a new slab
func (s *rateSlabService) RetrieveTemplate(ctx context.Context) (*domain.RateSlabTemplate, error) {
	if _, err := s.AuthorizeSession(ctx); err != nil {
		return nil, err
	}

	options, err := s.retrieveTemplateOptions(ctx)
	if err != nil {
		return nil, err
	}
	template := domain.NewRateSlabTemplate(nil, options)
	return &template, nil
}

// RetrieveWithTemplate returns slab together with the option lists for editing it
func (s *rateSlabService) RetrieveWithTemplate(ctx context.Context, slab domain.RateSlab) (*domain.RateSlabTemplate, error) {
	if _, err := s.AuthorizeSession(ctx); err != nil {
		return nil, err
	}

	options, err := s.retrieveTemplateOptions(ctx)
	if err != nil {
		return nil, err
	}
	template := domain.NewRateSlabTemplate(&slab, options)
	return &template, nil
}

func (s *rateSlabService) retrieveTemplateOptions(ctx context.Context) (domain.RateSlabTemplateOptions, error) {
	var options domain.RateSlabTemplateOptions
	var err error

	if s.chartDropdown != nil {
		if options.PeriodTypes, err = s.chartDropdown.RetrievePeriodTypeOptions(ctx); err != nil {
			return options, s.templateOptionError(ctx, "period types", err)
		}
	}

	if s.incentiveDropdown != nil {
		if options.EntityTypeOptions, err = s.incentiveDropdown.RetrieveEntityTypeOptions(ctx); err != nil {
			return options, s.templateOptionError(ctx, "entity types", err)
		}
		if options.AttributeNameOptions, err = s.incentiveDropdown.RetrieveAttributeNameOptions(ctx); err != nil {
			return options, s.templateOptionError(ctx, "attribute names", err)
		}
		if options.ConditionTypeOptions, err = s.incentiveDropdown.RetrieveConditionTypeOptions(ctx); err != nil {
			return options, s.templateOptionError(ctx, "condition types", err)
		}
		if options.IncentiveTypeOptions, err = s.incentiveDropdown.RetrieveIncentiveTypeOptions(ctx); err != nil {
			return options, s.templateOptionError(ctx, "incentive types", err)
		}
	}

	if s.codeValues != nil {
		if options.GenderOptions, err = s.codeValues.RetrieveCodeValuesByCode(ctx, portssvc.CodeGender); err != nil {
			return options, s.templateOptionError(ctx, "genders", err)
		}
		if options.ClientTypeOptions, err = s.codeValues.RetrieveCodeValuesByCode(ctx, portssvc.CodeClientType); err != nil {
			return options, s.templateOptionError(ctx, "client types", err)
		}
		if options.ClientClassificationOptions, err = s.codeValues.RetrieveCodeValuesByCode(ctx, portssvc.CodeClientClassification); err != nil {
			return options, s.templateOptionError(ctx, "client classifications", err)
		}
	}

	return options, nil
}

func (s *rateSlabService) templateOptionError(ctx context.Context, collection string, err error) error {
	s.LogError(ctx, err, "Failed to retrieve template options", slog.String("collection", collection))
	return fmt.Errorf("failed to retrieve %s for rate slab template: %w", collection, err)
}
