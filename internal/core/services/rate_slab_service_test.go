package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/ratechart_app/internal/apperrors"
	"github.com/SscSPs/ratechart_app/internal/core/domain"
	portssvc "github.com/SscSPs/ratechart_app/internal/core/ports/services"
	"github.com/SscSPs/ratechart_app/internal/core/services"
	"github.com/SscSPs/ratechart_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RateSlabServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	mockRepo    *MockRateSlabRowReader
	mockSession *MockSessionAuthenticator
	mockDrop    *MockDropdownService
	mockCodes   *MockCodeValueService
	service     portssvc.RateSlabReaderSvc
}

func (suite *RateSlabServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockRateSlabRowReader)
	suite.mockSession = new(MockSessionAuthenticator)
	suite.mockDrop = new(MockDropdownService)
	suite.mockCodes = new(MockCodeValueService)
	suite.service = services.NewRateSlabService(
		suite.mockRepo,
		services.WithSessionAuthenticator(suite.mockSession),
		services.WithChartDropdownService(suite.mockDrop),
		services.WithIncentiveDropdownService(suite.mockDrop),
		services.WithCodeValueService(suite.mockCodes),
	)
}

func (suite *RateSlabServiceTestSuite) authenticated() {
	suite.mockSession.On("AuthenticatedUser", suite.ctx).Return("user-1", nil).Once()
}

func slabRow(slabID int64, incentiveID *int64) models.RateSlabRow {
	row := models.RateSlabRow{
		SlabID:             int64Ptr(slabID),
		Description:        stringPtr("slab"),
		PeriodType:         int32Ptr(2),
		FromPeriod:         int32Ptr(1),
		ToPeriod:           int32Ptr(12),
		AnnualInterestRate: decimal.NewNullDecimal(decimal.RequireFromString("6.5")),
		CurrencyCode:       stringPtr("USD"),
	}
	if incentiveID != nil {
		row.IncentiveID = incentiveID
		row.EntityType = int32Ptr(2)
		row.AttributeName = int32Ptr(3)
		row.ConditionType = int32Ptr(4)
		row.AttributeValue = stringPtr("40")
		row.IncentiveType = int32Ptr(2)
		row.Amount = decimal.NewNullDecimal(decimal.RequireFromString("0.5"))
	}
	return row
}

func incentiveIDs(slab domain.RateSlab) []int64 {
	ids := make([]int64, 0, len(slab.Incentives))
	for _, incentive := range slab.Incentives {
		ids = append(ids, incentive.ID)
	}
	return ids
}

func (suite *RateSlabServiceTestSuite) TestRetrieveAll_AggregatesRows() {
	suite.authenticated()
	rows := []models.RateSlabRow{
		slabRow(1, nil),
		slabRow(1, int64Ptr(10)),
		slabRow(1, int64Ptr(11)),
		slabRow(2, nil),
	}
	suite.mockRepo.On("FindRateSlabRowsByChart", suite.ctx, int64(7)).Return(rows, nil).Once()

	slabs, err := suite.service.RetrieveAll(suite.ctx, 7)

	suite.Require().NoError(err)
	suite.Require().Len(slabs, 2)
	suite.Equal(int64(1), slabs[0].ID)
	suite.Equal([]int64{10, 11}, incentiveIDs(slabs[0]))
	suite.Equal(int64(2), slabs[1].ID)
	suite.Empty(slabs[1].Incentives)
	suite.NotNil(slabs[1].Incentives)
	suite.Equal("USD", slabs[0].Currency.Code)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockSession.AssertExpectations(suite.T())
}

func (suite *RateSlabServiceTestSuite) TestRetrieveAll_RegroupsInterleavedRows() {
	suite.authenticated()
	rows := []models.RateSlabRow{
		slabRow(1, int64Ptr(10)),
		slabRow(2, int64Ptr(20)),
		slabRow(1, int64Ptr(11)),
	}
	suite.mockRepo.On("FindRateSlabRowsByChart", suite.ctx, int64(7)).Return(rows, nil).Once()

	slabs, err := suite.service.RetrieveAll(suite.ctx, 7)

	suite.Require().NoError(err)
	suite.Require().Len(slabs, 2)
	suite.Equal([]int64{10, 11}, incentiveIDs(slabs[0]))
	suite.Equal([]int64{20}, incentiveIDs(slabs[1]))
}

func (suite *RateSlabServiceTestSuite) TestRetrieveAll_EmptyChart() {
	suite.authenticated()
	suite.mockRepo.On("FindRateSlabRowsByChart", suite.ctx, int64(7)).Return([]models.RateSlabRow{}, nil).Once()

	slabs, err := suite.service.RetrieveAll(suite.ctx, 7)

	suite.Require().NoError(err)
	suite.NotNil(slabs)
	suite.Empty(slabs)
}

func (suite *RateSlabServiceTestSuite) TestRetrieveAll_RepositoryError() {
	suite.authenticated()
	dbErr := errors.New("connection reset")
	suite.mockRepo.On("FindRateSlabRowsByChart", suite.ctx, int64(7)).Return(nil, dbErr).Once()

	slabs, err := suite.service.RetrieveAll(suite.ctx, 7)

	suite.Require().Error(err)
	suite.ErrorIs(err, dbErr)
	suite.Nil(slabs)
}

func (suite *RateSlabServiceTestSuite) TestRetrieveAll_InvalidSessionRunsNoQuery() {
	suite.mockSession.On("AuthenticatedUser", suite.ctx).Return("", apperrors.ErrUnauthorized).Once()

	slabs, err := suite.service.RetrieveAll(suite.ctx, 7)

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(slabs)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindRateSlabRowsByChart", mock.Anything, mock.Anything)
}

func (suite *RateSlabServiceTestSuite) TestRetrieveOne_Success() {
	suite.authenticated()
	rows := []models.RateSlabRow{slabRow(99, int64Ptr(3))}
	suite.mockRepo.On("FindRateSlabRowsByChartAndSlab", suite.ctx, int64(5), int64(99)).Return(rows, nil).Once()

	slab, err := suite.service.RetrieveOne(suite.ctx, 5, 99)

	suite.Require().NoError(err)
	suite.Require().NotNil(slab)
	suite.Equal(int64(99), slab.ID)
	suite.Equal([]int64{3}, incentiveIDs(*slab))
	suite.Equal("InterestIncentiveAttributeName.age", slab.Incentives[0].AttributeName.Code)
	suite.Nil(slab.Incentives[0].AttributeValueDescription)
}

func (suite *RateSlabServiceTestSuite) TestRetrieveOne_NotFound() {
	suite.authenticated()
	suite.mockRepo.On("FindRateSlabRowsByChartAndSlab", suite.ctx, int64(5), int64(99)).Return([]models.RateSlabRow{}, nil).Once()

	slab, err := suite.service.RetrieveOne(suite.ctx, 5, 99)

	suite.Nil(slab)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	var notFound *apperrors.RateSlabNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal(int64(5), notFound.ChartID)
	suite.Equal(int64(99), notFound.SlabID)
	suite.Contains(err.Error(), "99")
	suite.Contains(err.Error(), "5")
}

func (suite *RateSlabServiceTestSuite) TestRetrieveOne_SentinelOnlyRowsAreNotFound() {
	suite.authenticated()
	rows := []models.RateSlabRow{{SlabID: int64Ptr(0)}}
	suite.mockRepo.On("FindRateSlabRowsByChartAndSlab", suite.ctx, int64(5), int64(99)).Return(rows, nil).Once()

	_, err := suite.service.RetrieveOne(suite.ctx, 5, 99)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RateSlabServiceTestSuite) TestRetrieveOne_InvalidSessionRunsNoQuery() {
	suite.mockSession.On("AuthenticatedUser", suite.ctx).Return("", apperrors.ErrUnauthorized).Once()

	_, err := suite.service.RetrieveOne(suite.ctx, 5, 99)

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindRateSlabRowsByChartAndSlab", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateSlabServiceTestSuite) expectEmptyOptionProviders() {
	for _, method := range []string{
		"RetrievePeriodTypeOptions",
		"RetrieveEntityTypeOptions",
		"RetrieveAttributeNameOptions",
		"RetrieveConditionTypeOptions",
		"RetrieveIncentiveTypeOptions",
	} {
		suite.mockDrop.On(method, suite.ctx).Return([]domain.EnumOption{}, nil).Once()
	}
	for _, code := range []string{portssvc.CodeGender, portssvc.CodeClientType, portssvc.CodeClientClassification} {
		suite.mockCodes.On("RetrieveCodeValuesByCode", suite.ctx, code).Return([]domain.CodeValue{}, nil).Once()
	}
}

func (suite *RateSlabServiceTestSuite) TestRetrieveTemplate_EmptyProviders() {
	suite.authenticated()
	suite.expectEmptyOptionProviders()

	template, err := suite.service.RetrieveTemplate(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(template)
	suite.Nil(template.Slab)
	suite.Empty(template.PeriodTypes)
	suite.Empty(template.EntityTypeOptions)
	suite.Empty(template.AttributeNameOptions)
	suite.Empty(template.ConditionTypeOptions)
	suite.Empty(template.IncentiveTypeOptions)
	suite.Empty(template.GenderOptions)
	suite.Empty(template.ClientTypeOptions)
	suite.Empty(template.ClientClassificationOptions)
	suite.mockDrop.AssertExpectations(suite.T())
	suite.mockCodes.AssertExpectations(suite.T())
}

func (suite *RateSlabServiceTestSuite) TestRetrieveTemplate_CollectsOptions() {
	suite.authenticated()
	periods := []domain.EnumOption{{ID: 0, Code: "interestChartPeriodType.days", Value: "Days"}}
	genders := []domain.CodeValue{{ID: 21, Name: "Female", Position: 1, Active: true}}
	suite.mockDrop.On("RetrievePeriodTypeOptions", suite.ctx).Return(periods, nil).Once()
	suite.mockDrop.On("RetrieveEntityTypeOptions", suite.ctx).Return(nil, nil).Once()
	suite.mockDrop.On("RetrieveAttributeNameOptions", suite.ctx).Return(nil, nil).Once()
	suite.mockDrop.On("RetrieveConditionTypeOptions", suite.ctx).Return(nil, nil).Once()
	suite.mockDrop.On("RetrieveIncentiveTypeOptions", suite.ctx).Return(nil, nil).Once()
	suite.mockCodes.On("RetrieveCodeValuesByCode", suite.ctx, portssvc.CodeGender).Return(genders, nil).Once()
	suite.mockCodes.On("RetrieveCodeValuesByCode", suite.ctx, portssvc.CodeClientType).Return(nil, nil).Once()
	suite.mockCodes.On("RetrieveCodeValuesByCode", suite.ctx, portssvc.CodeClientClassification).Return(nil, nil).Once()

	template, err := suite.service.RetrieveTemplate(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(periods, template.PeriodTypes)
	suite.Equal(genders, template.GenderOptions)
	suite.NotNil(template.EntityTypeOptions)
	suite.NotNil(template.ClientTypeOptions)
}

func (suite *RateSlabServiceTestSuite) TestRetrieveTemplate_ProviderErrorPropagates() {
	suite.authenticated()
	providerErr := errors.New("code table unavailable")
	suite.mockDrop.On("RetrievePeriodTypeOptions", suite.ctx).Return([]domain.EnumOption{}, nil).Once()
	suite.mockDrop.On("RetrieveEntityTypeOptions", suite.ctx).Return([]domain.EnumOption{}, nil).Once()
	suite.mockDrop.On("RetrieveAttributeNameOptions", suite.ctx).Return([]domain.EnumOption{}, nil).Once()
	suite.mockDrop.On("RetrieveConditionTypeOptions", suite.ctx).Return([]domain.EnumOption{}, nil).Once()
	suite.mockDrop.On("RetrieveIncentiveTypeOptions", suite.ctx).Return([]domain.EnumOption{}, nil).Once()
	suite.mockCodes.On("RetrieveCodeValuesByCode", suite.ctx, portssvc.CodeGender).Return(nil, providerErr).Once()

	template, err := suite.service.RetrieveTemplate(suite.ctx)

	suite.Nil(template)
	suite.ErrorIs(err, providerErr)
	suite.mockCodes.AssertNotCalled(suite.T(), "RetrieveCodeValuesByCode", suite.ctx, portssvc.CodeClientType)
}

func (suite *RateSlabServiceTestSuite) TestRetrieveTemplate_InvalidSession() {
	suite.mockSession.On("AuthenticatedUser", suite.ctx).Return("", apperrors.ErrUnauthorized).Once()

	template, err := suite.service.RetrieveTemplate(suite.ctx)

	suite.Nil(template)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockDrop.AssertNotCalled(suite.T(), "RetrievePeriodTypeOptions", mock.Anything)
}

func (suite *RateSlabServiceTestSuite) TestRetrieveWithTemplate_CarriesSlab() {
	suite.authenticated()
	suite.expectEmptyOptionProviders()
	slab := domain.NewRateSlabBuilder(domain.RateSlab{ID: 42, Description: "gold"}).Build()

	template, err := suite.service.RetrieveWithTemplate(suite.ctx, slab)

	suite.Require().NoError(err)
	suite.Require().NotNil(template.Slab)
	suite.Equal(int64(42), template.Slab.ID)
	suite.Equal("gold", template.Slab.Description)
}

func (suite *RateSlabServiceTestSuite) TestRetrieveWithTemplate_InvalidSession() {
	suite.mockSession.On("AuthenticatedUser", suite.ctx).Return("", apperrors.ErrUnauthorized).Once()

	template, err := suite.service.RetrieveWithTemplate(suite.ctx, domain.RateSlab{ID: 42})

	suite.Nil(template)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestRateSlabServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateSlabServiceTestSuite))
}

func TestRateSlabService_NoAuthenticatorDeniesAccess(t *testing.T) {
	repo := new(MockRateSlabRowReader)
	svc := services.NewRateSlabService(repo)

	_, err := svc.RetrieveAll(context.Background(), 1)

	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	repo.AssertNotCalled(t, "FindRateSlabRowsByChart", mock.Anything, mock.Anything)
}

func TestRateSlabService_UnconfiguredProvidersYieldEmptyTemplate(t *testing.T) {
	session := new(MockSessionAuthenticator)
	session.On("AuthenticatedUser", mock.Anything).Return("user-1", nil)
	svc := services.NewRateSlabService(new(MockRateSlabRowReader), services.WithSessionAuthenticator(session))

	template, err := svc.RetrieveTemplate(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if template.Slab != nil || len(template.PeriodTypes) != 0 || template.GenderOptions == nil {
		t.Fatalf("expected an empty template, got %+v", template)
	}
}
