package services_test

import (
	"context"

	"github.com/SscSPs/ratechart_app/internal/core/domain"
	"github.com/SscSPs/ratechart_app/internal/models"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateSlabRowReader ---
type MockRateSlabRowReader struct {
	mock.Mock
}

func (m *MockRateSlabRowReader) FindRateSlabRowsByChart(ctx context.Context, chartID int64) ([]models.RateSlabRow, error) {
	args := m.Called(ctx, chartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RateSlabRow), args.Error(1)
}

func (m *MockRateSlabRowReader) FindRateSlabRowsByChartAndSlab(ctx context.Context, chartID, slabID int64) ([]models.RateSlabRow, error) {
	args := m.Called(ctx, chartID, slabID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RateSlabRow), args.Error(1)
}

// --- Mock CodeValueReader ---
type MockCodeValueReader struct {
	mock.Mock
}

func (m *MockCodeValueReader) FindActiveCodeValuesByCodeName(ctx context.Context, codeName string) ([]models.CodeValue, error) {
	args := m.Called(ctx, codeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CodeValue), args.Error(1)
}

// --- Mock SessionAuthenticator ---
type MockSessionAuthenticator struct {
	mock.Mock
}

func (m *MockSessionAuthenticator) AuthenticatedUser(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// --- Mock CodeValueReaderSvc ---
type MockCodeValueService struct {
	mock.Mock
}

func (m *MockCodeValueService) RetrieveCodeValuesByCode(ctx context.Context, codeName string) ([]domain.CodeValue, error) {
	args := m.Called(ctx, codeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CodeValue), args.Error(1)
}

// --- Mock ChartDropdownSvc / IncentiveDropdownSvc ---
type MockDropdownService struct {
	mock.Mock
}

func (m *MockDropdownService) enumOptions(args mock.Arguments) ([]domain.EnumOption, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnumOption), args.Error(1)
}

func (m *MockDropdownService) RetrievePeriodTypeOptions(ctx context.Context) ([]domain.EnumOption, error) {
	return m.enumOptions(m.Called(ctx))
}

func (m *MockDropdownService) RetrieveEntityTypeOptions(ctx context.Context) ([]domain.EnumOption, error) {
	return m.enumOptions(m.Called(ctx))
}

func (m *MockDropdownService) RetrieveAttributeNameOptions(ctx context.Context) ([]domain.EnumOption, error) {
	return m.enumOptions(m.Called(ctx))
}

func (m *MockDropdownService) RetrieveConditionTypeOptions(ctx context.Context) ([]domain.EnumOption, error) {
	return m.enumOptions(m.Called(ctx))
}

func (m *MockDropdownService) RetrieveIncentiveTypeOptions(ctx context.Context) ([]domain.EnumOption, error) {
	return m.enumOptions(m.Called(ctx))
}

func int64Ptr(v int64) *int64    { return &v }
func int32Ptr(v int32) *int32    { return &v }
func stringPtr(v string) *string { return &v }
