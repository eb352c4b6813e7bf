package mocks

import (
	"context"

	"currency-transactions/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockReportService является моком для services.ReportService интерфейса
type MockReportService struct {
	mock.Mock
}

// TriggerRun мок для TriggerRun
func (m *MockReportService) TriggerRun(ctx context.Context) (*models.RunSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RunSummary), args.Error(1)
}

// GetRun мок для GetRun
func (m *MockReportService) GetRun(ctx context.Context, runID string) (*models.RunSummary, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RunSummary), args.Error(1)
}

// ListRuns мок для ListRuns
func (m *MockReportService) ListRuns(ctx context.Context, limit int) ([]*models.RunSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.RunSummary), args.Error(1)
}

// ListTransactions мок для ListTransactions
func (m *MockReportService) ListTransactions(ctx context.Context, tier models.Tier, limit int) ([]*models.StoredTransaction, error) {
	args := m.Called(ctx, tier, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StoredTransaction), args.Error(1)
}

// ClearAllTransactions мок для ClearAllTransactions
func (m *MockReportService) ClearAllTransactions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
