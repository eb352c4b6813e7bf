package mocks

import (
	"context"

	"currency-transactions/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository является моком для storage.TransactionRepository интерфейса
type MockTransactionRepository struct {
	mock.Mock
}

// SaveTransaction мок для SaveTransaction
func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, runID string, tx *models.Transaction) error {
	args := m.Called(ctx, runID, tx)
	return args.Error(0)
}

// GetTransactions мок для GetTransactions
func (m *MockTransactionRepository) GetTransactions(ctx context.Context, tier models.Tier, limit int) ([]*models.StoredTransaction, error) {
	args := m.Called(ctx, tier, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StoredTransaction), args.Error(1)
}

// ClearAllTransactions мок для ClearAllTransactions
func (m *MockTransactionRepository) ClearAllTransactions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// SaveRun мок для SaveRun
func (m *MockTransactionRepository) SaveRun(ctx context.Context, run *models.RunSummary) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

// GetRun мок для GetRun
func (m *MockTransactionRepository) GetRun(ctx context.Context, runID string) (*models.RunSummary, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RunSummary), args.Error(1)
}

// GetRuns мок для GetRuns
func (m *MockTransactionRepository) GetRuns(ctx context.Context, limit int) ([]*models.RunSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.RunSummary), args.Error(1)
}
