package mocks

import (
	"context"

	"currency-transactions/internal/rates"

	"github.com/stretchr/testify/mock"
)

// MockProvider является моком для rates.Provider интерфейса
type MockProvider struct {
	mock.Mock
}

// FetchRates мок для FetchRates
func (m *MockProvider) FetchRates(ctx context.Context) (rates.Table, error) {
	args := m.Called(ctx)
	return args.Get(0).(rates.Table), args.Error(1)
}
