package mocks

import (
	"context"

	"currency-transactions/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockProvider является моком для source.Provider интерфейса
type MockProvider struct {
	mock.Mock
}

// Load мок для Load
func (m *MockProvider) Load(ctx context.Context) (*models.RecordSet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecordSet), args.Error(1)
}
