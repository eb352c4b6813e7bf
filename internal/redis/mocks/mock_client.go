package mocks

import (
	"currency-transactions/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockClient является моком для redis.ClientInterface
type MockClient struct {
	mock.Mock
}

// IncrementTierStats мок для IncrementTierStats
func (m *MockClient) IncrementTierStats(runID string, tier models.Tier) error {
	args := m.Called(runID, tier)
	return args.Error(0)
}

// IncrementSkipStats мок для IncrementSkipStats
func (m *MockClient) IncrementSkipStats(runID, currency string) error {
	args := m.Called(runID, currency)
	return args.Error(0)
}

// GetRunStats мок для GetRunStats
func (m *MockClient) GetRunStats(runID string) (map[string]int64, error) {
	args := m.Called(runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// ClearRunStats мок для ClearRunStats
func (m *MockClient) ClearRunStats() error {
	args := m.Called()
	return args.Error(0)
}

// Close мок для Close
func (m *MockClient) Close() error {
	args := m.Called()
	return args.Error(0)
}
