package redis

import (
	"currency-transactions/internal/models"
)

// ClientInterface определяет интерфейс для работы с Redis
// Реализуется типом Client
type ClientInterface interface {
	// IncrementTierStats увеличивает счетчик категории в статистике запуска
	IncrementTierStats(runID string, tier models.Tier) error

	// IncrementSkipStats увеличивает счетчики пропущенных комбинаций
	IncrementSkipStats(runID, currency string) error

	// GetRunStats получает счетчики запуска
	GetRunStats(runID string) (map[string]int64, error)

	// ClearRunStats очищает статистику всех запусков
	ClearRunStats() error

	// Close закрывает соединение с Redis
	Close() error
}

// Убеждаемся, что Client реализует ClientInterface
var _ ClientInterface = (*Client)(nil)
