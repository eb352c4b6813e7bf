package services

import (
	"context"

	"currency-transactions/internal/models"
)

// RunLauncher выполняет один запуск конвейера
type RunLauncher func(ctx context.Context) (*models.RunSummary, error)

// ReportService определяет интерфейс сервиса отчётов
type ReportService interface {
	// TriggerRun выполняет запуск; одновременно может идти только один
	TriggerRun(ctx context.Context) (*models.RunSummary, error)

	// GetRun возвращает запуск вместе со статистикой, nil если запуска нет
	GetRun(ctx context.Context, runID string) (*models.RunSummary, error)

	// ListRuns возвращает последние запуски
	ListRuns(ctx context.Context, limit int) ([]*models.RunSummary, error)

	// ListTransactions возвращает последние транзакции категории
	ListTransactions(ctx context.Context, tier models.Tier, limit int) ([]*models.StoredTransaction, error)

	// ClearAllTransactions очищает обе таблицы категорий
	ClearAllTransactions(ctx context.Context) error
}
