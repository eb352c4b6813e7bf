package storage

import (
	"context"

	"currency-transactions/internal/models"
)

// TransactionRepository определяет интерфейс для работы с транзакциями в хранилище
type TransactionRepository interface {
	// SaveTransaction сохраняет транзакцию в таблицу её категории и фиксирует запись
	SaveTransaction(ctx context.Context, runID string, tx *models.Transaction) error

	// GetTransactions получает последние транзакции категории
	GetTransactions(ctx context.Context, tier models.Tier, limit int) ([]*models.StoredTransaction, error)

	// ClearAllTransactions удаляет транзакции обеих категорий
	ClearAllTransactions(ctx context.Context) error

	// SaveRun создаёт или обновляет запись о запуске
	SaveRun(ctx context.Context, run *models.RunSummary) error

	// GetRun получает запуск по run_id, nil если не найден
	GetRun(ctx context.Context, runID string) (*models.RunSummary, error)

	// GetRuns получает последние запуски
	GetRuns(ctx context.Context, limit int) ([]*models.RunSummary, error)
}
