package sqlite

import (
	"context"

	"currency-transactions/internal/models"
	"currency-transactions/internal/storage"
)

// Repository реализует интерфейс TransactionRepository для SQLite
type Repository struct {
	storage *SQLiteStorage
}

// NewRepository создает новый репозиторий SQLite
func NewRepository(storage *SQLiteStorage) storage.TransactionRepository {
	return &Repository{storage: storage}
}

// SaveTransaction сохраняет транзакцию в БД
func (r *Repository) SaveTransaction(ctx context.Context, runID string, tx *models.Transaction) error {
	return r.storage.SaveTransaction(ctx, runID, tx)
}

// GetTransactions получает последние транзакции категории
func (r *Repository) GetTransactions(ctx context.Context, tier models.Tier, limit int) ([]*models.StoredTransaction, error) {
	return r.storage.GetTransactions(ctx, tier, limit)
}

// ClearAllTransactions удаляет все транзакции из БД
func (r *Repository) ClearAllTransactions(ctx context.Context) error {
	return r.storage.ClearAllTransactions(ctx)
}

// SaveRun сохраняет запись о запуске
func (r *Repository) SaveRun(ctx context.Context, run *models.RunSummary) error {
	return r.storage.SaveRun(ctx, run)
}

// GetRun получает запуск по run_id
func (r *Repository) GetRun(ctx context.Context, runID string) (*models.RunSummary, error) {
	return r.storage.GetRun(ctx, runID)
}

// GetRuns получает последние запуски
func (r *Repository) GetRuns(ctx context.Context, limit int) ([]*models.RunSummary, error) {
	return r.storage.GetRuns(ctx, limit)
}
