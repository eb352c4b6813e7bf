package sqlite

import (
	"context"
	"fmt"
	"time"

	"currency-transactions/internal/models"
)

// SaveTransaction сохраняет транзакцию в таблицу категории в отдельной транзакции БД
func (s *SQLiteStorage) SaveTransaction(ctx context.Context, runID string, tx *models.Transaction) error {
	table, err := tableFor(tx.Tier)
	if err != nil {
		return err
	}

	dbTx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := fmt.Sprintf(`
		INSERT INTO %s (run_id, id, name, currency, volume, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, table)

	if _, err := dbTx.ExecContext(ctx, query,
		runID, tx.ID, tx.Name, tx.Currency, tx.Volume.String(), time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
