package sqlite

import "context"

// ClearAllTransactions удаляет транзакции обеих категорий
func (s *SQLiteStorage) ClearAllTransactions(ctx context.Context) error {
	dbTx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer dbTx.Rollback()

	for _, table := range tierTables {
		if _, err := dbTx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return err
		}
	}
	return dbTx.Commit()
}
