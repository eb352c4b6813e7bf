package sqlite

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"currency-transactions/internal/models"
)

// GetTransactions получает последние транзакции категории
func (s *SQLiteStorage) GetTransactions(ctx context.Context, tier models.Tier, limit int) ([]*models.StoredTransaction, error) {
	table, err := tableFor(tier)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT run_id, id, name, currency, volume, created_at
		FROM %s
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, table)

	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.StoredTransaction
	for rows.Next() {
		var st models.StoredTransaction
		var volume string
		if err := rows.Scan(&st.RunID, &st.ID, &st.Name, &st.Currency, &volume, &st.CreatedAt); err != nil {
			return nil, err
		}
		if st.Volume, err = decimal.NewFromString(volume); err != nil {
			return nil, fmt.Errorf("invalid volume %q in %s: %w", volume, table, err)
		}
		st.Tier = tier
		transactions = append(transactions, &st)
	}

	return transactions, rows.Err()
}
