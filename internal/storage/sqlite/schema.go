package sqlite

import (
	"fmt"

	"currency-transactions/internal/models"
)

// Таблицы категорий имеют одинаковую структуру
var tierTables = map[models.Tier]string{
	models.TierUsual: "usualtransaction",
	models.TierBig:   "bigtransaction",
}

func tableFor(tier models.Tier) (string, error) {
	table, ok := tierTables[tier]
	if !ok {
		return "", fmt.Errorf("unknown tier %q", tier)
	}
	return table, nil
}

const transactionTableDDL = `
	CREATE TABLE IF NOT EXISTS %[1]s (
		run_id TEXT NOT NULL,
		id INTEGER NOT NULL,
		name TEXT NOT NULL,
		currency TEXT NOT NULL,
		volume TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		PRIMARY KEY (run_id, id)
	);

	CREATE INDEX IF NOT EXISTS idx_%[1]s_created_at ON %[1]s(created_at);
`

const runsTableDDL = `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		state TEXT NOT NULL,
		status TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		finished_at DATETIME,
		combinations INTEGER NOT NULL DEFAULT 0,
		persisted INTEGER NOT NULL DEFAULT 0,
		skipped INTEGER NOT NULL DEFAULT 0,
		usual_count INTEGER NOT NULL DEFAULT 0,
		big_count INTEGER NOT NULL DEFAULT 0,
		skipped_currencies TEXT NOT NULL DEFAULT '{}',
		error TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// initSchema инициализирует схему БД
func (s *SQLiteStorage) initSchema() error {
	for _, tier := range []models.Tier{models.TierUsual, models.TierBig} {
		if _, err := s.DB.Exec(fmt.Sprintf(transactionTableDDL, tierTables[tier])); err != nil {
			return err
		}
	}

	_, err := s.DB.Exec(runsTableDDL)
	return err
}
