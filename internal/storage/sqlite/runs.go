package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"currency-transactions/internal/models"
)

// SaveRun создаёт или обновляет запись о запуске
func (s *SQLiteStorage) SaveRun(ctx context.Context, run *models.RunSummary) error {
	skipped, err := json.Marshal(run.SkippedCurrencies)
	if err != nil {
		return fmt.Errorf("failed to marshal skipped currencies: %w", err)
	}
	if run.SkippedCurrencies == nil {
		skipped = []byte("{}")
	}

	query := `
		INSERT INTO runs (
			run_id, state, status, started_at, finished_at, combinations,
			persisted, skipped, usual_count, big_count, skipped_currencies, error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id) DO UPDATE SET
			state = excluded.state,
			status = excluded.status,
			finished_at = excluded.finished_at,
			combinations = excluded.combinations,
			persisted = excluded.persisted,
			skipped = excluded.skipped,
			usual_count = excluded.usual_count,
			big_count = excluded.big_count,
			skipped_currencies = excluded.skipped_currencies,
			error = excluded.error
	`

	_, err = s.DB.ExecContext(ctx, query,
		run.RunID, string(run.State), run.Status, run.StartedAt.UTC(), utcOrNil(run.FinishedAt),
		run.Combinations, run.Persisted, run.Skipped, run.UsualCount, run.BigCount,
		string(skipped), run.Error,
	)
	return err
}

const runColumns = `
	run_id, state, status, started_at, finished_at, combinations,
	persisted, skipped, usual_count, big_count, skipped_currencies, error
`

// GetRun получает запуск по run_id
func (s *SQLiteStorage) GetRun(ctx context.Context, runID string) (*models.RunSummary, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// GetRuns получает последние запуски
func (s *SQLiteStorage) GetRuns(ctx context.Context, limit int) ([]*models.RunSummary, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+runColumns+` FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*models.RunSummary
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*models.RunSummary, error) {
	var run models.RunSummary
	var state, skipped string
	var finishedAt sql.NullTime

	if err := row.Scan(
		&run.RunID, &state, &run.Status, &run.StartedAt, &finishedAt, &run.Combinations,
		&run.Persisted, &run.Skipped, &run.UsualCount, &run.BigCount, &skipped, &run.Error,
	); err != nil {
		return nil, err
	}

	run.State = models.RunState(state)
	if finishedAt.Valid {
		run.FinishedAt = &finishedAt.Time
	}
	if err := json.Unmarshal([]byte(skipped), &run.SkippedCurrencies); err != nil {
		return nil, fmt.Errorf("invalid skipped currencies for run %s: %w", run.RunID, err)
	}
	return &run, nil
}

func utcOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
