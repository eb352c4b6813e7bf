package conversion

import (
	"context"
	"fmt"

	"currency-transactions/internal/config"
	"currency-transactions/internal/models"
	"currency-transactions/internal/pipeline"
	"currency-transactions/internal/storage/sqlite"
)

// ExecuteRun открывает хранилище на время одного запуска и выполняет конвейер
func ExecuteRun(ctx context.Context, cfg *config.Config, deps *Dependencies) (*models.RunSummary, error) {
	storage, err := sqlite.NewConnection(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrPersistence, err)
	}
	defer storage.Close()

	runner := pipeline.NewRunner(deps.Source, deps.Rates, deps.RunnerOptions()...)
	return runner.Run(ctx, sqlite.NewRepository(storage))
}
