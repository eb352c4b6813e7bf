package report

import (
	"context"

	"currency-transactions/internal/bootstrap/conversion"
	"currency-transactions/internal/config"
	"currency-transactions/internal/models"
	"currency-transactions/internal/services"
	"currency-transactions/internal/storage"
	"currency-transactions/internal/storage/sqlite"
)

// Dependencies содержит все зависимости сервиса отчётов
type Dependencies struct {
	StorageConn   *sqlite.SQLiteStorage
	StorageRepo   storage.TransactionRepository
	Conversion    *conversion.Dependencies
	ReportService services.ReportService
}

// InitializeDependencies инициализирует все зависимости сервиса отчётов
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	// Соединение для чтения отчётов; запуски открывают собственное
	storageConn, err := sqlite.NewConnection(cfg)
	if err != nil {
		return nil, err
	}
	storageRepo := sqlite.NewRepository(storageConn)

	conv := conversion.InitializeDependencies(cfg)

	launch := func(ctx context.Context) (*models.RunSummary, error) {
		return conversion.ExecuteRun(ctx, cfg, conv)
	}

	var reportService services.ReportService
	if conv.RedisClient != nil {
		reportService = services.NewReportServiceWithRedis(storageRepo, launch, conv.RedisClient)
	} else {
		reportService = services.NewReportService(storageRepo, launch)
	}

	return &Dependencies{
		StorageConn:   storageConn,
		StorageRepo:   storageRepo,
		Conversion:    conv,
		ReportService: reportService,
	}, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.Conversion != nil {
		if err := d.Conversion.Close(); err != nil {
			return err
		}
	}
	if d.StorageConn != nil {
		if err := d.StorageConn.Close(); err != nil {
			return err
		}
	}
	return nil
}
