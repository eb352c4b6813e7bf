package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"currency-transactions/internal/models"
	"currency-transactions/internal/redis"
	"currency-transactions/internal/storage"
)

// ReportServiceImpl реализует интерфейс ReportService
type ReportServiceImpl struct {
	repo        storage.TransactionRepository
	launch      RunLauncher
	redisClient redis.ClientInterface // Опциональный Redis клиент для статистики запусков
	mu          sync.Mutex
}

// NewReportService создает новый сервис отчётов
func NewReportService(repo storage.TransactionRepository, launch RunLauncher) ReportService {
	return &ReportServiceImpl{
		repo:   repo,
		launch: launch,
	}
}

// NewReportServiceWithRedis создает новый сервис отчётов с поддержкой Redis
func NewReportServiceWithRedis(repo storage.TransactionRepository, launch RunLauncher, redisClient redis.ClientInterface) ReportService {
	return &ReportServiceImpl{
		repo:        repo,
		launch:      launch,
		redisClient: redisClient,
	}
}

// TriggerRun выполняет запуск, если другой ещё не идёт.
// Запуск не прерывается при отмене контекста вызывающего.
func (s *ReportServiceImpl) TriggerRun(ctx context.Context) (*models.RunSummary, error) {
	if !s.mu.TryLock() {
		return nil, models.ErrRunInProgress
	}
	defer s.mu.Unlock()

	return s.launch(context.WithoutCancel(ctx))
}

// GetRun возвращает запуск по run_id
func (s *ReportServiceImpl) GetRun(ctx context.Context, runID string) (*models.RunSummary, error) {
	run, err := s.repo.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, nil
	}

	// Если есть Redis клиент, добавляем счетчики запуска
	if s.redisClient != nil {
		stats, err := s.redisClient.GetRunStats(runID)
		if err != nil {
			log.Warn().Err(err).Str("run_id", runID).Msg("Failed to get run stats")
		} else if len(stats) > 0 {
			run.Stats = stats
		}
	}

	return run, nil
}

// ListRuns возвращает последние запуски
func (s *ReportServiceImpl) ListRuns(ctx context.Context, limit int) ([]*models.RunSummary, error) {
	runs, err := s.repo.GetRuns(ctx, limit)
	if err != nil {
		return nil, err
	}
	if runs == nil {
		runs = []*models.RunSummary{}
	}
	return runs, nil
}

// ListTransactions возвращает последние транзакции категории
func (s *ReportServiceImpl) ListTransactions(ctx context.Context, tier models.Tier, limit int) ([]*models.StoredTransaction, error) {
	transactions, err := s.repo.GetTransactions(ctx, tier, limit)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []*models.StoredTransaction{}
	}
	return transactions, nil
}

// ClearAllTransactions очищает все транзакции и статистику запусков
func (s *ReportServiceImpl) ClearAllTransactions(ctx context.Context) error {
	if err := s.repo.ClearAllTransactions(ctx); err != nil {
		return err
	}

	if s.redisClient != nil {
		if err := s.redisClient.ClearRunStats(); err != nil {
			log.Warn().Err(err).Msg("Failed to clear run stats")
		}
	}
	return nil
}
