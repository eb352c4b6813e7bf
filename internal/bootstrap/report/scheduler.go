package report

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"

	"currency-transactions/internal/models"
	"currency-transactions/internal/services"
)

// StartScheduler запускает конвейер по расписанию; первый запуск через interval.
// Планировщик останавливается вместе с контекстом.
func StartScheduler(ctx context.Context, interval time.Duration, reportService services.ReportService) (*gocron.Scheduler, error) {
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	_, err := scheduler.Every(interval).WaitForSchedule().Do(func() {
		scheduledRun(ctx, reportService)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Dur("interval", interval).Msg("Run scheduler started")
	scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		scheduler.Stop()
		log.Info().Msg("Run scheduler stopped")
	}()

	return scheduler, nil
}

func scheduledRun(ctx context.Context, reportService services.ReportService) {
	log.Info().Msg("Scheduled run")

	run, err := reportService.TriggerRun(ctx)
	if errors.Is(err, models.ErrRunInProgress) {
		log.Warn().Msg("Scheduled run skipped: another run is in progress")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("Scheduled run failed")
		return
	}

	log.Info().Str("run_id", run.RunID).Int("persisted", run.Persisted).Msg("Scheduled run finished")
}
