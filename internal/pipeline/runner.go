package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"currency-transactions/internal/logger"
	"currency-transactions/internal/models"
	"currency-transactions/internal/rates"
	"currency-transactions/internal/source"
)

// RunStore - хранилище одного запуска: транзакции и журнал запусков
type RunStore interface {
	Store
	SaveRun(ctx context.Context, run *models.RunSummary) error
}

// StatsRecorder ведёт счётчики запуска
type StatsRecorder interface {
	IncrementTierStats(runID string, tier models.Tier) error
	IncrementSkipStats(runID, currency string) error
}

// EventPublisher публикует сохранённые транзакции
type EventPublisher interface {
	SendTransactionEvent(event *models.TransactionEvent) error
}

// Runner выполняет запуск конвейера: источник -> курсы -> комбинации -> хранилище
type Runner struct {
	source    source.Provider
	rates     rates.Provider
	publisher EventPublisher
	stats     StatsRecorder
	events    *logger.EventLogger
	log       zerolog.Logger
	now       func() time.Time
	newRunID  func() string
}

type Option func(*Runner)

// WithPublisher включает публикацию событий о сохранённых транзакциях
func WithPublisher(publisher EventPublisher) Option {
	return func(r *Runner) { r.publisher = publisher }
}

// WithStats включает счётчики запуска
func WithStats(stats StatsRecorder) Option {
	return func(r *Runner) { r.stats = stats }
}

func WithEvents(events *logger.EventLogger) Option {
	return func(r *Runner) { r.events = events }
}

func WithLogger(l zerolog.Logger) Option {
	return func(r *Runner) { r.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

func WithRunIDs(newRunID func() string) Option {
	return func(r *Runner) { r.newRunID = newRunID }
}

func NewRunner(src source.Provider, rp rates.Provider, opts ...Option) *Runner {
	r := &Runner{
		source:   src,
		rates:    rp,
		events:   logger.Global(),
		log:      log.Logger,
		now:      time.Now,
		newRunID: func() string { return "run_" + uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run выполняет один запуск. Любая фатальная ошибка переводит запуск в Aborted;
// уже сохранённые транзакции остаются в хранилище.
func (r *Runner) Run(ctx context.Context, store RunStore) (*models.RunSummary, error) {
	run := &models.RunSummary{
		RunID:             r.newRunID(),
		State:             models.StateInit,
		Status:            models.RunStatusRunning,
		StartedAt:         r.now(),
		SkippedCurrencies: map[string]int{},
	}
	l := r.log.With().Str("run_id", run.RunID).Logger()

	if err := store.SaveRun(ctx, run); err != nil {
		return r.abort(ctx, store, run, l, fmt.Errorf("%w: failed to register run: %w", models.ErrPersistence, err))
	}
	l.Info().Msg("Run started")
	r.events.LogEvent(logger.EventRunStarted, run.RunID, "pipeline", nil)

	records, err := r.source.Load(ctx)
	if err != nil {
		return r.abort(ctx, store, run, l, err)
	}
	combinator, err := NewCombinator(records)
	if err != nil {
		return r.abort(ctx, store, run, l, err)
	}
	run.Combinations = combinator.Count()

	run.State = models.StateFetchRate
	table, err := r.rates.FetchRates(ctx)
	if err != nil {
		return r.abort(ctx, store, run, l, err)
	}
	l.Info().Int("currencies", table.Len()).Int("combinations", run.Combinations).Msg("Rates fetched")
	r.events.LogEvent(logger.EventRatesFetched, run.RunID, "rates", map[string]interface{}{
		"currencies": table.Len(),
	})

	run.State = models.StateCombine
	sink := NewSink(store, run.RunID)
	for combination := range combinator.All() {
		if err := ctx.Err(); err != nil {
			return r.abort(ctx, store, run, l, err)
		}
		if err := r.process(ctx, sink, table, run, combination, l); err != nil {
			return r.abort(ctx, store, run, l, fmt.Errorf("combination %d: %w", combination.Index, err))
		}
	}

	run.State = models.StateDone
	run.Status = models.RunStatusSucceeded
	finished := r.now()
	run.FinishedAt = &finished

	if err := store.SaveRun(ctx, run); err != nil {
		l.Error().Err(err).Msg("Failed to save run summary")
		return run, fmt.Errorf("%w: failed to save run summary: %w", models.ErrPersistence, err)
	}

	l.Info().
		Int("persisted", run.Persisted).
		Int("skipped", run.Skipped).
		Int("usual", run.UsualCount).
		Int("big", run.BigCount).
		Msg("Information about the transactions has been successfully transferred to the database")
	r.events.LogEvent(logger.EventRunCompleted, run.RunID, "pipeline", map[string]interface{}{
		"persisted": run.Persisted,
		"skipped":   run.Skipped,
	})

	return run, nil
}

func (r *Runner) process(
	ctx context.Context,
	sink *Sink,
	table rates.Table,
	run *models.RunSummary,
	combination Combination,
	l zerolog.Logger,
) error {
	name, err := NormalizeName(combination.Identity)
	if err != nil {
		return err
	}

	currency, err := firstField(combination.Currency, "currency")
	if err != nil {
		return err
	}
	amount, err := firstField(combination.Amount, "amount")
	if err != nil {
		return err
	}

	conversion, err := Convert(currency, amount, table)
	if err != nil {
		return err
	}

	if conversion.Skipped() {
		run.Skipped++
		run.SkippedCurrencies[currency]++
		l.Warn().
			Err(conversion.Skip.Reason).
			Int("combination", combination.Index).
			Str("currency", currency).
			Msg("Combination skipped")
		r.events.LogEvent(logger.EventCombinationSkipped, run.RunID, "pipeline", map[string]interface{}{
			"combination": combination.Index,
			"currency":    currency,
		})
		if r.stats != nil {
			if err := r.stats.IncrementSkipStats(run.RunID, currency); err != nil {
				l.Warn().Err(err).Msg("Failed to update skip stats")
			}
		}
		return nil
	}

	tx, err := sink.Accept(ctx, name, currency, conversion.Volume)
	if err != nil {
		return err
	}

	run.Persisted++
	if tx.Tier == models.TierBig {
		run.BigCount++
	} else {
		run.UsualCount++
	}
	l.Debug().Int64("id", tx.ID).Str("tier", string(tx.Tier)).Msg(tx.String())
	r.events.LogEvent(logger.EventTransactionSaved, run.RunID, "sqlite", map[string]interface{}{
		"id":       tx.ID,
		"tier":     string(tx.Tier),
		"currency": tx.Currency,
		"volume":   tx.Volume.String(),
	})

	r.publish(run.RunID, tx, l)
	r.recordTier(run.RunID, tx, l)
	return nil
}

// publish отправляет событие о транзакции; запись уже зафиксирована, поэтому сбой не фатален
func (r *Runner) publish(runID string, tx *models.Transaction, l zerolog.Logger) {
	if r.publisher == nil {
		return
	}

	event := &models.TransactionEvent{
		EventID:   "evt_" + uuid.New().String(),
		EventType: "transaction_converted",
		Timestamp: r.now(),
		Data: models.TransactionEventData{
			RunID:    runID,
			ID:       tx.ID,
			Name:     tx.Name,
			Currency: tx.Currency,
			Volume:   tx.Volume,
			Tier:     tx.Tier,
		},
	}
	if err := r.publisher.SendTransactionEvent(event); err != nil {
		l.Warn().Err(err).Int64("id", tx.ID).Msg("Failed to publish transaction event")
		return
	}
	r.events.LogEvent(logger.EventKafkaSent, runID, "kafka", map[string]interface{}{
		"id":       tx.ID,
		"event_id": event.EventID,
	})
}

func (r *Runner) recordTier(runID string, tx *models.Transaction, l zerolog.Logger) {
	if r.stats == nil {
		return
	}
	if err := r.stats.IncrementTierStats(runID, tx.Tier); err != nil {
		l.Warn().Err(err).Int64("id", tx.ID).Msg("Failed to update tier stats")
		return
	}
	r.events.LogEvent(logger.EventRedisUpdated, runID, "redis", map[string]interface{}{
		"id":   tx.ID,
		"tier": string(tx.Tier),
	})
}

func (r *Runner) abort(
	ctx context.Context,
	store RunStore,
	run *models.RunSummary,
	l zerolog.Logger,
	cause error,
) (*models.RunSummary, error) {
	failedState := run.State
	run.State = models.StateAborted
	run.Status = models.RunStatusFailed
	run.Error = cause.Error()
	finished := r.now()
	run.FinishedAt = &finished

	l.Error().
		Err(cause).
		Str("failed_state", string(failedState)).
		Int("persisted", run.Persisted).
		Msg("Run aborted")
	r.events.LogEvent(logger.EventRunAborted, run.RunID, "pipeline", map[string]interface{}{
		"state": string(failedState),
		"error": cause.Error(),
	})

	// Итог сохраняется и при отменённом контексте
	if err := store.SaveRun(context.WithoutCancel(ctx), run); err != nil {
		l.Error().Err(err).Msg("Failed to save run summary")
	}
	return run, cause
}

func firstField(row []string, kind string) (string, error) {
	if len(row) == 0 {
		return "", fmt.Errorf("%w: empty %s row", models.ErrInputSource, kind)
	}
	return strings.TrimSpace(row[0]), nil
}
