package conversion

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"currency-transactions/internal/config"
	"currency-transactions/internal/logger"
)

// StartConversionService выполняет один запуск конвейера и завершает процесс.
// Неудачный запуск даёт код выхода 1.
func StartConversionService() {
	cfg := config.Load()

	_, logCloser, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}
	if !cfg.EnvFileLoaded {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	os.Exit(run(cfg, logCloser.Close))
}

func run(cfg *config.Config, closeLog func() error) int {
	defer closeLog()

	deps := InitializeDependencies(cfg)
	defer deps.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := ExecuteRun(ctx, cfg, deps)
	if err != nil {
		event := log.Error().Err(err)
		if summary != nil {
			event = event.Str("run_id", summary.RunID).Str("state", string(summary.State))
		}
		event.Msg("Conversion run failed")
		return 1
	}

	log.Info().
		Str("run_id", summary.RunID).
		Int("persisted", summary.Persisted).
		Int("skipped", summary.Skipped).
		Msg("Conversion run finished")
	return 0
}
