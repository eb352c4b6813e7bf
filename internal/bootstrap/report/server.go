package report

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"currency-transactions/internal/api/rest"
	"currency-transactions/internal/config"
	"currency-transactions/internal/logger"
)

// StartReportService запускает HTTP-сервис отчётов и, если задан интервал, планировщик запусков
func StartReportService() {
	cfg := config.Load()

	_, logCloser, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}
	defer logCloser.Close()
	if !cfg.EnvFileLoaded {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	// Инициализация зависимостей
	deps, err := InitializeDependencies(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize dependencies")
	}
	defer deps.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Server.RunInterval > 0 {
		if _, err := StartScheduler(ctx, cfg.Server.RunInterval, deps.ReportService); err != nil {
			log.Error().Err(err).Msg("Failed to start run scheduler")
		}
	}

	// Настройка REST API
	handlers := rest.NewHandlers(deps.ReportService)
	router := rest.SetupRouter(handlers)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.ReportPort),
		Handler: router,
	}

	go func() {
		log.Info().Int("port", cfg.Server.ReportPort).Msg("Report service starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Failed to start server")
			stop()
		}
	}()

	// Graceful shutdown
	<-ctx.Done()

	log.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
