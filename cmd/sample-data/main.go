package main

import (
	"flag"

	"github.com/rs/zerolog/log"

	"currency-transactions/internal/config"
	"currency-transactions/internal/generator"
	"currency-transactions/internal/logger"
)

func main() {
	clients := flag.Int("clients", 10, "number of clients")
	amounts := flag.Int("amounts", 10, "number of amounts")
	seed := flag.Int64("seed", 0, "random seed, 0 - current time")
	flag.Parse()

	cfg := config.Load()
	// Только консоль: лог-файл принадлежит сервисам
	if _, _, err := logger.New(config.LogConfig{Level: cfg.Log.Level}); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}
	if !cfg.EnvFileLoaded {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	gen := generator.NewSourceGenerator()
	if *seed != 0 {
		gen = generator.NewSourceGeneratorWithSeed(*seed)
	}

	records := gen.GenerateRecordSet(*clients, *amounts)
	if err := generator.WriteFiles(cfg.Source, records); err != nil {
		log.Fatal().Err(err).Msg("Failed to write sample data")
	}

	log.Info().
		Str("dir", cfg.Source.Dir).
		Int("clients", len(records.Identities)).
		Int("currencies", len(records.Currencies)).
		Int("amounts", len(records.Amounts)).
		Msg("Sample data written")
}
