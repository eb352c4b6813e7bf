package conversion

import (
	"github.com/rs/zerolog/log"

	"currency-transactions/internal/config"
	"currency-transactions/internal/kafka"
	"currency-transactions/internal/pipeline"
	"currency-transactions/internal/rates"
	"currency-transactions/internal/redis"
	"currency-transactions/internal/source"
)

// Dependencies содержит все зависимости запуска конвейера.
// Kafka и Redis необязательны: без них запуск идёт без событий и статистики.
type Dependencies struct {
	Source        source.Provider
	Rates         rates.Provider
	KafkaProducer kafka.Producer
	RedisClient   *redis.Client
}

// InitializeDependencies инициализирует все зависимости запуска
func InitializeDependencies(cfg *config.Config) *Dependencies {
	deps := &Dependencies{
		Source: source.NewDirectoryProvider(cfg),
		Rates:  rates.NewCBRClient(cfg),
	}

	if cfg.KafkaEnabled() {
		log.Info().Msg("Connecting to Kafka...")
		producer, err := kafka.NewProducer(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to create Kafka producer, transaction events disabled")
		} else {
			deps.KafkaProducer = producer
		}
	}

	if cfg.RedisEnabled() {
		log.Info().Msg("Connecting to Redis...")
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to connect to Redis, run stats disabled")
		} else {
			log.Info().Msg("Redis connection established")
			deps.RedisClient = redisClient
		}
	}

	return deps
}

// RunnerOptions возвращает опции конвейера для доступных зависимостей
func (d *Dependencies) RunnerOptions() []pipeline.Option {
	var opts []pipeline.Option
	if d.KafkaProducer != nil {
		opts = append(opts, pipeline.WithPublisher(d.KafkaProducer))
	}
	if d.RedisClient != nil {
		opts = append(opts, pipeline.WithStats(d.RedisClient))
	}
	return opts
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			return err
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			return err
		}
	}
	return nil
}
