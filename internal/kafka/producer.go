package kafka

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog/log"

	"currency-transactions/internal/config"
	"currency-transactions/internal/models"
)

type ProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

// NewSaramaConfig возвращает настройки синхронного продюсера
func NewSaramaConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	return config
}

func NewProducer(cfg *config.Config) (Producer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, NewSaramaConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Kafka producer created successfully")
	return NewProducerWithClient(producer, cfg.Kafka.TransactionTopic), nil
}

// NewProducerWithClient оборачивает готовый sarama.SyncProducer
func NewProducerWithClient(producer sarama.SyncProducer, topic string) Producer {
	return &ProducerImpl{
		producer: producer,
		topic:    topic,
	}
}

// SendTransactionEvent отправляет событие; ключ - run_id, чтобы события запуска шли в одну партицию по порядку
func (p *ProducerImpl) SendTransactionEvent(event *models.TransactionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.Data.RunID),
		Value:     sarama.ByteEncoder(data),
		Timestamp: time.Now(),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.EventType)},
			{Key: []byte("transaction_id"), Value: []byte(strconv.FormatInt(event.Data.ID, 10))},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	log.Debug().
		Str("topic", p.topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Str("event_id", event.EventID).
		Msg("Message sent")
	return nil
}

func (p *ProducerImpl) Close() error {
	return p.producer.Close()
}
