package kafka

import (
	"currency-transactions/internal/models"
)

// Producer определяет интерфейс для отправки событий о транзакциях в Kafka
type Producer interface {
	SendTransactionEvent(event *models.TransactionEvent) error

	Close() error
}
