package pipeline

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"currency-transactions/internal/models"
)

// Store - хранилище, в которое передаются классифицированные транзакции.
// Каждая запись фиксируется отдельно в таблице своей категории.
type Store interface {
	SaveTransaction(ctx context.Context, runID string, tx *models.Transaction) error
}

// Classify: Big строго больше 1000, 1000 и меньше - Usual
func Classify(volume decimal.Decimal) models.Tier {
	if volume.GreaterThan(models.BigTierThreshold) {
		return models.TierBig
	}
	return models.TierUsual
}

// Sink назначает порядковые номера, классифицирует и сохраняет транзакции одного запуска
type Sink struct {
	store  Store
	runID  string
	lastID int64
}

func NewSink(store Store, runID string) *Sink {
	return &Sink{store: store, runID: runID}
}

// Accept сохраняет транзакцию под следующим номером.
// Номер расходуется только при успешном сохранении.
func (s *Sink) Accept(ctx context.Context, name, currency string, volume decimal.Decimal) (*models.Transaction, error) {
	tx := &models.Transaction{
		ID:       s.lastID + 1,
		Name:     name,
		Currency: currency,
		Volume:   volume,
		Tier:     Classify(volume),
	}

	if err := s.store.SaveTransaction(ctx, s.runID, tx); err != nil {
		return nil, fmt.Errorf("%w: transaction %d: %w", models.ErrPersistence, tx.ID, err)
	}

	s.lastID = tx.ID
	return tx, nil
}

// LastID возвращает номер последней сохранённой транзакции
func (s *Sink) LastID() int64 {
	return s.lastID
}
