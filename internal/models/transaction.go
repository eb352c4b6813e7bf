package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Tier - категория транзакции по рублёвому объёму
type Tier string

const (
	TierUsual Tier = "usual"
	TierBig   Tier = "big"
)

// BigTierThreshold - объём, строго выше которого транзакция считается крупной
var BigTierThreshold = decimal.NewFromInt(1000)

// ParseTier разбирает строковое представление категории
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierUsual, TierBig:
		return Tier(s), nil
	}
	return "", fmt.Errorf("unknown tier %q", s)
}

// Transaction представляет классифицированную транзакцию одного запуска
type Transaction struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	Volume   decimal.Decimal `json:"volume"`
	Tier     Tier            `json:"tier"`
}

func (t *Transaction) String() string {
	return fmt.Sprintf("Перевод на сумму %s %s совершил %s", t.Volume.String(), t.Currency, t.Name)
}

// StoredTransaction представляет транзакцию, прочитанную из хранилища
type StoredTransaction struct {
	Transaction
	RunID     string    `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordSet - три упорядоченных набора строк из источника
type RecordSet struct {
	Identities [][]string
	Currencies [][]string
	Amounts    [][]string
}

// TransactionEvent представляет событие сохранённой транзакции в Kafka
type TransactionEvent struct {
	EventID   string               `json:"event_id"`
	EventType string               `json:"event_type"`
	Timestamp time.Time            `json:"timestamp"`
	Data      TransactionEventData `json:"data"`
}

// TransactionEventData представляет данные транзакции в Kafka
type TransactionEventData struct {
	RunID    string          `json:"run_id"`
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	Volume   decimal.Decimal `json:"volume"`
	Tier     Tier            `json:"tier"`
}
