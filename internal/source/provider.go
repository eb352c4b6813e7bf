package source

import (
	"context"

	"currency-transactions/internal/models"
)

// Provider определяет источник трёх наборов строк: клиенты, валюты, суммы
type Provider interface {
	Load(ctx context.Context) (*models.RecordSet, error)
}
