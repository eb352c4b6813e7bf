package rates

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
)

// Provider определяет источник курсов валют к рублю
type Provider interface {
	// FetchRates получает снимок курсов на текущий запуск
	FetchRates(ctx context.Context) (Table, error)
}

// Table - неизменяемый снимок курсов: код валюты -> курс к рублю
type Table struct {
	rates map[string]decimal.Decimal
}

// NewTable копирует переданные курсы в новую таблицу
func NewTable(rates map[string]decimal.Decimal) Table {
	copied := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		copied[code] = rate
	}
	return Table{rates: copied}
}

// Rate возвращает курс валюты и признак его наличия
func (t Table) Rate(code string) (decimal.Decimal, bool) {
	rate, ok := t.rates[code]
	return rate, ok
}

func (t Table) Len() int {
	return len(t.rates)
}

// Codes возвращает коды валют в алфавитном порядке
func (t Table) Codes() []string {
	codes := make([]string, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
