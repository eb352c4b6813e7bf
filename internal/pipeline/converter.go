package pipeline

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"currency-transactions/internal/models"
	"currency-transactions/internal/rates"
)

// BaseCurrency - валюта, в которой считается объём
const BaseCurrency = "RUB"

const volumePlaces = 2

// Skip описывает комбинацию, которую нельзя пересчитать
type Skip struct {
	Currency string
	Reason   error
}

// Conversion - результат пересчёта: либо объём, либо Skip
type Conversion struct {
	Volume decimal.Decimal
	Skip   *Skip
}

func (c Conversion) Skipped() bool {
	return c.Skip != nil
}

// Convert пересчитывает сумму в рубли.
// Рубли усекаются до целого (дробная часть отбрасывается),
// остальные валюты умножаются на курс и округляются до копеек половиной вверх.
// Валюта без курса даёт Skip, а не ошибку.
func Convert(currency, amount string, table rates.Table) (Conversion, error) {
	var rate decimal.Decimal
	if currency != BaseCurrency {
		var ok bool
		rate, ok = table.Rate(currency)
		if !ok {
			return Conversion{Skip: &Skip{
				Currency: currency,
				Reason:   fmt.Errorf("%w: %s", models.ErrUnsupportedCurrency, currency),
			}}, nil
		}
	}

	value, err := parseAmount(amount)
	if err != nil {
		return Conversion{}, err
	}

	if currency == BaseCurrency {
		return Conversion{Volume: value.Truncate(0)}, nil
	}
	// decimal.Round округляет половину от нуля; суммы неотрицательные, значит половина вверх
	return Conversion{Volume: value.Mul(rate).Round(volumePlaces)}, nil
}

func parseAmount(amount string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: malformed amount %q", models.ErrInputSource, amount)
	}
	if value.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: negative amount %q", models.ErrInputSource, amount)
	}
	return value, nil
}
