package pipeline

import (
	"fmt"
	"iter"

	"currency-transactions/internal/models"
)

// Combination - одна тройка строк декартова произведения
type Combination struct {
	Index    int
	Identity []string
	Currency []string
	Amount   []string
}

// Combinator перебирает все тройки (клиент, валюта, сумма).
// Быстрее всего меняется сумма, затем валюта, затем клиент.
type Combinator struct {
	identities [][]string
	currencies [][]string
	amounts    [][]string
}

func NewCombinator(records *models.RecordSet) (*Combinator, error) {
	if records == nil {
		return nil, fmt.Errorf("%w: no records", models.ErrInputSource)
	}
	sets := []struct {
		name string
		rows [][]string
	}{
		{"identities", records.Identities},
		{"currencies", records.Currencies},
		{"amounts", records.Amounts},
	}
	for _, set := range sets {
		if len(set.rows) == 0 {
			return nil, fmt.Errorf("%w: %s set is empty", models.ErrInputSource, set.name)
		}
	}

	return &Combinator{
		identities: records.Identities,
		currencies: records.Currencies,
		amounts:    records.Amounts,
	}, nil
}

// Count возвращает число комбинаций без перебора
func (c *Combinator) Count() int {
	return len(c.identities) * len(c.currencies) * len(c.amounts)
}

// All возвращает последовательность комбинаций; её можно перебирать повторно
// и каждый раз получать тот же порядок.
func (c *Combinator) All() iter.Seq[Combination] {
	return func(yield func(Combination) bool) {
		index := 0
		for _, identity := range c.identities {
			for _, currency := range c.currencies {
				for _, amount := range c.amounts {
					if !yield(Combination{
						Index:    index,
						Identity: identity,
						Currency: currency,
						Amount:   amount,
					}) {
						return
					}
					index++
				}
			}
		}
	}
}
