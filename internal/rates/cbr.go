package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"currency-transactions/internal/config"
	"currency-transactions/internal/models"
)

type valute struct {
	CharCode string           `json:"CharCode"`
	Nominal  int              `json:"Nominal"`
	Value    *decimal.Decimal `json:"Value"`
}

type dailyResponse struct {
	Date   string            `json:"Date"`
	Valute map[string]valute `json:"Valute"`
}

// CBRClient получает ежедневные курсы ЦБ РФ в формате daily_json
type CBRClient struct {
	url        string
	httpClient *http.Client
}

// NewCBRClient создает клиента сервиса курсов. Таймаут 0 означает его отсутствие.
func NewCBRClient(cfg *config.Config) *CBRClient {
	return NewCBRClientWithHTTP(cfg.Rates.APIURL, &http.Client{Timeout: cfg.Rates.Timeout})
}

func NewCBRClientWithHTTP(url string, httpClient *http.Client) *CBRClient {
	return &CBRClient{url: url, httpClient: httpClient}
}

// FetchRates выполняет один GET-запрос и строит таблицу курсов по полю Valute
func (c *CBRClient) FetchRates(ctx context.Context) (Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Table{}, fmt.Errorf("%w: failed to build request: %v", models.ErrExternalService, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Table{}, fmt.Errorf("%w: rates request failed: %v", models.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Table{}, fmt.Errorf("%w: rates service responded with status %d", models.ErrExternalService, resp.StatusCode)
	}

	var body dailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Table{}, fmt.Errorf("%w: failed to decode rates: %v", models.ErrExternalService, err)
	}
	if body.Valute == nil {
		return Table{}, fmt.Errorf("%w: response has no Valute field", models.ErrExternalService)
	}

	result := make(map[string]decimal.Decimal, len(body.Valute))
	for code, v := range body.Valute {
		if v.Value == nil {
			return Table{}, fmt.Errorf("%w: currency %s has no Value", models.ErrExternalService, code)
		}
		if !v.Value.IsPositive() {
			return Table{}, fmt.Errorf("%w: currency %s has non-positive Value %s", models.ErrExternalService, code, v.Value)
		}
		if v.Nominal > 1 {
			log.Debug().Str("currency", code).Int("nominal", v.Nominal).Msg("Rate is published per nominal, using Value as is")
		}
		result[code] = *v.Value
	}

	log.Info().Str("date", body.Date).Int("currencies", len(result)).Msg("Rates fetched")
	return NewTable(result), nil
}
