package currency

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/safarnama/safarnama/internal/app/models"
)

const defaultBaseURL = "https://open.er-api.com"

// RateSource fetches a conversion-rate table for a base currency.
type RateSource interface {
	Rates(ctx context.Context, base string) (models.ExchangeRates, error)
}

// Client is a thin wrapper over the open.er-api.com daily rate feed. The
// feed updates once a day, so responses are cached for an hour.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      *cache.Cache
	logger     *zap.Logger
}

var _ RateSource = (*Client)(nil)

func NewClient(logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		cache:      cache.New(time.Hour, 10*time.Minute),
		logger:     logger,
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(baseURL string, logger *zap.Logger) *Client {
	c := NewClient(logger)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

func (c *Client) Rates(ctx context.Context, base string) (models.ExchangeRates, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		base = "INR"
	}
	if cached, ok := c.cache.Get(base); ok {
		return cached.(models.ExchangeRates), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v6/latest/"+base, nil)
	if err != nil {
		return models.ExchangeRates{}, errors.Wrap(err, "building exchange request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.ExchangeRates{}, errors.Wrap(err, "exchange request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.ExchangeRates{}, errors.Errorf("exchange bad status: %s", resp.Status)
	}

	var payload struct {
		Result   string             `json:"result"`
		BaseCode string             `json:"base_code"`
		Rates    map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.ExchangeRates{}, errors.Wrap(err, "decoding exchange response")
	}
	if payload.Result != "success" || len(payload.Rates) == 0 {
		return models.ExchangeRates{}, errors.Errorf("exchange feed returned %q", payload.Result)
	}

	rates := models.ExchangeRates{
		Base:      payload.BaseCode,
		Rates:     payload.Rates,
		FetchedAt: time.Now().UTC(),
	}
	c.cache.Set(base, rates, cache.DefaultExpiration)
	c.logger.Debug("fetched exchange rates", zap.String("base", base),
		zap.Int("count", len(payload.Rates)))
	return rates, nil
}

// Convert applies a rate table to an amount. Unknown target currencies
// return an error rather than a silent zero.
func Convert(rates models.ExchangeRates, amount float64, target string) (float64, error) {
	target = strings.ToUpper(strings.TrimSpace(target))
	rate, ok := rates.Rates[target]
	if !ok {
		return 0, errors.Errorf("no rate from %s to %s", rates.Base, target)
	}
	return amount * rate, nil
}

// FormatINR renders an amount in Indian digit grouping, e.g. "₹1,23,456".
func FormatINR(amount float64) string {
	p := message.NewPrinter(language.MustParse("en-IN"))
	return p.Sprintf("₹%.0f", amount)
}
