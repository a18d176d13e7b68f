package ratefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	portsprov "github.com/tradetrack/tradetrack_backend/internal/core/ports/providers"
)

// DefaultTimeout bounds every provider request so a slow upstream cannot
// stall rate resolution past the fallback path.
const DefaultTimeout = 10 * time.Second

// Client fetches latest FX rates from an exchangerate-api style endpoint
// (GET {baseURL}/{baseCurrency} returning {"rates": {"XXX": 1.23, ...}}).
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// ClientOption is a functional option for configuring the rate feed client.
type ClientOption func(*Client)

// WithTimeout overrides the request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient creates a new rate feed client for the given base URL.
func NewClient(baseURL string, options ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

var _ portsprov.RateProvider = (*Client)(nil)

// FetchLatestRates returns the latest conversion rates for the base currency.
// Any transport error, non-200 status or malformed body is returned as an
// error for the caller's fallback chain to absorb.
func (c *Client) FetchLatestRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, strings.ToUpper(baseCurrency))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("rate provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Base  string                     `json:"base"`
		Rates map[string]decimal.Decimal `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode rate response: %w", err)
	}
	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("rate provider response contained no rates for base %s", baseCurrency)
	}

	return payload.Rates, nil
}
