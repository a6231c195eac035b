package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public CoinGecko API. Point BaseURL at a proxy or
// a compatible mock for testing.
const DefaultBaseURL = "https://api.coingecko.com"

// Client fetches snapshots from a CoinGecko-compatible markets endpoint.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// coinMarket is the subset of the /coins/markets response we consume.
type coinMarket struct {
	ID            string  `json:"id"`
	CurrentPrice  float64 `json:"current_price"`
	High24h       float64 `json:"high_24h"`
	Low24h        float64 `json:"low_24h"`
	PriceChange24 float64 `json:"price_change_percentage_24h"`
	TotalVolume   float64 `json:"total_volume"`
}

// GetSnapshot fetches the current market snapshot for one symbol
// (a CoinGecko coin id, e.g. "bitcoin").
func (c *Client) GetSnapshot(ctx context.Context, symbol string) (Snapshot, error) {
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	u, err := url.Parse(base)
	if err != nil {
		return Snapshot{}, err
	}
	u.Path = "/api/v3/coins/markets"

	q := u.Query()
	q.Set("vs_currency", "usd")
	q.Set("ids", symbol)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Snapshot{}, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return Snapshot{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return Snapshot{}, fmt.Errorf("markets http %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var markets []coinMarket
	if err := json.NewDecoder(resp.Body).Decode(&markets); err != nil {
		return Snapshot{}, fmt.Errorf("decode markets response: %w", err)
	}
	if len(markets) == 0 {
		return Snapshot{}, fmt.Errorf("no market data for %q", symbol)
	}

	m := markets[0]
	return Snapshot{
		Symbol:       symbol,
		Current:      m.CurrentPrice,
		High24h:      m.High24h,
		Low24h:       m.Low24h,
		Change24hPct: m.PriceChange24,
		Volume24h:    m.TotalVolume,
		Time:         time.Now().UTC(),
	}, nil
}
