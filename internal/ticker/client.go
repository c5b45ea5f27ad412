package ticker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Client fetches last-trade prices from a bitaps-style ticker endpoint.
// Price availability is best-effort: every failure mode degrades to a missing
// quote instead of an error, so a dead ticker never breaks a funds report.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a ticker client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// tickerResponse mirrors the relevant part of the ticker payload:
// {"data": {"last": 60123.5, ...}, ...}. Pointers distinguish an absent
// field from a zero price.
type tickerResponse struct {
	Data *struct {
		Last *decimal.Decimal `json:"last"`
	} `json:"data"`
}

// Last fetches the last trade price for a trading pair with a single request.
// The second return value reports whether a quote is available; transport
// errors, non-200 statuses and malformed payloads all yield false.
func (c *Client) Last(ctx context.Context, pair string) (decimal.Decimal, bool) {
	url := c.baseURL + "/" + pair

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Warn("ticker: building request failed", "pair", pair, "error", err)
		return decimal.Zero, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("ticker: request failed", "pair", pair, "error", err)
		return decimal.Zero, false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Warn("ticker: reading response failed", "pair", pair, "error", err)
		return decimal.Zero, false
	}

	if resp.StatusCode != http.StatusOK {
		slog.Warn("ticker: unexpected status", "pair", pair, "status", resp.StatusCode)
		return decimal.Zero, false
	}

	var parsed tickerResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		slog.Warn("ticker: malformed payload", "pair", pair, "error", err)
		return decimal.Zero, false
	}
	if parsed.Data == nil || parsed.Data.Last == nil {
		slog.Warn("ticker: payload missing data.last", "pair", pair)
		return decimal.Zero, false
	}

	return *parsed.Data.Last, true
}
