package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Client provides access to the quote provider's REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new provider client.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithAPIKey sets the provider API key.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// APIError represents an error response from the provider.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider api error %d: %s", e.StatusCode, e.Message)
}

// GetDailyBars fetches daily bars for a symbol over the given range
// (e.g. "6mo"). Bars are returned in chronological order.
func (c *Client) GetDailyBars(ctx context.Context, symbol, rangeStr string) ([]Bar, error) {
	query := url.Values{}
	query.Set("interval", "1d")
	query.Set("range", rangeStr)

	var wire chartWire
	if err := c.get(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), query, &wire); err != nil {
		return nil, fmt.Errorf("get daily bars %s: %w", symbol, err)
	}
	if wire.Chart.Error != nil {
		return nil, fmt.Errorf("get daily bars %s: %s: %s",
			symbol, wire.Chart.Error.Code, wire.Chart.Error.Description)
	}

	return wire.toBars(), nil
}

// GetLatestQuote fetches the most recent single daily bar for a symbol.
// Returns ok=false when the provider responds successfully but has no
// quotes for the symbol.
func (c *Client) GetLatestQuote(ctx context.Context, symbol string) (Bar, bool, error) {
	bars, err := c.GetDailyBars(ctx, symbol, "1d")
	if err != nil {
		return Bar{}, false, err
	}
	if len(bars) == 0 {
		return Bar{}, false, nil
	}
	return bars[len(bars)-1], true, nil
}

// get performs a GET request and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
