// Package fetcher retrieves professor pages through a scraping proxy.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
)

// DefaultBaseURL is the scraping proxy endpoint.
const DefaultBaseURL = "http://api.scraperapi.com"

// maxBodySize caps the page body read to protect against a runaway upstream.
const maxBodySize = 8 * 1024 * 1024 // 8 MB

// Config holds the fetcher settings.
type Config struct {
	// APIKey authenticates against the scraping proxy. When empty, pages are
	// fetched directly without the proxy.
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// Client fetches page markup with a bounded timeout and no retries.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	logger     *zap.Logger
}

// New creates a page fetcher.
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// FetchPage retrieves the markup of pageURL. A transport error, timeout, or
// non-success status fails with domain.ErrUpstreamFetch; the call is made
// exactly once.
func (c *Client) FetchPage(ctx context.Context, pageURL string) (string, error) {
	target := pageURL
	if c.apiKey != "" {
		q := url.Values{}
		q.Set("api_key", c.apiKey)
		q.Set("url", pageURL)
		target = c.baseURL + "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", domain.ErrUpstreamFetch, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUpstreamFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: upstream returned status %d", domain.ErrUpstreamFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", domain.ErrUpstreamFetch, err)
	}

	c.logger.Debug("page fetched",
		zap.String("url", pageURL),
		zap.Int("bytes", len(body)),
		zap.Duration("latency", time.Since(start)),
	)

	return string(body), nil
}
