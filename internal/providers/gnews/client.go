package gnews

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"globex/internal/providers"
	"globex/internal/ratelimit"
)

// API Docs: https://gnews.io/docs/v4
// Sample requests:
// - https://gnews.io/api/v4/top-headlines?topic=world&country=us&lang=en&max=50&token=KEY
// - https://gnews.io/api/v4/search?q=news&lang=en&max=50&token=KEY
const (
	baseURL = "https://gnews.io"

	// MaxArticles is the largest page GNews serves.
	MaxArticles = 50
	language    = "en"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *ratelimit.Limiter
	logger     *slog.Logger
}

func NewClient(apiKey string, timeout time.Duration, limiter *ratelimit.Limiter, logger *slog.Logger) *Client {
	return NewClientWithBaseURL(baseURL, apiKey, timeout, limiter, logger)
}

// NewClientWithBaseURL creates a client against a custom endpoint.
// This is useful for testing against a local server.
func NewClientWithBaseURL(base, apiKey string, timeout time.Duration, limiter *ratelimit.Limiter, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    base,
		apiKey:     apiKey,
		limiter:    limiter,
		logger:     logger.With("component", "gnews-client"),
	}
}

// TopHeadlines fetches the top headlines for a GNews topic and country.
func (c *Client) TopHeadlines(ctx context.Context, topic, country string) (*ArticlesAPIResponse, error) {
	q := url.Values{}
	q.Set("topic", topic)
	q.Set("country", country)
	return c.get(ctx, "/api/v4/top-headlines", q)
}

// Search fetches articles matching a free-text query.
func (c *Client) Search(ctx context.Context, query string) (*ArticlesAPIResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	return c.get(ctx, "/api/v4/search", q)
}

func (c *Client) get(ctx context.Context, path string, q url.Values) (*ArticlesAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = path
	q.Set("lang", language)
	q.Set("max", strconv.Itoa(MaxArticles))
	q.Set("token", c.apiKey)
	u.RawQuery = q.Encode()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, u.String()); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	c.logger.Debug("fetching GNews articles", "path", path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch GNews articles", "path", path, "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("GNews API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, &providers.StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var apiResp ArticlesAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode GNews response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched GNews articles",
		"path", path,
		"article_count", len(apiResp.Articles),
		"total_articles", apiResp.TotalArticles,
	)

	return &apiResp, nil
}
