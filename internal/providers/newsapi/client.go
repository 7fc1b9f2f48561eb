package newsapi

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

// API Docs: https://newsapi.org/docs/endpoints
// Sample requests:
// - https://newsapi.org/v2/top-headlines?country=us&category=general&pageSize=50&apiKey=KEY
// - https://newsapi.org/v2/everything?sources=bbc-news&pageSize=50&sortBy=publishedAt&apiKey=KEY
const (
	baseURL = "https://newsapi.org"

	PageSize = 50
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
		logger:     logger.With("component", "newsapi-client"),
	}
}

// TopHeadlines fetches headlines for a country and category.
func (c *Client) TopHeadlines(ctx context.Context, country, category string) (*ArticlesAPIResponse, error) {
	q := url.Values{}
	q.Set("country", country)
	q.Set("category", category)
	return c.get(ctx, "/v2/top-headlines", q)
}

// Everything fetches the latest articles from a comma-separated list of
// source ids.
func (c *Client) Everything(ctx context.Context, sources string) (*ArticlesAPIResponse, error) {
	q := url.Values{}
	q.Set("sources", sources)
	q.Set("sortBy", "publishedAt")
	return c.get(ctx, "/v2/everything", q)
}

func (c *Client) get(ctx context.Context, path string, q url.Values) (*ArticlesAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = path
	q.Set("pageSize", strconv.Itoa(PageSize))
	q.Set("apiKey", c.apiKey)
	u.RawQuery = q.Encode()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, u.String()); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	c.logger.Debug("fetching NewsAPI articles", "path", path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch NewsAPI articles", "path", path, "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("NewsAPI returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, &providers.StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var apiResp ArticlesAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode NewsAPI response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched NewsAPI articles",
		"path", path,
		"article_count", len(apiResp.Articles),
		"total_results", apiResp.TotalResults,
	)

	return &apiResp, nil
}
