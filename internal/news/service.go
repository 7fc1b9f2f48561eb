package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"globex/internal/cache"
	"globex/internal/providers"
	"globex/internal/providers/gnews"
	"globex/internal/providers/newsapi"
	"globex/internal/ratelimit"
)

// Provider names as reported in upstream errors.
const (
	ProviderGNews   = "GNews"
	ProviderNewsAPI = "NewsAPI"
)

// GNewsProvider fetches articles from GNews.
type GNewsProvider interface {
	TopHeadlines(ctx context.Context, topic, country string) (*gnews.ArticlesAPIResponse, error)
	Search(ctx context.Context, query string) (*gnews.ArticlesAPIResponse, error)
}

// NewsAPIProvider fetches articles from NewsAPI.
type NewsAPIProvider interface {
	TopHeadlines(ctx context.Context, country, category string) (*newsapi.ArticlesAPIResponse, error)
	Everything(ctx context.Context, sources string) (*newsapi.ArticlesAPIResponse, error)
}

// Service provides news feeds.
type Service interface {
	GetNews(ctx context.Context, query Query) (*Feed, error)
}

// Options configures the real providers.
type Options struct {
	GNewsAPIKey       string
	NewsAPIKey        string
	Timeout           time.Duration
	CacheTTL          time.Duration
	RequestsPerSecond float64
	Burst             int
}

type newsService struct {
	gnews    GNewsProvider
	newsapi  NewsAPIProvider
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewNewsService creates a news service with real provider clients for
// every configured API key.
func NewNewsService(opts Options, logger *slog.Logger) Service {
	limiter := ratelimit.NewLimiter(opts.RequestsPerSecond, opts.Burst)

	var (
		gnewsProvider   GNewsProvider
		newsapiProvider NewsAPIProvider
	)
	if opts.GNewsAPIKey != "" {
		gnewsProvider = gnews.NewClient(opts.GNewsAPIKey, opts.Timeout, limiter, logger)
	}
	if opts.NewsAPIKey != "" {
		newsapiProvider = newsapi.NewClient(opts.NewsAPIKey, opts.Timeout, limiter, logger)
	}

	var c cache.Cache = cache.Noop{}
	if opts.CacheTTL > 0 {
		c = cache.NewMemoryCache(opts.CacheTTL, 2*opts.CacheTTL)
	}

	return NewNewsServiceWithProviders(gnewsProvider, newsapiProvider, c, opts.CacheTTL, logger)
}

// NewNewsServiceWithProviders creates a news service with custom providers.
// A nil provider counts as unconfigured. This is useful for testing with
// mock providers.
func NewNewsServiceWithProviders(
	gnewsProvider GNewsProvider,
	newsapiProvider NewsAPIProvider,
	c cache.Cache,
	cacheTTL time.Duration,
	logger *slog.Logger,
) Service {
	if c == nil {
		c = cache.Noop{}
	}
	return &newsService{
		gnews:    gnewsProvider,
		newsapi:  newsapiProvider,
		cache:    c,
		cacheTTL: cacheTTL,
		logger:   logger.With("component", "news-service"),
	}
}

// GetNews fetches a feed, preferring GNews and falling back to NewsAPI.
func (s *newsService) GetNews(ctx context.Context, query Query) (*Feed, error) {
	q, err := query.Normalize()
	if err != nil {
		return nil, err
	}

	var provider string
	switch {
	case s.gnews != nil:
		provider = ProviderGNews
	case s.newsapi != nil:
		provider = ProviderNewsAPI
	default:
		return nil, ErrNoProvider
	}

	key := cache.Key("news", q.canonical(provider))
	if feed, ok := s.cached(key); ok {
		s.logger.Debug("serving cached feed", "provider", provider, "endpoint", q.Endpoint)
		return feed, nil
	}

	s.logger.Debug("fetching feed",
		"provider", provider,
		"endpoint", q.Endpoint,
		"category", q.Category,
		"country", q.Country,
	)

	var feed *Feed
	if provider == ProviderGNews {
		feed, err = s.fetchGNews(ctx, q)
	} else {
		feed, err = s.fetchNewsAPI(ctx, q)
	}
	if err != nil {
		var statusErr *providers.StatusError
		if errors.As(err, &statusErr) {
			return nil, &UpstreamError{Provider: provider, StatusCode: statusErr.StatusCode, Body: statusErr.Body}
		}
		s.logger.Error("failed to fetch feed", "provider", provider, "error", err)
		return nil, fmt.Errorf("failed to fetch %s feed: %w", provider, err)
	}

	s.store(key, feed)

	s.logger.Debug("fetched feed", "provider", provider, "articles", len(feed.Articles))
	return feed, nil
}

func (s *newsService) fetchGNews(ctx context.Context, q Query) (*Feed, error) {
	var (
		resp *gnews.ArticlesAPIResponse
		err  error
	)
	if q.Endpoint == EndpointEverything {
		// GNews has no source filter; everything becomes a search.
		resp, err = s.gnews.Search(ctx, q.Q)
	} else {
		resp, err = s.gnews.TopHeadlines(ctx, GNewsTopic(q.Category), q.Country)
	}
	if err != nil {
		return nil, err
	}
	return mapGNewsResponse(resp), nil
}

func (s *newsService) fetchNewsAPI(ctx context.Context, q Query) (*Feed, error) {
	var (
		resp *newsapi.ArticlesAPIResponse
		err  error
	)
	if q.Endpoint == EndpointEverything {
		resp, err = s.newsapi.Everything(ctx, q.Sources)
	} else {
		resp, err = s.newsapi.TopHeadlines(ctx, q.Country, q.Category)
	}
	if err != nil {
		return nil, err
	}
	return mapNewsAPIResponse(resp), nil
}

func (s *newsService) cached(key string) (*Feed, bool) {
	raw, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	var feed Feed
	if err := json.Unmarshal(raw, &feed); err != nil {
		s.logger.Warn("dropping unreadable cache entry", "error", err)
		_ = s.cache.Delete(key)
		return nil, false
	}
	return &feed, true
}

func (s *newsService) store(key string, feed *Feed) {
	if s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(feed)
	if err != nil {
		s.logger.Warn("failed to encode feed for cache", "error", err)
		return
	}
	_ = s.cache.Set(key, raw, s.cacheTTL)
}
