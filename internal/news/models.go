package news

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"globex/internal/types"
)

// Endpoints accepted by the proxy.
const (
	EndpointTopHeadlines = "top-headlines"
	EndpointEverything   = "everything"
)

// Query defaults mirror what the frontend sends when a control is left unset.
const (
	DefaultCategory = "general"
	DefaultCountry  = "us"
	DefaultSources  = "bbc-news"
	DefaultSearch   = "news"
)

var (
	// ErrNoProvider is returned when neither news API key is configured.
	ErrNoProvider = errors.New("No news API key found. Set GNEWS_API_KEY or NEWSAPI_API_KEY in .env")

	// ErrInvalidEndpoint is returned for an endpoint other than top-headlines or everything.
	ErrInvalidEndpoint = errors.New("invalid endpoint")
)

// topicMap maps frontend categories to GNews topics. GNews has no
// "general" topic, so it maps to "world".
var topicMap = map[string]string{
	"general":       "world",
	"business":      "business",
	"technology":    "technology",
	"sports":        "sports",
	"entertainment": "entertainment",
	"science":       "science",
	"health":        "health",
}

// GNewsTopic returns the GNews topic for a frontend category, defaulting
// to "world".
func GNewsTopic(category string) string {
	if topic, ok := topicMap[strings.ToLower(category)]; ok {
		return topic
	}
	return "world"
}

// Query selects which articles to fetch.
type Query struct {
	Endpoint string `form:"endpoint" json:"endpoint" example:"top-headlines"`
	Category string `form:"category" json:"category" example:"general"`
	Country  string `form:"country" json:"country" example:"us"`
	Sources  string `form:"sources" json:"sources" example:"bbc-news"`
	Q        string `form:"q" json:"q" example:"news"`
}

// Normalize fills defaults and validates the endpoint.
func (q Query) Normalize() (Query, error) {
	q.Endpoint = strings.TrimSpace(q.Endpoint)
	if q.Endpoint == "" {
		q.Endpoint = EndpointTopHeadlines
	}
	if q.Endpoint != EndpointTopHeadlines && q.Endpoint != EndpointEverything {
		return Query{}, fmt.Errorf("%w: %q", ErrInvalidEndpoint, q.Endpoint)
	}
	if q.Category = strings.TrimSpace(q.Category); q.Category == "" {
		q.Category = DefaultCategory
	}
	if q.Country = strings.ToLower(strings.TrimSpace(q.Country)); q.Country == "" {
		q.Country = DefaultCountry
	}
	if q.Sources = strings.TrimSpace(q.Sources); q.Sources == "" {
		q.Sources = DefaultSources
	}
	if q.Q = strings.TrimSpace(q.Q); q.Q == "" {
		q.Q = DefaultSearch
	}
	return q, nil
}

// canonical renders a normalized query as a stable cache key input.
func (q Query) canonical(provider string) string {
	v := url.Values{}
	v.Set("provider", provider)
	v.Set("endpoint", q.Endpoint)
	if q.Endpoint == EndpointTopHeadlines {
		v.Set("category", q.Category)
		v.Set("country", q.Country)
	} else {
		v.Set("sources", q.Sources)
		v.Set("q", q.Q)
	}
	return v.Encode()
}

// Feed is the NewsAPI-shaped payload returned to the frontend regardless of
// which upstream served it.
type Feed struct {
	Status       string    `json:"status" example:"ok"`
	TotalResults int       `json:"totalResults" example:"1"`
	Articles     []Article `json:"articles"`
}

type Article struct {
	Source      Source `json:"source"`
	Author      string `json:"author,omitempty"`
	Title       string `json:"title" example:"Gujarat sees record rainfall"`
	Description string `json:"description"`
	URL         string `json:"url" example:"https://example.com/article"`
	URLToImage  string `json:"urlToImage,omitempty"`
	PublishedAt string `json:"publishedAt" example:"2025-07-01T10:00:00Z"`
	Content     string `json:"content,omitempty"`
}

type Source struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name" example:"BBC News"`
}

// Items converts the feed's articles into placement items, preserving order.
func (f *Feed) Items() []types.Item {
	if f == nil {
		return nil
	}
	items := make([]types.Item, 0, len(f.Articles))
	for _, a := range f.Articles {
		item := types.Item{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			SourceName:  a.Source.Name,
		}
		if ts, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
			item.PublishedAt = ts
		}
		items = append(items, item)
	}
	return items
}

// UpstreamError reports a non-200 answer from a news provider.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s error: status %d", e.Provider, e.StatusCode)
}
