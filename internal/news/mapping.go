package news

import (
	"globex/internal/providers/gnews"
	"globex/internal/providers/newsapi"
)

const gnewsDefaultSource = "GNews"

// mapGNewsResponse normalizes a GNews payload to the NewsAPI shape.
func mapGNewsResponse(resp *gnews.ArticlesAPIResponse) *Feed {
	feed := &Feed{
		Status:       "ok",
		TotalResults: resp.TotalArticles,
		Articles:     make([]Article, 0, len(resp.Articles)),
	}
	if feed.TotalResults == 0 {
		feed.TotalResults = len(resp.Articles)
	}

	for _, a := range resp.Articles {
		name := a.Source.Name
		if name == "" {
			name = gnewsDefaultSource
		}
		feed.Articles = append(feed.Articles, Article{
			Source:      Source{Name: name},
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}
	return feed
}

// mapNewsAPIResponse copies a NewsAPI payload field for field.
func mapNewsAPIResponse(resp *newsapi.ArticlesAPIResponse) *Feed {
	feed := &Feed{
		Status:       resp.Status,
		TotalResults: resp.TotalResults,
		Articles:     make([]Article, 0, len(resp.Articles)),
	}
	for _, a := range resp.Articles {
		feed.Articles = append(feed.Articles, Article{
			Source:      Source{ID: a.Source.ID, Name: a.Source.Name},
			Author:      a.Author,
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			URLToImage:  a.URLToImage,
			PublishedAt: a.PublishedAt,
			Content:     a.Content,
		})
	}
	return feed
}
