package types

import (
	"strings"
	"time"
)

// Item is a single news article as handed to the placement engine.
type Item struct {
	Title       string    `json:"title" example:"Gujarat sees record rainfall"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url" example:"https://example.com/article"`
	SourceName  string    `json:"source,omitempty" example:"BBC News"`
	PublishedAt time.Time `json:"publishedAt,omitempty"`
}

// Text returns the searchable text of the item: title and description,
// case-folded.
func (i Item) Text() string {
	return strings.ToLower(i.Title + " " + i.Description)
}

// Valid reports whether the item carries enough content to be placed.
func (i Item) Valid() bool {
	return strings.TrimSpace(i.Title) != ""
}
