package newsapi

// ArticlesAPIResponse is the payload of the top-headlines and everything
// endpoints. The proxy serves this shape to the frontend for every provider.
type ArticlesAPIResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Code         string    `json:"code,omitempty"`
	Message      string    `json:"message,omitempty"`
}

type Article struct {
	Source      Source `json:"source"`
	Author      string `json:"author,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage,omitempty"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content,omitempty"`
}

type Source struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}
