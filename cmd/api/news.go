package main

import (
	"errors"
	"net/http"

	"globex/internal/news"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is returned by every endpoint on failure. Body carries the
// upstream response when an external API refused the request.
type ErrorResponse struct {
	Error string `json:"error" example:"GNews error"`
	Body  string `json:"body,omitempty"`
}

// handleGetNews godoc
// @Summary Get news articles
// @Description Proxy to GNews (preferred) or NewsAPI. The response always uses the NewsAPI article shape.
// @Tags news
// @Produce json
// @Param endpoint query string false "top-headlines or everything" default(top-headlines)
// @Param category query string false "News category" default(general)
// @Param country query string false "Two-letter country code" default(us)
// @Param sources query string false "NewsAPI sources for the everything endpoint" default(bbc-news)
// @Param q query string false "Search query for GNews everything" default(news)
// @Success 200 {object} news.Feed
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/news [get]
func (app *App) handleGetNews(c *gin.Context) {
	var query news.Query
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	feed, err := app.svc.news.GetNews(c.Request.Context(), query)
	if err != nil {
		var upstream *news.UpstreamError
		if errors.As(err, &upstream) {
			app.svc.metrics.UpstreamError(upstream.Provider)
		}
		app.respondNewsError(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

// respondNewsError maps news service errors to HTTP responses
func (app *App) respondNewsError(c *gin.Context, err error) {
	var upstream *news.UpstreamError
	switch {
	case errors.As(err, &upstream):
		app.logger.Warn("news upstream refused request",
			"provider", upstream.Provider,
			"status", upstream.StatusCode,
		)
		c.JSON(upstream.StatusCode, ErrorResponse{Error: upstream.Provider + " error", Body: upstream.Body})
	case errors.Is(err, news.ErrInvalidEndpoint):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, news.ErrNoProvider):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	default:
		app.logger.Error("failed to fetch news", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
