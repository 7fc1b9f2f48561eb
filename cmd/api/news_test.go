package main

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"globex/internal/news"
)

func TestGetNews(t *testing.T) {
	svc := &mockNewsService{feed: feedOf("Markets rally")}
	app := newTestApp(t, svc)

	w := app.do(t, http.MethodGet, "/api/news?category=business&country=gb", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}
	feed := decode[news.Feed](t, w)
	if feed.Status != "ok" || len(feed.Articles) != 1 || feed.Articles[0].Title != "Markets rally" {
		t.Errorf("unexpected feed: %+v", feed)
	}
	if q := svc.queries[0]; q.Category != "business" || q.Country != "gb" {
		t.Errorf("query = %+v", q)
	}
}

func TestGetNews_Errors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantError string
		wantBody  string
	}{
		{
			name:      "no provider",
			err:       news.ErrNoProvider,
			wantCode:  http.StatusInternalServerError,
			wantError: "No news API key found. Set GNEWS_API_KEY or NEWSAPI_API_KEY in .env",
		},
		{
			name:      "upstream status passes through",
			err:       &news.UpstreamError{Provider: news.ProviderGNews, StatusCode: http.StatusForbidden, Body: `{"errors":["bad token"]}`},
			wantCode:  http.StatusForbidden,
			wantError: "GNews error",
			wantBody:  `{"errors":["bad token"]}`,
		},
		{
			name:      "invalid endpoint",
			err:       news.ErrInvalidEndpoint,
			wantCode:  http.StatusBadRequest,
			wantError: "invalid endpoint",
		},
		{
			name:      "transport failure",
			err:       errors.New("dial tcp: timeout"),
			wantCode:  http.StatusInternalServerError,
			wantError: "dial tcp: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, &mockNewsService{err: tt.err})

			w := app.do(t, http.MethodGet, "/api/news", nil)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantCode)
			}
			got := decode[ErrorResponse](t, w)
			if got.Error != tt.wantError || got.Body != tt.wantBody {
				t.Errorf("response = %+v", got)
			}
		})
	}
}

func TestAskClaude(t *testing.T) {
	app := newTestApp(t, &mockNewsService{})

	for _, body := range []any{nil, AskRequest{Prompt: "Where is Gujarat?"}} {
		w := app.do(t, http.MethodPost, "/ask-claude", body)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d body %s", w.Code, w.Body.String())
		}
		got := decode[AskResponse](t, w)
		if len(got.Content) != 1 || got.Content[0].Text == "" {
			t.Fatalf("unexpected response: %+v", got)
		}
		if !strings.HasPrefix(got.Content[0].Text, "Location: New Delhi") {
			t.Errorf("reply = %q", got.Content[0].Text)
		}
	}
}
