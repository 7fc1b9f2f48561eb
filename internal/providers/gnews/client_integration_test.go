//go:build integration

package gnews

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"
)

func TestClient_TopHeadlines_Integration(t *testing.T) {
	key := os.Getenv("GNEWS_API_KEY")
	if key == "" {
		t.Skip("GNEWS_API_KEY not set")
	}

	client := NewClient(key, 15*time.Second, nil, discardLogger())

	t.Logf("Making API call to GNews top-headlines...")
	resp, err := client.TopHeadlines(context.Background(), "world", "us")
	if err != nil {
		t.Fatalf("Failed to get top headlines: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if len(resp.Articles) == 0 {
		t.Error("Expected at least one article")
	}
}
