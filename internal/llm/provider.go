package llm

import (
	"context"
	"time"
)

// Replies returned when no model answer is available. Both follow the
// "Key: value" line format the location parser expects.
const (
	FallbackReply = "Location: New Delhi, India\nLatitude: 28.6139\nLongitude: 77.2090\nReasoning: Fallback reply."
	DemoReply     = "Location: New Delhi, India\nLatitude: 28.6139\nLongitude: 77.2090\nReasoning: Demo fallback without LLM key."
)

// Provider sends a single user prompt to a text model and returns its reply.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete returns the model's reply to prompt
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config holds LLM provider configuration
type Config struct {
	// APIKey for the OpenRouter gateway; empty selects the demo provider
	APIKey string

	// BaseURL of the OpenAI-compatible endpoint
	BaseURL string

	// Model name as understood by the gateway
	Model string

	// MaxTokens limits the response length
	MaxTokens int

	// Timeout for a single completion request
	Timeout time.Duration
}

const (
	DefaultBaseURL   = "https://openrouter.ai/api/v1"
	DefaultModel     = "google/gemini-flash-1.5"
	DefaultMaxTokens = 250
	DefaultTimeout   = 30 * time.Second
)

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Model:     DefaultModel,
		MaxTokens: DefaultMaxTokens,
		Timeout:   DefaultTimeout,
	}
}
