package locate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"globex/internal/llm"
	"globex/internal/types"
)

// Service answers free-form location prompts and locates news items through
// a text model.
type Service interface {
	// Ask forwards prompt to the model and returns the raw reply text
	Ask(ctx context.Context, prompt string) (string, error)

	// Locate asks the model where item takes place
	Locate(ctx context.Context, item types.Item, countryHint string) (*Location, error)
}

type locateService struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewLocateService creates a new locate service backed by provider.
func NewLocateService(provider llm.Provider, logger *slog.Logger) Service {
	return &locateService{
		provider: provider,
		logger:   logger.With("component", "locate-service"),
	}
}

func (s *locateService) Ask(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		prompt = DefaultPrompt
	}

	s.logger.Debug("asking model", "provider", s.provider.Name(), "prompt_length", len(prompt))

	reply, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("model request failed", "provider", s.provider.Name(), "error", err)
		return "", fmt.Errorf("failed to ask %s: %w", s.provider.Name(), err)
	}
	return reply, nil
}

func (s *locateService) Locate(ctx context.Context, item types.Item, countryHint string) (*Location, error) {
	reply, err := s.Ask(ctx, BuildPrompt(item, countryHint))
	if err != nil {
		return nil, err
	}

	loc, err := ParseReply(reply)
	if err != nil {
		s.logger.Warn("could not parse model reply", "title", item.Title, "error", err)
		return nil, fmt.Errorf("failed to parse reply for %q: %w", item.Title, err)
	}

	s.logger.Debug("located item",
		"title", item.Title,
		"location", loc.Name,
		"latitude", loc.Point.Latitude,
		"longitude", loc.Point.Longitude,
	)
	return &loc, nil
}
