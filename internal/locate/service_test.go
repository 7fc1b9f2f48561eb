package locate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"globex/internal/types"
)

type mockProvider struct {
	reply   string
	err     error
	prompts []string
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Complete(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.reply, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocateService_Ask(t *testing.T) {
	provider := &mockProvider{reply: "ok"}
	svc := NewLocateService(provider, discardLogger())

	got, err := svc.Ask(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if got != "ok" {
		t.Errorf("Ask() = %q, want ok", got)
	}
	if len(provider.prompts) != 1 || provider.prompts[0] != DefaultPrompt {
		t.Errorf("prompts = %q, want [%q]", provider.prompts, DefaultPrompt)
	}
}

func TestLocateService_Ask_ProviderError(t *testing.T) {
	svc := NewLocateService(&mockProvider{err: errors.New("boom")}, discardLogger())

	_, err := svc.Ask(context.Background(), "where?")
	if err == nil || !strings.Contains(err.Error(), "failed to ask mock") {
		t.Errorf("Ask() error = %v, want wrapped provider error", err)
	}
}

func TestLocateService_Locate(t *testing.T) {
	tests := []struct {
		name        string
		reply       string
		err         error
		want        *Location
		errContains string
	}{
		{
			name:  "parsed reply",
			reply: "Location: Ahmedabad, India\nLatitude: 23.02\nLongitude: 72.57\nReasoning: Named in title.",
			want: &Location{
				Name:      "Ahmedabad, India",
				Point:     types.NewGeoPoint(23.02, 72.57),
				Reasoning: "Named in title.",
			},
		},
		{
			name:        "unparseable reply",
			reply:       "I cannot tell.",
			errContains: "failed to parse reply",
		},
		{
			name:        "provider failure",
			err:         errors.New("timeout"),
			errContains: "failed to ask mock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockProvider{reply: tt.reply, err: tt.err}
			svc := NewLocateService(provider, discardLogger())

			item := types.Item{Title: "Gujarat sees record rainfall", Description: "Ahmedabad flooded", SourceName: "BBC News"}
			got, err := svc.Locate(context.Background(), item, "in")

			if tt.errContains != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("Locate() error = %v, want it to contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("Locate() error = %v", err)
			}
			if *got != *tt.want {
				t.Errorf("Locate() = %+v, want %+v", *got, *tt.want)
			}

			prompt := provider.prompts[0]
			for _, fragment := range []string{"Title: Gujarat sees record rainfall", "Description: Ahmedabad flooded", `"IN"`, "Latitude:"} {
				if !strings.Contains(prompt, fragment) {
					t.Errorf("prompt missing %q:\n%s", fragment, prompt)
				}
			}
		})
	}
}
