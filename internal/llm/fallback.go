package llm

import "context"

// DemoProvider answers every prompt with DemoReply so markers still render
// when no LLM key is configured.
type DemoProvider struct{}

func (DemoProvider) Name() string {
	return "demo"
}

func (DemoProvider) Complete(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return DemoReply, nil
}
