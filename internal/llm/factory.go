package llm

// NewProvider returns an OpenRouter provider when an API key is configured
// and the demo provider otherwise.
func NewProvider(config Config) (Provider, error) {
	if config.APIKey == "" {
		return DemoProvider{}, nil
	}
	return NewOpenRouterProvider(config)
}
