package evidence

import (
	"fmt"
	"strings"
)

// NewProvider creates a new evidence provider based on configuration
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		// No provider configured - evidence checking disabled
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown evidence provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}
