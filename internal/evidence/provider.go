package evidence

import (
	"context"
	"fmt"

	"github.com/draftlens/draftlens/internal/model"
)

// Provider defines the interface for LLM evidence-check backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Check asks the backend to assess a batch of claims
	Check(ctx context.Context, req CheckRequest) (*CheckResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CheckRequest contains the claims to assess
type CheckRequest struct {
	// Claims are the statements extracted from the draft
	Claims []model.TrackedClaim

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// CheckResponse contains the raw backend output plus metadata
type CheckResponse struct {
	// Raw is the unparsed model output; the checker parses verdicts from it
	Raw string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds evidence provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 2000,
	}
}

// ConfigFromModel converts model.EvidenceConfig to evidence.Config
func ConfigFromModel(mc model.EvidenceConfig) Config {
	return Config{
		Provider:  mc.Provider,
		Model:     mc.Model,
		APIKey:    mc.APIKey,
		BaseURL:   mc.BaseURL,
		Timeout:   mc.Timeout,
		MaxTokens: mc.MaxTokens,
	}
}

const systemPrompt = "You assess how well written claims are supported by evidence. You never assert truth or correctness, only support quality. You respond with JSON only."

// BuildPrompt constructs the default verdict prompt for a batch of claims
func BuildPrompt(claims []model.TrackedClaim) string {
	prompt := `Assess each numbered claim below. For each claim respond with a verdict:
- "supported": the claim cites evidence and the citation plausibly covers it
- "weak": the claim cites evidence but the support is thin or tangential
- "unsupported": the claim makes an assertion with no meaningful backing
- "debated": the claim touches an area of active disagreement

RULES:
1. Judge SUPPORT QUALITY, not truth. Never decide whether a claim is true.
2. Do not invent sources or external knowledge beyond what the claim shows.
3. Respond with a JSON array only, no prose. Each element:
   {"verdict": "...", "highlighted_text": "<the claim text you assessed>", "note": "<one short sentence>"}
4. highlighted_text MUST be copied verbatim from the claim, not paraphrased.

Claims:
`

	for i, claim := range claims {
		prompt += fmt.Sprintf("%d. [%s] %s\n", i+1, claim.Section, claim.Text)
	}

	return prompt
}
