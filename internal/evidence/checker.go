package evidence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/draftlens/draftlens/internal/model"
)

// Checker runs claims through a provider and parses the verdicts.
type Checker struct {
	provider Provider
	config   Config
}

// NewChecker creates a checker for the configured provider.
// Returns nil if no provider is configured (evidence checking disabled).
func NewChecker(config Config) (*Checker, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	return &Checker{provider: provider, config: config}, nil
}

// ProviderName returns the underlying provider name.
func (c *Checker) ProviderName() string {
	return c.provider.Name()
}

// CheckClaims assesses the given claims and returns parsed evidence results.
// Claims the model flags as supported are included; reconciliation decides
// which verdicts challenge claims.
func (c *Checker) CheckClaims(ctx context.Context, claims []model.TrackedClaim) ([]model.EvidenceResult, error) {
	if len(claims) == 0 {
		return nil, nil
	}

	resp, err := c.provider.Check(ctx, CheckRequest{Claims: claims})
	if err != nil {
		return nil, fmt.Errorf("evidence check: %w", err)
	}

	results, err := parseVerdicts(resp.Raw)
	if err != nil {
		return nil, fmt.Errorf("parse verdicts from %s: %w", c.provider.Name(), err)
	}

	return results, nil
}

// verdictEntry mirrors the JSON shape the prompt asks for
type verdictEntry struct {
	Verdict         string `json:"verdict"`
	HighlightedText string `json:"highlighted_text"`
	Note            string `json:"note"`
}

var knownVerdicts = map[string]model.Verdict{
	"supported":   model.VerdictSupported,
	"weak":        model.VerdictWeak,
	"unsupported": model.VerdictUnsupported,
	"debated":     model.VerdictDebated,
}

// parseVerdicts extracts evidence results from raw model output.
// Tolerates markdown code fences and prose around the JSON array.
func parseVerdicts(raw string) ([]model.EvidenceResult, error) {
	jsonText := extractJSONArray(raw)
	if jsonText == "" {
		return nil, fmt.Errorf("no JSON array in response")
	}

	var entries []verdictEntry
	if err := json.Unmarshal([]byte(jsonText), &entries); err != nil {
		return nil, fmt.Errorf("unmarshal verdicts: %w", err)
	}

	results := make([]model.EvidenceResult, 0, len(entries))
	for _, e := range entries {
		verdict, ok := knownVerdicts[strings.ToLower(strings.TrimSpace(e.Verdict))]
		if !ok {
			// Unknown verdict labels are dropped rather than guessed at
			continue
		}
		text := strings.TrimSpace(e.HighlightedText)
		if text == "" {
			continue
		}
		results = append(results, model.EvidenceResult{
			Verdict:         verdict,
			HighlightedText: text,
			Note:            strings.TrimSpace(e.Note),
		})
	}

	return results, nil
}

// extractJSONArray finds the outermost JSON array in text, stripping
// code fences and surrounding prose.
func extractJSONArray(text string) string {
	text = strings.TrimSpace(text)

	// Strip markdown code fences if present
	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx >= 0 {
			text = text[idx+1:]
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end < start {
		return ""
	}
	return text[start : end+1]
}
