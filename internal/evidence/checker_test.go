package evidence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/draftlens/draftlens/internal/model"
	"github.com/sashabaranov/go-openai"
)

func TestParseVerdicts_PlainArray(t *testing.T) {
	raw := `[
		{"verdict": "weak", "highlighted_text": "Crime rates have been linked to weather patterns.", "note": "citation is tangential"},
		{"verdict": "supported", "highlighted_text": "Temperatures rose in the observed period (Smith, 2020).", "note": ""}
	]`

	results, err := parseVerdicts(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Verdict != model.VerdictWeak {
		t.Errorf("verdict = %q, want weak", results[0].Verdict)
	}
	if results[0].Note != "citation is tangential" {
		t.Errorf("note not preserved: %q", results[0].Note)
	}
	if results[1].Verdict != model.VerdictSupported {
		t.Errorf("verdict = %q, want supported", results[1].Verdict)
	}
}

func TestParseVerdicts_FencedCodeBlock(t *testing.T) {
	raw := "Here are the verdicts:\n```json\n[{\"verdict\": \"unsupported\", \"highlighted_text\": \"Everyone agrees this is the best method.\", \"note\": \"no backing\"}]\n```\nLet me know if you need more."

	results, err := parseVerdicts(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Verdict != model.VerdictUnsupported {
		t.Errorf("verdict = %q, want unsupported", results[0].Verdict)
	}
}

func TestParseVerdicts_UnknownVerdictDropped(t *testing.T) {
	raw := `[
		{"verdict": "maybe", "highlighted_text": "Some claim."},
		{"verdict": "debated", "highlighted_text": "Another claim."}
	]`

	results, err := parseVerdicts(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result after dropping unknown verdict, got %d", len(results))
	}
	if results[0].Verdict != model.VerdictDebated {
		t.Errorf("verdict = %q, want debated", results[0].Verdict)
	}
}

func TestParseVerdicts_EmptyHighlightDropped(t *testing.T) {
	raw := `[{"verdict": "weak", "highlighted_text": "   "}]`

	results, err := parseVerdicts(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty highlight to be dropped, got %d results", len(results))
	}
}

func TestParseVerdicts_NoJSON(t *testing.T) {
	if _, err := parseVerdicts("I cannot assess these claims."); err == nil {
		t.Error("expected error for response without JSON array")
	}
}

func TestParseVerdicts_CaseInsensitiveVerdict(t *testing.T) {
	raw := `[{"verdict": "Weak", "highlighted_text": "A claim."}]`

	results, err := parseVerdicts(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(results) != 1 || results[0].Verdict != model.VerdictWeak {
		t.Errorf("expected case-insensitive verdict match, got %v", results)
	}
}

func TestBuildPrompt_NumbersClaims(t *testing.T) {
	claims := []model.TrackedClaim{
		{Text: "First claim about results.", Section: "Results"},
		{Text: "Second claim (Smith, 2020).", Section: "Discussion"},
	}

	prompt := BuildPrompt(claims)

	if !strings.Contains(prompt, "1. [Results] First claim about results.") {
		t.Error("prompt missing first numbered claim")
	}
	if !strings.Contains(prompt, "2. [Discussion] Second claim (Smith, 2020).") {
		t.Error("prompt missing second numbered claim")
	}
	if !strings.Contains(prompt, "JSON array") {
		t.Error("prompt missing JSON output instruction")
	}
}

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(Config{Provider: ""})
	if err != nil {
		t.Fatalf("expected no error for empty provider, got %v", err)
	}
	if provider != nil {
		t.Error("expected nil provider when disabled")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "bard"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewProvider_MissingAPIKey(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "openai"}); err == nil {
		t.Error("expected error for openai without API key")
	}
	if _, err := NewProvider(Config{Provider: "anthropic"}); err == nil {
		t.Error("expected error for anthropic without API key")
	}
}

func TestChecker_CheckClaims_OpenAI(t *testing.T) {
	// Mock server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path /chat/completions, got %s", r.URL.Path)
		}

		resp := openai.ChatCompletionResponse{
			ID:     "chatcmpl-123",
			Object: "chat.completion",
			Model:  "gpt-4o-mini",
			Choices: []openai.ChatCompletionChoice{
				{
					Index: 0,
					Message: openai.ChatCompletionMessage{
						Role:    "assistant",
						Content: `[{"verdict": "debated", "highlighted_text": "This method outperforms all alternatives.", "note": "contested in the field"}]`,
					},
					FinishReason: "stop",
				},
			},
			Usage: openai.Usage{TotalTokens: 50},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	checker, err := NewChecker(Config{
		Provider: "openai",
		APIKey:   "test-key",
		BaseURL:  server.URL,
		Model:    "gpt-4o-mini",
		Timeout:  5,
	})
	if err != nil {
		t.Fatalf("Failed to create checker: %v", err)
	}

	claims := []model.TrackedClaim{
		{Text: "This method outperforms all alternatives.", Section: "Results", Status: model.ClaimUnverified},
	}

	results, err := checker.CheckClaims(context.Background(), claims)
	if err != nil {
		t.Fatalf("CheckClaims failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Verdict != model.VerdictDebated {
		t.Errorf("verdict = %q, want debated", results[0].Verdict)
	}
	if !results[0].Verdict.Problematic() {
		t.Error("debated verdict should be problematic")
	}
}

func TestChecker_CheckClaims_Empty(t *testing.T) {
	checker := &Checker{provider: &OllamaProvider{}, config: Config{}}
	results, err := checker.CheckClaims(context.Background(), nil)
	if err != nil {
		t.Fatalf("expected no error for empty claims, got %v", err)
	}
	if results != nil {
		t.Errorf("expected nil results for empty claims, got %v", results)
	}
}
