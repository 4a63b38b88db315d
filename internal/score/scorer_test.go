package score

import (
	"testing"

	"github.com/draftlens/draftlens/internal/model"
)

func makeClaims(verified, unverified, challenged int) []model.TrackedClaim {
	var claims []model.TrackedClaim
	for i := 0; i < verified; i++ {
		claims = append(claims, model.TrackedClaim{Text: "v", Status: model.ClaimVerified})
	}
	for i := 0; i < unverified; i++ {
		claims = append(claims, model.TrackedClaim{Text: "u", Status: model.ClaimUnverified})
	}
	for i := 0; i < challenged; i++ {
		claims = append(claims, model.TrackedClaim{Text: "c", Status: model.ClaimChallenged})
	}
	return claims
}

func TestScorer_Calculate_Bounds(t *testing.T) {
	scorer := NewScorer()

	quality := model.QualityMetrics{ReadabilityScore: 10, ReadabilityLabel: "Moderate"}
	sections := []model.SectionQuality{
		{Heading: "Introduction", WordCount: 400, TargetWords: 400},
	}

	result := scorer.Calculate(makeClaims(8, 2, 0), sections, quality)
	if result.Index < 0 || result.Index > 100 {
		t.Errorf("expected index in [0,100], got %d", result.Index)
	}
	// 8/10 verified (40) + grade in band (30) + 1/1 on target (20) = 90
	if result.Index != 90 {
		t.Errorf("expected index 90, got %d", result.Index)
	}
	if result.Confidence != "high" {
		t.Errorf("expected high confidence, got %q", result.Confidence)
	}
}

func TestScorer_Calculate_NoClaims(t *testing.T) {
	scorer := NewScorer()

	result := scorer.Calculate(nil, nil, model.QualityMetrics{})
	if result.Confidence != "low" {
		t.Errorf("expected low confidence with no claims, got %q", result.Confidence)
	}

	found := false
	for _, sig := range result.Signals {
		if sig.Type == model.SignalCitationCoverage && sig.Severity == model.SeverityWarning {
			found = true
		}
	}
	if !found {
		t.Error("expected coverage warning signal with no claims")
	}
}

func TestScorer_ChallengedPenalty(t *testing.T) {
	scorer := NewScorer()
	quality := model.QualityMetrics{ReadabilityScore: 10}

	clean := scorer.Calculate(makeClaims(4, 0, 0), nil, quality)
	dirty := scorer.Calculate(makeClaims(4, 0, 2), nil, quality)

	if dirty.Index >= clean.Index {
		t.Errorf("challenged claims must lower the index: clean %d, dirty %d",
			clean.Index, dirty.Index)
	}

	found := false
	for _, sig := range dirty.Signals {
		if sig.Type == model.SignalChallengedClaims && sig.Severity == model.SeverityCritical {
			found = true
		}
	}
	if !found {
		t.Error("expected critical challenged-claims signal")
	}
}

func TestScorer_ReadabilityBand(t *testing.T) {
	scorer := NewScorer()

	inBand := scorer.Calculate(makeClaims(1, 0, 0), nil, model.QualityMetrics{ReadabilityScore: 9})
	outOfBand := scorer.Calculate(makeClaims(1, 0, 0), nil, model.QualityMetrics{ReadabilityScore: 19})

	if outOfBand.Index >= inBand.Index {
		t.Errorf("grade far outside the band must score lower: in %d, out %d",
			inBand.Index, outOfBand.Index)
	}
}

func TestScorer_SectionTargets(t *testing.T) {
	scorer := NewScorer()
	quality := model.QualityMetrics{ReadabilityScore: 10}
	claims := makeClaims(1, 0, 0)

	sections := []model.SectionQuality{
		{Heading: "Introduction", WordCount: 390, TargetWords: 400}, // on target
		{Heading: "Results", WordCount: 20, TargetWords: 500},       // far short
		{Heading: "References", WordCount: 80, TargetWords: 0},      // skipped
	}

	result := scorer.Calculate(claims, sections, quality)

	for _, sig := range result.Signals {
		if sig.Type == model.SignalSectionLength {
			if sig.Data["sections"] != 2 {
				t.Errorf("expected 2 considered sections, got %v", sig.Data["sections"])
			}
			if sig.Data["on_target"] != 1 {
				t.Errorf("expected 1 on-target section, got %v", sig.Data["on_target"])
			}
			return
		}
	}
	t.Error("expected section-length signal")
}
