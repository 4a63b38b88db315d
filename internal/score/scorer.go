// Package score derives a transparent citation-coverage index from an
// analyzed document. Scoring is derived output only: it never alters
// claim statuses, sections, or quality metrics.
package score

import (
	"fmt"
	"math"

	"github.com/draftlens/draftlens/internal/model"
)

// Scorer calculates the citation-coverage index and generates signals.
type Scorer struct{}

// NewScorer creates a new scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Calculate computes the coverage index from claims, per-section
// quality records and whole-document quality metrics.
func (s *Scorer) Calculate(claims []model.TrackedClaim, sections []model.SectionQuality, quality model.QualityMetrics) model.Score {
	var signals []model.Signal

	// 1. Citation coverage (0-50 points)
	coverageScore, coverageSignal := s.calculateCoverage(claims)
	signals = append(signals, coverageSignal)

	// 2. Challenged-claim penalty
	penalty, challengedSignal := s.challengedPenalty(claims)
	if challengedSignal.Type != "" {
		signals = append(signals, challengedSignal)
	}

	// 3. Readability (0-30 points)
	readabilityScore, readabilitySignal := s.calculateReadability(quality)
	signals = append(signals, readabilitySignal)

	// 4. Section lengths vs targets (0-20 points)
	lengthScore, lengthSignal := s.calculateSectionLengths(sections)
	signals = append(signals, lengthSignal)

	total := coverageScore - penalty + readabilityScore + lengthScore
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return model.Score{
		Index:      total,
		Confidence: s.determineConfidence(total, len(claims)),
		Signals:    signals,
	}
}

// calculateCoverage scores verified claims against the total (0-50).
func (s *Scorer) calculateCoverage(claims []model.TrackedClaim) (int, model.Signal) {
	if len(claims) == 0 {
		return 0, model.Signal{
			Type:        model.SignalCitationCoverage,
			Severity:    model.SeverityWarning,
			Description: "No trackable claims found",
			Data:        map[string]any{"claims": 0},
		}
	}

	verified := 0
	for _, c := range claims {
		if c.Status == model.ClaimVerified {
			verified++
		}
	}

	ratio := float64(verified) / float64(len(claims))
	points := int(math.Round(ratio * 50))

	severity := model.SeverityInfo
	if ratio < 0.25 {
		severity = model.SeverityCritical
	} else if ratio < 0.5 {
		severity = model.SeverityWarning
	}

	return points, model.Signal{
		Type:        model.SignalCitationCoverage,
		Severity:    severity,
		Description: fmt.Sprintf("%d of %d claims carry citations", verified, len(claims)),
		Data: map[string]any{
			"claims":   len(claims),
			"verified": verified,
			"ratio":    ratio,
			"score":    points,
			"formula":  "round(verified / claims * 50)",
		},
	}
}

// challengedPenalty deducts 5 points per challenged claim, capped at
// the size of the coverage component.
func (s *Scorer) challengedPenalty(claims []model.TrackedClaim) (int, model.Signal) {
	challenged := 0
	for _, c := range claims {
		if c.Status == model.ClaimChallenged {
			challenged++
		}
	}
	if challenged == 0 {
		return 0, model.Signal{}
	}

	penalty := challenged * 5
	if penalty > 50 {
		penalty = 50
	}

	return penalty, model.Signal{
		Type:        model.SignalChallengedClaims,
		Severity:    model.SeverityCritical,
		Description: fmt.Sprintf("%d claim(s) challenged by evidence checks", challenged),
		Data: map[string]any{
			"challenged": challenged,
			"penalty":    penalty,
			"formula":    "min(challenged * 5, 50)",
		},
	}
}

// calculateReadability scores distance from the 8-13 academic grade
// band (0-30 points, full marks inside the band).
func (s *Scorer) calculateReadability(quality model.QualityMetrics) (int, model.Signal) {
	grade := quality.ReadabilityScore

	var distance float64
	switch {
	case grade < 8:
		distance = 8 - grade
	case grade > 13:
		distance = grade - 13
	}

	points := 30 - int(math.Round(distance*5))
	if points < 0 {
		points = 0
	}

	severity := model.SeverityInfo
	if distance > 3 {
		severity = model.SeverityWarning
	}

	return points, model.Signal{
		Type:        model.SignalReadability,
		Severity:    severity,
		Description: fmt.Sprintf("Grade %.1f (%s)", grade, quality.ReadabilityLabel),
		Data: map[string]any{
			"grade":    grade,
			"distance": distance,
			"score":    points,
			"formula":  "30 - round(distance_from_8_13_band * 5)",
		},
	}
}

// calculateSectionLengths scores sections within 50-150% of their
// target word counts (0-20 points). Zero-target sections (references)
// are skipped.
func (s *Scorer) calculateSectionLengths(sections []model.SectionQuality) (int, model.Signal) {
	considered := 0
	onTarget := 0
	for _, sec := range sections {
		if sec.TargetWords == 0 {
			continue
		}
		considered++
		ratio := float64(sec.WordCount) / float64(sec.TargetWords)
		if ratio >= 0.5 && ratio <= 1.5 {
			onTarget++
		}
	}

	if considered == 0 {
		return 0, model.Signal{
			Type:        model.SignalSectionLength,
			Severity:    model.SeverityInfo,
			Description: "No sections with word-count targets",
			Data:        map[string]any{"sections": 0},
		}
	}

	points := int(math.Round(float64(onTarget) / float64(considered) * 20))

	severity := model.SeverityInfo
	if onTarget*2 < considered {
		severity = model.SeverityWarning
	}

	return points, model.Signal{
		Type:        model.SignalSectionLength,
		Severity:    severity,
		Description: fmt.Sprintf("%d of %d sections near their target length", onTarget, considered),
		Data: map[string]any{
			"sections":  considered,
			"on_target": onTarget,
			"score":     points,
			"formula":   "round(on_target / sections * 20)",
		},
	}
}

// determineConfidence maps the index and claim volume to a coarse
// confidence label.
func (s *Scorer) determineConfidence(total, claimCount int) string {
	switch {
	case claimCount == 0:
		return "low"
	case total >= 70 && claimCount >= 5:
		return "high"
	case total >= 40:
		return "medium"
	default:
		return "low"
	}
}
