package model

import "time"

// Report is the complete analysis of one document.
type Report struct {
	Subject    string    `json:"subject"`     // document name or page slug
	Source     string    `json:"source"`      // file path or URL
	AnalyzedAt time.Time `json:"analyzed_at"` // when the analysis ran

	Sections []Section      `json:"sections"`
	Claims   []TrackedClaim `json:"claims"`
	Quality  QualityMetrics `json:"quality"` // whole-document metrics

	SectionQuality []SectionQuality `json:"section_quality,omitempty"`

	Evidence []EvidenceResult `json:"evidence,omitempty"` // evidence-check results, if run

	Score Score `json:"score"` // citation-coverage scoring breakdown
}

// SectionQuality pairs a section with its own quality metrics and the
// target word count for its heading.
type SectionQuality struct {
	Heading     string         `json:"heading"`
	Level       int            `json:"level"`
	WordCount   int            `json:"word_count"`
	TargetWords int            `json:"target_words"`
	Quality     QualityMetrics `json:"quality"`
}

// Score is the transparent citation-coverage breakdown.
// It is derived output: computing it never alters claim statuses or
// quality metrics.
type Score struct {
	Index      int      `json:"index"`      // 0-100
	Confidence string   `json:"confidence"` // "low", "medium", "high"
	Signals    []Signal `json:"signals"`
}

// Signal is one diagnostic with transparent scoring data.
type Signal struct {
	Type        SignalType     `json:"type"`
	Severity    SignalSeverity `json:"severity"`
	Description string         `json:"description"`
	Data        map[string]any `json:"data,omitempty"`
}

// SignalType classifies a diagnostic signal.
type SignalType string

const (
	SignalCitationCoverage SignalType = "citation_coverage" // verified-to-total claim ratio
	SignalChallengedClaims SignalType = "challenged_claims" // claims contradicted by evidence checks
	SignalReadability      SignalType = "readability"       // grade outside the academic band
	SignalSectionLength    SignalType = "section_length"    // sections far from target word counts
)

// SignalSeverity indicates the importance of the signal.
type SignalSeverity string

const (
	SeverityInfo     SignalSeverity = "info"
	SeverityWarning  SignalSeverity = "warning"
	SeverityCritical SignalSeverity = "critical"
)
