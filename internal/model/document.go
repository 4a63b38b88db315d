package model

// Section is one heading-delimited slice of a document.
// Sections are recomputed in full on every parse; they carry no stable
// identity across parses. Callers that need identity key off Heading,
// which collides when a document repeats a heading (accepted limitation).
type Section struct {
	Heading    string `json:"heading"`     // heading text, markup stripped
	StartIndex int    `json:"start_index"` // offset of the heading line
	EndIndex   int    `json:"end_index"`   // offset of the next heading (or document end)
	Text       string `json:"text"`        // body after the heading line, trimmed
	WordCount  int    `json:"word_count"`  // whitespace-token count of Text
	Level      int    `json:"level"`       // 1 top-level, 2 sub-heading
}

// ClaimStatus is the derived verification state of a tracked claim.
type ClaimStatus string

const (
	ClaimVerified   ClaimStatus = "verified"   // matched a citation pattern
	ClaimChallenged ClaimStatus = "challenged" // flagged by an evidence-check result
	ClaimUnverified ClaimStatus = "unverified" // no citation found
)

// TrackedClaim is a citable sentence extracted from a claim-bearing
// section. Claims are ephemeral: regenerated from scratch whenever the
// document changes, with no identity between regenerations.
type TrackedClaim struct {
	Text        string      `json:"text"`
	Section     string      `json:"section"` // heading of the owning section
	Status      ClaimStatus `json:"status"`
	HasFootnote bool        `json:"has_footnote"` // bracketed numeric marker present
}

// QualityMetrics is the writing-quality profile of one text blob.
type QualityMetrics struct {
	ReadabilityScore  float64  `json:"readability_score"` // Flesch-Kincaid grade, 1 decimal, >= 0
	ReadabilityLabel  string   `json:"readability_label"`
	PassiveVoicePct   int      `json:"passive_voice_pct"`   // 0-100
	AvgSentenceLength int      `json:"avg_sentence_length"` // words per sentence, rounded
	JargonDensity     int      `json:"jargon_density"`      // 0-100
	Suggestions       []string `json:"suggestions"`
}
