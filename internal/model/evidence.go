package model

// Verdict classifies how well an evidence check supports a claim.
type Verdict string

const (
	VerdictSupported   Verdict = "supported"
	VerdictWeak        Verdict = "weak"
	VerdictUnsupported Verdict = "unsupported"
	VerdictDebated     Verdict = "debated"
)

// Problematic reports whether the verdict should challenge a claim.
func (v Verdict) Problematic() bool {
	return v == VerdictWeak || v == VerdictUnsupported || v == VerdictDebated
}

// EvidenceResult is one externally supplied evidence-check outcome.
// The checker highlights the passage it examined; reconciliation
// matches highlighted text back to extracted claims by fuzzy substring.
type EvidenceResult struct {
	Verdict         Verdict `json:"verdict"`
	HighlightedText string  `json:"highlighted_text"`
	Note            string  `json:"note,omitempty"` // optional checker commentary
}
