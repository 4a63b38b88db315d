// Package claims extracts citable sentences from claim-bearing
// document sections and classifies them by citation-pattern presence.
package claims

import (
	"regexp"
	"strings"

	"github.com/draftlens/draftlens/internal/model"
	"github.com/draftlens/draftlens/internal/section"
)

// Sections whose heading contains one of these (lower-cased) carry
// claims worth tracking.
var claimSectionKeywords = []string{
	"introduction",
	"literature review",
	"results",
	"discussion",
	"background",
	"analysis",
}

var (
	// Bracketed numeric footnote marker, e.g. [12].
	footnotePattern = regexp.MustCompile(`\[\d+\]`)

	// Inline citation: parenthesized capitalized run ending in a
	// 4-digit year, e.g. (Smith et al. 2020), or a bare parenthesized
	// capitalized word, e.g. (Smith).
	inlineCitationPattern = regexp.MustCompile(`\([A-Z][^()]*?\d{4}\)|\([A-Z][a-zA-Z]+\)`)
)

// Claim sentences at or below this length are discarded as fragments.
const minClaimLength = 30

// Extract parses content into sections and returns the tracked claims
// found in claim-bearing sections, in section-then-sentence order.
func Extract(content string) []model.TrackedClaim {
	var claims []model.TrackedClaim

	for _, sec := range section.Parse(content) {
		if !isClaimSection(sec.Heading) {
			continue
		}
		if strings.TrimSpace(sec.Text) == "" {
			continue
		}

		for _, sentence := range splitSentences(sec.Text) {
			if len(sentence) <= minClaimLength {
				continue
			}

			hasFootnote := footnotePattern.MatchString(sentence)
			status := model.ClaimUnverified
			if hasFootnote || inlineCitationPattern.MatchString(sentence) {
				status = model.ClaimVerified
			}

			claims = append(claims, model.TrackedClaim{
				Text:        sentence,
				Section:     sec.Heading,
				Status:      status,
				HasFootnote: hasFootnote,
			})
		}
	}

	return claims
}

// isClaimSection reports whether a heading names a claim-bearing section.
func isClaimSection(heading string) bool {
	lower := strings.ToLower(heading)
	for _, keyword := range claimSectionKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// splitSentences splits text on ., ! or ? followed by whitespace,
// keeping the terminator with the sentence. Candidates are trimmed;
// a trailing fragment without a separator still closes a sentence.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	for i, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 < len(text) && isSpaceByte(text[i+1]) {
				flush()
			}
		}
	}
	flush()

	return sentences
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
