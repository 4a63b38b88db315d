package claims

import (
	"strings"

	"github.com/draftlens/draftlens/internal/model"
)

// Truncation lengths for the challenged-claim fuzzy match. The pair is
// tuned together: a 50-char evidence key must be found inside the
// claim, or must itself contain the claim's 40-char prefix, keeping
// matching permissive in both directions. Do not generalize into a
// similarity score.
const (
	evidenceKeyLength = 50
	claimPrefixLength = 40
)

// Reconcile marks claims as challenged when an evidence-check result
// with a problematic verdict overlaps their text. Challenged takes
// precedence over both verified and unverified. The input slice is
// modified in place and returned.
func Reconcile(claims []model.TrackedClaim, results []model.EvidenceResult) []model.TrackedClaim {
	var keys []string
	for _, r := range results {
		if !r.Verdict.Problematic() {
			continue
		}
		if key := truncateRunes(r.HighlightedText, evidenceKeyLength); key != "" {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return claims
	}

	for i := range claims {
		prefix := truncateRunes(claims[i].Text, claimPrefixLength)
		for _, key := range keys {
			if strings.Contains(claims[i].Text, key) ||
				(prefix != "" && strings.Contains(key, prefix)) {
				claims[i].Status = model.ClaimChallenged
				break
			}
		}
	}

	return claims
}

// truncateRunes returns at most n runes of s without splitting a
// multi-byte character.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
