// Package quality computes writing-quality metrics over raw text:
// an approximate Flesch-Kincaid grade, passive-voice ratio, average
// sentence length, and jargon density. All heuristics are regex and
// whitespace based; the thresholds and patterns are the entire model.
package quality

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/draftlens/draftlens/internal/model"
)

var (
	sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)
	nonLetterPattern     = regexp.MustCompile(`[^a-z]`)
	vowelGroupPattern    = regexp.MustCompile(`[aeiouy]+`)

	// Passive-voice families, tested in order; a sentence counts once
	// on the first match.
	passivePatterns = []*regexp.Regexp{
		// a form of "be" followed by a past-participle-looking word
		regexp.MustCompile(`(?i)\b(?:am|is|are|was|were|be|been|being)\s+\w+(?:ed|en|t)\b`),
		// perfect passive: has/have/had been X
		regexp.MustCompile(`(?i)\b(?:has|have|had)\s+been\s+\w+`),
		// modal passive: could be X-ed
		regexp.MustCompile(`(?i)\b(?:can|could|may|might|must|shall|should|will|would)\s+be\s+\w+(?:ed|en|t)\b`),
	}
)

// Suggestion thresholds. These are tuned values; changing any of them
// changes the advisory output contract.
const (
	complexGradeThreshold   = 14
	simpleGradeThreshold    = 8
	simpleMinWords          = 50
	passivePctThreshold     = 40
	avgSentenceLenThreshold = 30
	jargonPctThreshold      = 25
)

// Analyze computes the quality metrics for one text blob. Empty or
// whitespace-only input yields a zeroed record with label "—".
func Analyze(text string) model.QualityMetrics {
	if strings.TrimSpace(text) == "" {
		return model.QualityMetrics{
			ReadabilityLabel: "—",
			Suggestions:      []string{},
		}
	}

	sentences := splitSentences(text)
	words := splitWords(text)

	totalSyllables := 0
	for _, w := range words {
		totalSyllables += countSyllables(w)
	}

	grade := fleschKincaidGrade(len(words), len(sentences), totalSyllables)
	passivePct := passiveVoicePct(sentences)
	avgLen := 0
	if len(sentences) > 0 {
		avgLen = int(math.Round(float64(len(words)) / float64(len(sentences))))
	}
	jargonPct := jargonDensity(words)

	return model.QualityMetrics{
		ReadabilityScore:  grade,
		ReadabilityLabel:  gradeLabel(grade),
		PassiveVoicePct:   passivePct,
		AvgSentenceLength: avgLen,
		JargonDensity:     jargonPct,
		Suggestions:       suggestions(grade, len(words), passivePct, avgLen, jargonPct),
	}
}

// splitSentences splits on runs of sentence terminators, trimming and
// dropping empties.
func splitSentences(text string) []string {
	var sentences []string
	for _, part := range sentenceSplitPattern.Split(text, -1) {
		if s := strings.TrimSpace(part); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// splitWords splits on whitespace, keeping tokens that still contain a
// letter once non-letters are stripped.
func splitWords(text string) []string {
	var words []string
	for _, token := range strings.Fields(text) {
		if cleanWord(token) != "" {
			words = append(words, token)
		}
	}
	return words
}

// cleanWord lower-cases a token and strips everything but a-z.
func cleanWord(token string) string {
	return nonLetterPattern.ReplaceAllString(strings.ToLower(token), "")
}

// countSyllables approximates syllables by counting vowel-group runs.
// Words of one or two letters count as one syllable; a single trailing
// "e" is dropped first. Never returns less than 1.
func countSyllables(word string) int {
	clean := cleanWord(word)
	if len(clean) <= 2 {
		return 1
	}
	clean = strings.TrimSuffix(clean, "e")
	groups := len(vowelGroupPattern.FindAllString(clean, -1))
	if groups < 1 {
		return 1
	}
	return groups
}

// fleschKincaidGrade computes 0.39*(words/sentences) +
// 11.8*(syllables/words) - 15.59, floored at 0 and rounded to one
// decimal place.
func fleschKincaidGrade(wordCount, sentenceCount, syllableCount int) float64 {
	if wordCount == 0 || sentenceCount == 0 {
		return 0
	}
	grade := 0.39*(float64(wordCount)/float64(sentenceCount)) +
		11.8*(float64(syllableCount)/float64(wordCount)) - 15.59
	if grade < 0 {
		grade = 0
	}
	return math.Round(grade*10) / 10
}

// gradeLabel buckets a Flesch-Kincaid grade into a display label.
func gradeLabel(grade float64) string {
	switch {
	case grade <= 6:
		return "Easy"
	case grade <= 8:
		return "Standard"
	case grade <= 10:
		return "Moderate"
	case grade <= 13:
		return "Academic"
	default:
		return "Graduate+"
	}
}

// passiveVoicePct returns the percentage of sentences matching any
// passive-voice pattern, rounded to the nearest integer.
func passiveVoicePct(sentences []string) int {
	if len(sentences) == 0 {
		return 0
	}
	passive := 0
	for _, sentence := range sentences {
		for _, pattern := range passivePatterns {
			if pattern.MatchString(sentence) {
				passive++
				break
			}
		}
	}
	return int(math.Round(float64(passive) / float64(len(sentences)) * 100))
}

// jargonDensity returns the percentage of words flagged as jargon:
// cleaned length >= 4, at least 3 syllables, and absent from the
// common-word set.
func jargonDensity(words []string) int {
	if len(words) == 0 {
		return 0
	}
	jargon := 0
	for _, word := range words {
		clean := cleanWord(word)
		if len(clean) >= 4 && countSyllables(clean) >= 3 && !commonWords[clean] {
			jargon++
		}
	}
	return int(math.Round(float64(jargon) / float64(len(words)) * 100))
}

// suggestions derives the threshold-triggered advisories. All checks
// are independent; order here is display order only.
func suggestions(grade float64, wordCount, passivePct, avgLen, jargonPct int) []string {
	out := []string{}

	if grade > complexGradeThreshold {
		out = append(out, "Readability is at a graduate level; consider shorter sentences and simpler phrasing.")
	}
	if grade < simpleGradeThreshold && wordCount > simpleMinWords {
		out = append(out, "Writing may be too simple for an academic audience; consider more precise terminology.")
	}
	if passivePct > passivePctThreshold {
		out = append(out, fmt.Sprintf("%d%% of sentences use passive voice; prefer active constructions.", passivePct))
	}
	if avgLen > avgSentenceLenThreshold {
		out = append(out, fmt.Sprintf("Sentences average %d words; aim for 25 or fewer.", avgLen))
	}
	if jargonPct > jargonPctThreshold {
		out = append(out, "Jargon density is high; define specialist terms on first use or replace them.")
	}

	return out
}
