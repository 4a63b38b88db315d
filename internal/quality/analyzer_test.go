package quality

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyze_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\n"} {
		m := Analyze(input)
		if m.ReadabilityScore != 0 {
			t.Errorf("input %q: expected score 0, got %v", input, m.ReadabilityScore)
		}
		if m.ReadabilityLabel != "—" {
			t.Errorf("input %q: expected label —, got %q", input, m.ReadabilityLabel)
		}
		if m.PassiveVoicePct != 0 || m.AvgSentenceLength != 0 || m.JargonDensity != 0 {
			t.Errorf("input %q: expected zeroed metrics, got %+v", input, m)
		}
		if len(m.Suggestions) != 0 {
			t.Errorf("input %q: expected no suggestions, got %v", input, m.Suggestions)
		}
	}
}

func TestAnalyze_SimpleActiveText(t *testing.T) {
	text := "The cat sat on the mat. The dog ran to the park. We like short words here."

	m := Analyze(text)
	if m.ReadabilityLabel != "Easy" && m.ReadabilityLabel != "Standard" {
		t.Errorf("expected Easy or Standard, got %q (score %v)", m.ReadabilityLabel, m.ReadabilityScore)
	}
	if m.PassiveVoicePct != 0 {
		t.Errorf("expected 0%% passive, got %d", m.PassiveVoicePct)
	}
	if len(m.Suggestions) != 0 {
		t.Errorf("expected no suggestions on a short simple passage, got %v", m.Suggestions)
	}
}

func TestAnalyze_PassiveText(t *testing.T) {
	text := "The sample was collected by the assistants. The data were analyzed by the team. The results were reported by the committee."

	m := Analyze(text)
	if m.PassiveVoicePct != 100 {
		t.Errorf("expected 100%% passive, got %d", m.PassiveVoicePct)
	}

	found := false
	for _, s := range m.Suggestions {
		if strings.Contains(s, "100%") && strings.Contains(s, "passive") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected passive-voice suggestion with percentage, got %v", m.Suggestions)
	}
}

func TestAnalyze_PassiveFamilies(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"be + participle", "The report was written by an outside contractor yesterday."},
		{"perfect passive", "The protocol has been validated by independent reviewers."},
		{"modal passive", "The outcome could be explained by seasonal variation."},
	}

	for _, tc := range cases {
		m := Analyze(tc.text)
		if m.PassiveVoicePct != 100 {
			t.Errorf("%s: expected 100%% passive, got %d", tc.name, m.PassiveVoicePct)
		}
	}
}

func TestAnalyze_JargonDensity(t *testing.T) {
	text := "Epistemological heterogeneity complicates hermeneutical triangulation."

	m := Analyze(text)
	if m.JargonDensity != 100 {
		t.Errorf("expected 100%% jargon, got %d", m.JargonDensity)
	}

	found := false
	for _, s := range m.Suggestions {
		if strings.Contains(strings.ToLower(s), "jargon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected jargon suggestion, got %v", m.Suggestions)
	}
}

func TestAnalyze_CommonAcademicWordsNotJargon(t *testing.T) {
	// Polysyllabic but deliberately excluded from the jargon flag.
	text := "The analysis of the experiment used a development methodology."

	m := Analyze(text)
	// "methodology" is not in the common set; everything else is.
	if m.JargonDensity > 15 {
		t.Errorf("common academic words flagged as jargon: %d%%", m.JargonDensity)
	}
}

func TestAnalyze_LongSentenceSuggestion(t *testing.T) {
	words := make([]string, 35)
	for i := range words {
		words[i] = "word"
	}
	text := strings.Join(words, " ") + "."

	m := Analyze(text)
	if m.AvgSentenceLength != 35 {
		t.Errorf("expected average 35, got %d", m.AvgSentenceLength)
	}

	found := false
	for _, s := range m.Suggestions {
		if strings.Contains(s, "35 words") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected long-sentence suggestion naming the average, got %v", m.Suggestions)
	}
}

func TestAnalyze_TooSimpleSuggestion(t *testing.T) {
	// Over 50 monosyllabic words in short sentences: grade well below 8.
	sentence := "The cat sat on the mat and slept all day."
	text := strings.Repeat(sentence+" ", 7)

	m := Analyze(text)
	if m.ReadabilityScore >= 8 {
		t.Fatalf("expected grade below 8, got %v", m.ReadabilityScore)
	}

	found := false
	for _, s := range m.Suggestions {
		if strings.Contains(strings.ToLower(s), "simple") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected too-simple suggestion, got %v", m.Suggestions)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	text := "The methodology was validated by peers. Researchers documented considerable heterogeneity across cohorts."

	a := Analyze(text)
	b := Analyze(text)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated analysis differs:\n%+v\n%+v", a, b)
	}
}

func TestCountSyllables(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"a", 1},
		{"be", 1},
		{"cat", 1},
		{"idea", 2},
		{"table", 1},  // trailing e stripped, one vowel group remains
		{"university", 5},
		{"rhythm", 1}, // y counts as a vowel
		{"pfft", 1},   // no vowel groups still counts one
		{"Hello,", 2}, // punctuation stripped before counting
	}

	for _, tc := range cases {
		if got := countSyllables(tc.word); got != tc.want {
			t.Errorf("countSyllables(%q) = %d, want %d", tc.word, got, tc.want)
		}
	}
}

func TestGradeLabelBuckets(t *testing.T) {
	cases := []struct {
		grade float64
		want  string
	}{
		{0, "Easy"},
		{6, "Easy"},
		{6.1, "Standard"},
		{8, "Standard"},
		{9.5, "Moderate"},
		{10, "Moderate"},
		{12, "Academic"},
		{13, "Academic"},
		{13.1, "Graduate+"},
		{18, "Graduate+"},
	}

	for _, tc := range cases {
		if got := gradeLabel(tc.grade); got != tc.want {
			t.Errorf("gradeLabel(%v) = %q, want %q", tc.grade, got, tc.want)
		}
	}
}

func TestFleschKincaidGrade_Degenerate(t *testing.T) {
	if got := fleschKincaidGrade(0, 0, 0); got != 0 {
		t.Errorf("expected 0 for empty counts, got %v", got)
	}
	if got := fleschKincaidGrade(10, 0, 10); got != 0 {
		t.Errorf("expected 0 for zero sentences, got %v", got)
	}
}

func TestSplitWords_KeepsLetterBearingTokens(t *testing.T) {
	words := splitWords("alpha 123 -- beta-2 !!")
	if len(words) != 2 {
		t.Fatalf("expected 2 letter-bearing tokens, got %d: %v", len(words), words)
	}
}
