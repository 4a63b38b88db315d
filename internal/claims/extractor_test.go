package claims

import (
	"strings"
	"testing"

	"github.com/draftlens/draftlens/internal/model"
)

func TestExtract_InlineCitationVerified(t *testing.T) {
	content := "# Results\nThis effect was large (Smith, 2020). This other claim has no support at all here today."

	claims := Extract(content)
	if len(claims) != 2 {
		t.Fatalf("expected 2 claims, got %d", len(claims))
	}

	first := claims[0]
	if first.Status != model.ClaimVerified {
		t.Errorf("expected first claim verified, got %s", first.Status)
	}
	if first.HasFootnote {
		t.Error("inline citation must not set the footnote flag")
	}

	second := claims[1]
	if second.Status != model.ClaimUnverified {
		t.Errorf("expected second claim unverified, got %s", second.Status)
	}
	if second.HasFootnote {
		t.Error("uncited claim must not set the footnote flag")
	}
}

func TestExtract_FootnoteMarker(t *testing.T) {
	content := "# Discussion\nEarlier work demonstrated this effect convincingly [12]."

	claims := Extract(content)
	if len(claims) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(claims))
	}
	if claims[0].Status != model.ClaimVerified {
		t.Errorf("expected verified, got %s", claims[0].Status)
	}
	if !claims[0].HasFootnote {
		t.Error("expected footnote flag for bracketed numeric marker")
	}
}

func TestExtract_EtAlCitation(t *testing.T) {
	content := "# Literature Review\nPrior studies report consistent outcomes across trials (Smith et al. 2020)."

	claims := Extract(content)
	if len(claims) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(claims))
	}
	if claims[0].Status != model.ClaimVerified {
		t.Errorf("expected verified for et al. citation, got %s", claims[0].Status)
	}
}

func TestExtract_BareNameCitation(t *testing.T) {
	content := "# Analysis\nThe pattern holds across every replication attempt (Smith)."

	claims := Extract(content)
	if len(claims) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(claims))
	}
	if claims[0].Status != model.ClaimVerified {
		t.Errorf("expected verified for bare-name citation, got %s", claims[0].Status)
	}
	if claims[0].HasFootnote {
		t.Error("bare-name citation must not set the footnote flag")
	}
}

func TestExtract_ShortSentencesDropped(t *testing.T) {
	// 15 characters, citation-patterned, still dropped by the length filter.
	content := "# Results\nCited here [1]. A second sentence long enough to pass the noise filter easily."

	claims := Extract(content)
	if len(claims) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(claims))
	}
	if strings.Contains(claims[0].Text, "[1]") {
		t.Errorf("short citation-patterned sentence must be dropped, got %q", claims[0].Text)
	}
}

func TestExtract_NonClaimSectionsSkipped(t *testing.T) {
	content := "# Methodology\nParticipants were recruited through campus flyers (Jones, 2019).\n\n# References\nSmith, J. A long reference entry that would otherwise qualify."

	claims := Extract(content)
	if len(claims) != 0 {
		t.Errorf("expected no claims outside claim-bearing sections, got %d", len(claims))
	}
}

func TestExtract_SectionAttribution(t *testing.T) {
	content := "# Introduction\nThe opening argument spans more than thirty characters total.\n\n# Discussion\nThe closing argument also spans more than thirty characters."

	claims := Extract(content)
	if len(claims) != 2 {
		t.Fatalf("expected 2 claims, got %d", len(claims))
	}
	if claims[0].Section != "Introduction" {
		t.Errorf("expected section Introduction, got %q", claims[0].Section)
	}
	if claims[1].Section != "Discussion" {
		t.Errorf("expected section Discussion, got %q", claims[1].Section)
	}
}

func TestExtract_EmptySectionSkipped(t *testing.T) {
	content := "# Results\n\n# Discussion\nOnly this section carries body text long enough to track."

	claims := Extract(content)
	if len(claims) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(claims))
	}
	if claims[0].Section != "Discussion" {
		t.Errorf("expected claim from Discussion, got %q", claims[0].Section)
	}
}

func TestExtract_EmptyContent(t *testing.T) {
	if got := Extract(""); len(got) != 0 {
		t.Errorf("expected no claims for empty content, got %d", len(got))
	}
}

func TestExtract_Idempotent(t *testing.T) {
	content := "# Results\nRepeated analysis yields identical output every single time (Nguyen, 2021)."

	a := Extract(content)
	b := Extract(content)
	if len(a) != len(b) {
		t.Fatalf("claim counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("claim %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSplitSentences_TerminatorHandling(t *testing.T) {
	text := "First sentence ends here. Second one asks a question? Third shouts! Fourth trails off without punctuation"

	sentences := splitSentences(text)
	if len(sentences) != 4 {
		t.Fatalf("expected 4 sentences, got %d: %v", len(sentences), sentences)
	}
	if sentences[1] != "Second one asks a question?" {
		t.Errorf("unexpected second sentence %q", sentences[1])
	}
	if sentences[3] != "Fourth trails off without punctuation" {
		t.Errorf("trailing fragment should survive, got %q", sentences[3])
	}
}

func TestSplitSentences_NoSplitWithoutWhitespace(t *testing.T) {
	text := "Version 2.5 shipped on schedule. The decimal point must not split the sentence."

	sentences := splitSentences(text)
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(sentences), sentences)
	}
	if !strings.HasPrefix(sentences[0], "Version 2.5") {
		t.Errorf("decimal split incorrectly: %q", sentences[0])
	}
}
