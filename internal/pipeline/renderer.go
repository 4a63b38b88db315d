package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/draftlens/draftlens/internal/model"
)

// Renderer writes reports to JSON, Markdown, and the terminal
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as pretty-printed JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// RenderMarkdown writes the report as a human-readable Markdown document
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Draft Analysis: %s\n\n", report.Subject)
	fmt.Fprintf(&b, "- **Source**: %s\n", report.Source)
	fmt.Fprintf(&b, "- **Analyzed**: %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "- **Citation Index**: %d/100 (%s confidence)\n\n", report.Score.Index, report.Score.Confidence)

	b.WriteString("## Signals\n\n")
	if len(report.Score.Signals) == 0 {
		b.WriteString("No signals.\n\n")
	}
	for _, signal := range report.Score.Signals {
		fmt.Fprintf(&b, "- **%s** [%s]: %s\n", signal.Type, signal.Severity, signal.Description)
	}
	b.WriteString("\n")

	b.WriteString("## Writing Quality\n\n")
	q := report.Quality
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Readability | %.1f (%s) |\n", q.ReadabilityScore, q.ReadabilityLabel)
	fmt.Fprintf(&b, "| Passive voice | %d%% |\n", q.PassiveVoicePct)
	fmt.Fprintf(&b, "| Avg sentence length | %d words |\n", q.AvgSentenceLength)
	fmt.Fprintf(&b, "| Jargon density | %d%% |\n\n", q.JargonDensity)

	if len(q.Suggestions) > 0 {
		b.WriteString("### Suggestions\n\n")
		for _, s := range q.Suggestions {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}

	if len(report.SectionQuality) > 0 {
		b.WriteString("## Sections\n\n")
		b.WriteString("| Heading | Words | Target | Readability |\n|---|---|---|---|\n")
		for _, sq := range report.SectionQuality {
			target := "-"
			if sq.TargetWords > 0 {
				target = fmt.Sprintf("%d", sq.TargetWords)
			}
			fmt.Fprintf(&b, "| %s | %d | %s | %.1f |\n", sq.Heading, sq.WordCount, target, sq.Quality.ReadabilityScore)
		}
		b.WriteString("\n")
	}

	if len(report.Claims) > 0 {
		b.WriteString("## Claims\n\n")
		for _, claim := range report.Claims {
			marker := statusMarker(claim.Status)
			fmt.Fprintf(&b, "- %s **%s** (%s): %s\n", marker, claim.Status, claim.Section, claim.Text)
		}
		b.WriteString("\n")
	}

	if len(report.Evidence) > 0 {
		b.WriteString("## Evidence Checks\n\n")
		for _, ev := range report.Evidence {
			fmt.Fprintf(&b, "- **%s**: %s", ev.Verdict, ev.HighlightedText)
			if ev.Note != "" {
				fmt.Fprintf(&b, " _(%s)_", ev.Note)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\n")
		b.WriteString("Generated by [Draftlens](https://github.com/draftlens/draftlens). ")
		b.WriteString("Draftlens measures citation coverage and writing quality; it never judges whether claims are true.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// RenderSummary prints a short report summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	verified, challenged, unverified := countStatuses(report.Claims)

	fmt.Printf("\n%s\n", report.Subject)
	fmt.Printf("Citation Index: %d/100 (%s confidence)\n", report.Score.Index, report.Score.Confidence)
	fmt.Printf("Claims: %d verified, %d challenged, %d unverified\n", verified, challenged, unverified)
	fmt.Printf("Readability: %.1f (%s), passive %d%%, jargon %d%%\n",
		report.Quality.ReadabilityScore, report.Quality.ReadabilityLabel,
		report.Quality.PassiveVoicePct, report.Quality.JargonDensity)

	for _, s := range report.Quality.Suggestions {
		fmt.Printf("  - %s\n", s)
	}
}

func statusMarker(status model.ClaimStatus) string {
	switch status {
	case model.ClaimVerified:
		return "✓"
	case model.ClaimChallenged:
		return "✗"
	default:
		return "?"
	}
}

func countStatuses(claims []model.TrackedClaim) (verified, challenged, unverified int) {
	for _, c := range claims {
		switch c.Status {
		case model.ClaimVerified:
			verified++
		case model.ClaimChallenged:
			challenged++
		default:
			unverified++
		}
	}
	return
}
