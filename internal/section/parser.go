// Package section segments plain document text into heading-delimited
// sections. Heading detection is deliberately heuristic: markdown
// prefixes, bold-wrapped lines, and short capitalized standalone lines
// all count. The heuristics are the contract; consumers depend on
// their exact hit/miss profile.
package section

import (
	"strings"
	"unicode"

	"github.com/draftlens/draftlens/internal/model"
)

// targetEntry pairs a heading keyword with its target word count.
// Lookup is substring match in declaration order, so a heading like
// "Discussion and Conclusion" resolves to whichever key appears first
// here. The order is behavior; do not sort.
type targetEntry struct {
	keyword string
	words   int
}

var sectionTargets = []targetEntry{
	{"abstract", 200},
	{"introduction", 400},
	{"literature review", 600},
	{"methodology", 400},
	{"methods", 400},
	{"results", 500},
	{"discussion", 500},
	{"conclusion", 300},
	{"references", 0},
}

const defaultTargetWords = 300

// Parse segments content into sections in document order.
// Text before the first detected heading is not represented. Two
// sections may share a heading string; no deduplication is done.
func Parse(content string) []model.Section {
	var sections []model.Section
	if content == "" {
		return sections
	}

	lines := strings.Split(content, "\n")
	docLen := len(content)

	var open *model.Section
	bodyStart := 0 // offset just past the open section's heading line

	closeOpen := func(end int) {
		if open == nil {
			return
		}
		open.EndIndex = end
		if bodyStart < end {
			open.Text = strings.TrimSpace(content[bodyStart:end])
		} else {
			open.Text = ""
		}
		open.WordCount = len(strings.Fields(open.Text))
		sections = append(sections, *open)
		open = nil
	}

	offset := 0
	for i, line := range lines {
		prevBlank := i == 0 || strings.TrimSpace(lines[i-1]) == ""
		heading, level, ok := detectHeading(line, prevBlank)
		if ok {
			closeOpen(offset)
			open = &model.Section{
				Heading:    heading,
				StartIndex: offset,
				EndIndex:   docLen,
				Level:      level,
			}
			bodyStart = offset + len(line) + 1
			if bodyStart > docLen {
				bodyStart = docLen
			}
		}
		offset += len(line) + 1 // account for the removed newline
	}

	closeOpen(docLen)
	return sections
}

// detectHeading decides whether a raw line is a heading.
// Checks run in priority order: bold-wrapped, markdown #, markdown ##,
// then the bare-heading heuristic (which only applies when the
// previous line is blank or this is the first line).
func detectHeading(line string, prevBlank bool) (heading string, level int, ok bool) {
	trimmed := strings.TrimSpace(line)

	if len(trimmed) >= 4 && len(trimmed) < 100 &&
		strings.HasPrefix(trimmed, "**") && strings.HasSuffix(trimmed, "**") {
		return strings.TrimSpace(trimmed[2 : len(trimmed)-2]), 1, true
	}

	if rest, found := strings.CutPrefix(trimmed, "## "); found {
		return strings.TrimSpace(rest), 2, true
	}
	if rest, found := strings.CutPrefix(trimmed, "# "); found {
		return strings.TrimSpace(rest), 1, true
	}

	if prevBlank && isBareHeading(line, trimmed) {
		level = 1
		if strings.HasPrefix(line, " ") {
			level = 2
		}
		return trimmed, level, true
	}

	return "", 0, false
}

// isBareHeading applies the standalone-heading heuristic: a short,
// unindented, capitalized line that does not read like list or body
// text and does not end in a period. Known to false-positive on short
// emphatic one-line paragraphs; that profile is intentional.
func isBareHeading(line, trimmed string) bool {
	if trimmed == "" || len(trimmed) >= 80 {
		return false
	}
	if strings.HasPrefix(line, "  ") || strings.HasPrefix(line, "\t") {
		return false
	}
	first := []rune(trimmed)[0]
	switch {
	case first == '[' || first == '(':
		return false
	case first == '-' || first == '•':
		return false
	case unicode.IsDigit(first):
		return false
	case !unicode.IsUpper(first):
		return false
	}
	return !strings.HasSuffix(trimmed, ".")
}

// FindSectionAt returns the section containing the character offset,
// scanning from the end backward. Last match wins for offsets exactly
// at a StartIndex; offsets before every section return nil.
func FindSectionAt(sections []model.Section, offset int) *model.Section {
	for i := len(sections) - 1; i >= 0; i-- {
		if sections[i].StartIndex <= offset {
			return &sections[i]
		}
	}
	return nil
}

// TargetWords returns the target word count for a heading, matched by
// lower-cased substring against the section-target table in table
// order. Unmatched headings default to 300.
func TargetWords(heading string) int {
	lower := strings.ToLower(heading)
	for _, entry := range sectionTargets {
		if strings.Contains(lower, entry.keyword) {
			return entry.words
		}
	}
	return defaultTargetWords
}
