// Package htmltext reduces HTML documents to their visible text so the
// analysis core can treat them like plain drafts.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// VisibleText parses htmlContent and returns the visible text nodes,
// skipping script, style, noscript and iframe subtrees. Block-level
// elements become line breaks so heading detection keeps working on
// exported documents.
func VisibleText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && isBlock(n.Data) {
			buf.WriteString("\n\n")
		}
	}

	walk(doc)
	return strings.TrimSpace(buf.String()), nil
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "section", "article", "li",
		"h1", "h2", "h3", "h4", "h5", "h6", "br", "tr":
		return true
	}
	return false
}

// HeadingMarkup converts h1/h2 elements into markdown-style heading
// lines so the section parser can recover document structure from
// HTML exports. Other content passes through VisibleText untouched.
func HeadingMarkup(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "h1":
				buf.WriteString("\n\n# " + nodeText(n) + "\n")
				return
			case "h2", "h3", "h4", "h5", "h6":
				buf.WriteString("\n\n## " + nodeText(n) + "\n")
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && isBlock(n.Data) {
			buf.WriteString("\n\n")
		}
	}

	walk(doc)
	return strings.TrimSpace(buf.String()), nil
}

func nodeText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}
