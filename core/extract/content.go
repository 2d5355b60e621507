package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/gaurav-prasanna/updatesheet/core/normalize"
)

// Description formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// noiseSelectors are removed from a content container before its text is read.
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"img", "picture", "svg", "canvas",
	"iframe", "video", "audio",
	"form", "button", "input", "select", "textarea",
}

// skippedText holds elements whose text nodes never count as visible text.
var skippedText = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
}

// parseHTML wraps goquery parsing with the package's error convention.
func parseHTML(raw string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// firstMatch returns the first element matched by the earliest selector in
// the list that matches anything, or nil.
func firstMatch(root *goquery.Selection, selectors []string) *goquery.Selection {
	for _, sel := range selectors {
		if found := root.Find(sel); found.Length() > 0 {
			return found.First()
		}
	}
	return nil
}

// joinedText concatenates the trimmed, non-empty text nodes under s with sep.
func joinedText(s *goquery.Selection, sep string) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedText[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return norm.NFC.String(strings.Join(parts, sep))
}

// blockText joins the text of every block element under container, one per
// line. With no such elements it falls back to the container's own text.
func blockText(container *goquery.Selection, blocks string) string {
	elements := container.Find(blocks)
	if elements.Length() == 0 {
		return joinedText(container, "\n")
	}
	lines := make([]string, 0, elements.Length())
	elements.Each(func(_ int, el *goquery.Selection) {
		lines = append(lines, joinedText(el, " "))
	})
	return strings.Join(lines, "\n")
}

// describer renders a content container as a description in the configured format.
type describer struct {
	format   string
	markdown *normalize.MarkdownNormalizer
}

func newDescriber(format string) describer {
	if format != FormatMarkdown {
		return describer{format: FormatText}
	}
	return describer{format: FormatMarkdown, markdown: normalize.New()}
}

// describe returns the container's description. Noise elements are dropped first.
func (d describer) describe(container *goquery.Selection, blocks string) (string, error) {
	for _, sel := range noiseSelectors {
		container.Find(sel).Remove()
	}
	if d.format == FormatMarkdown {
		fragment, err := goquery.OuterHtml(container)
		if err != nil {
			return "", fmt.Errorf("serializing content: %w", err)
		}
		return d.markdown.Normalize(fragment)
	}
	return normalize.CollapseBlankLines(blockText(container, blocks)), nil
}

// removeByClass drops div and section descendants whose class attribute matches pattern.
func removeByClass(container *goquery.Selection, pattern *regexp.Regexp) {
	container.Find("div, section").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return pattern.MatchString(class)
	}).Remove()
}
