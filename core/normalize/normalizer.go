// Package normalize holds the pure text normalizers shared by both pipelines:
// dates, Azure status phrases, whitespace cleanup, and the optional Markdown
// rendering of description HTML.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// MarkdownNormalizer converts description HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize converts a description HTML fragment into Markdown with blank-line
// runs collapsed the same way plain-text descriptions are.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(multiNewline.ReplaceAllString(markdown, "\n\n")), nil
}
