package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/updatesheet/core"
)

// MarkdownRenderer writes a digest of the run: one section per provider,
// one entry per record, in sink order.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render builds the digest. Providers appear in the order of their first record.
func (r *MarkdownRenderer) Render(records []core.CanonicalRecord) ([]byte, error) {
	var b strings.Builder
	b.WriteString("# Cloud updates\n")
	if len(records) == 0 {
		b.WriteString("\nNo updates.\n")
		return []byte(b.String()), nil
	}

	for _, group := range byProvider(records) {
		fmt.Fprintf(&b, "\n## %s\n", group.provider)
		for _, rec := range group.records {
			writeEntry(&b, rec)
		}
	}
	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func writeEntry(b *strings.Builder, rec core.CanonicalRecord) {
	if rec.URL != "" && rec.URL != core.NA {
		fmt.Fprintf(b, "\n### [%s](%s)\n\n", rec.Title, rec.URL)
	} else {
		fmt.Fprintf(b, "\n### %s\n\n", rec.Title)
	}

	fmt.Fprintf(b, "- Posted: %s\n", rec.DatePosted)
	switch rec.Provider {
	case core.ProviderAWS:
		fmt.Fprintf(b, "- Product: %s\n", rec.Product)
	case core.ProviderAzure:
		fmt.Fprintf(b, "- Status: %s\n", rec.Status)
		fmt.Fprintf(b, "- Update type: %s\n", rec.UpdateType)
		fmt.Fprintf(b, "- Products: %s\n", rec.ProductList)
		fmt.Fprintf(b, "- Categories: %s\n", rec.Categories)
	}

	if rec.Description != "" && rec.Description != core.NA {
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(rec.Description))
		b.WriteString("\n")
	}
}

type providerGroup struct {
	provider core.Provider
	records  []core.CanonicalRecord
}

func byProvider(records []core.CanonicalRecord) []providerGroup {
	var groups []providerGroup
	index := make(map[core.Provider]int)
	for _, rec := range records {
		i, ok := index[rec.Provider]
		if !ok {
			i = len(groups)
			index[rec.Provider] = i
			groups = append(groups, providerGroup{provider: rec.Provider})
		}
		groups[i].records = append(groups[i].records, rec)
	}
	return groups
}
