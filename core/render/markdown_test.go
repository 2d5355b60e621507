package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/updatesheet/core"
)

var digestRecords = []core.CanonicalRecord{
	{Provider: core.ProviderAzure, Title: "Generally Available: Container Apps GPUs", URL: "https://azure.example.com/1",
		DatePosted: "06/04/2025", Description: "GPUs are available.", Links: core.NA,
		Status: "Generally Available", UpdateType: "Features", ProductList: "Azure Container Apps", Categories: "Compute"},
	{Provider: core.ProviderAWS, Title: "Amazon S3 now supports conditional writes", URL: "https://aws.example.com/1",
		DatePosted: "06/02/2025", Description: core.NA, Links: core.NA, Product: "S3"},
	{Provider: core.ProviderAzure, Title: "Untitled", URL: core.NA, DatePosted: core.NA, Description: core.NA, Links: core.NA,
		Status: core.NA, UpdateType: core.NA, ProductList: core.NA, Categories: core.NA},
}

func TestMarkdownRendererDigest(t *testing.T) {
	data, err := NewMarkdownRenderer().Render(digestRecords)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	md := string(data)

	azure := strings.Index(md, "## Azure")
	aws := strings.Index(md, "## AWS")
	if azure < 0 || aws < 0 || azure > aws {
		t.Fatalf("Expected providers in order of first record, got:\n%s", md)
	}
	if strings.Count(md, "## Azure") != 1 {
		t.Errorf("Expected a single Azure section, got:\n%s", md)
	}

	for _, want := range []string{
		"### [Generally Available: Container Apps GPUs](https://azure.example.com/1)",
		"- Status: Generally Available",
		"GPUs are available.",
		"- Product: S3",
		"### Untitled\n",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Expected digest to contain %q, got:\n%s", want, md)
		}
	}
	if strings.Contains(md, "\nN/A\n") {
		t.Errorf("N/A descriptions should be omitted, got:\n%s", md)
	}
}

func TestMarkdownRendererEmpty(t *testing.T) {
	data, _ := NewMarkdownRenderer().Render(nil)
	if !strings.Contains(string(data), "No updates.") {
		t.Errorf("Expected empty digest note, got: %s", data)
	}
}

func TestPDFRenderer(t *testing.T) {
	data, err := NewPDFRenderer().Render(digestRecords)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("Expected PDF header, got: %q", data[:min(len(data), 16)])
	}
}

func TestForFormat(t *testing.T) {
	for format, ext := range map[string]string{FormatJSON: ".json", FormatMarkdown: ".md", FormatPDF: ".pdf"} {
		r, err := ForFormat(format)
		if err != nil {
			t.Fatalf("ForFormat(%q): unexpected error: %v", format, err)
		}
		if r.Extension() != ext {
			t.Errorf("ForFormat(%q): expected extension %s, got: %s", format, ext, r.Extension())
		}
	}
	if _, err := ForFormat("embeddings"); err == nil {
		t.Error("Expected error for unknown format")
	}
}
