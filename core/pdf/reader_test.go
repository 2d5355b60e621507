package pdf

import (
	"io"
	"log/slog"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

func writeFixture(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pricelist.pdf")

	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	for i, line := range lines {
		doc.Text(40, float64(60+i*20), line)
	}
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatalf("failed to write PDF fixture: %v", err)
	}
	return path
}

func TestReadPages(t *testing.T) {
	path := writeFixture(t, "APPLIANCES", "Dishwasher A $500")

	pages, err := ReadPages(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 1 || pages[0].Number != 1 {
		t.Fatalf("expected one numbered page, got %+v", pages)
	}
}

func TestReadPagesSegmentsIntoLines(t *testing.T) {
	lines := []string{"Price List 2025", "APPLIANCES", "Dishwasher A $500", "Stainless steel option.", "Refrigerator A $1200"}
	pages, err := ReadPages(writeFixture(t, lines...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected one page, got %d", len(pages))
	}

	got := Segment(pages[0].Words)
	if !reflect.DeepEqual(got, lines) {
		t.Fatalf("expected lines %q, got %q", lines, got)
	}

	patterns, err := ParsePatterns(strings.NewReader(testConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := NewMachine(patterns, slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.FeedPage(pages[0])
	items, raw := m.Finish()

	if len(raw) != len(lines) || raw[0].Page != 1 {
		t.Errorf("expected every line kept as raw, got %+v", raw)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %+v", items)
	}
	if items[0].Item != "Dishwasher" || items[0].UnitPrice != "$500" || items[0].Description != "Stainless steel option." {
		t.Errorf("unexpected first item %+v", items[0])
	}
	if items[1].Item != "Refrigerator" || items[1].UnitPrice != "$1200" || items[1].Description != "" {
		t.Errorf("unexpected second item %+v", items[1])
	}
}

func TestReadPagesMissingFile(t *testing.T) {
	if _, err := ReadPages(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
