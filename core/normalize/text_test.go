package normalize

import (
	"strings"
	"testing"
)

func TestCollapseBlankLines(t *testing.T) {
	in := "First paragraph.\n\n\n  \nSecond paragraph.\n \n\nThird.\n\n"
	want := "First paragraph.\nSecond paragraph.\nThird."
	if got := CollapseBlankLines(in); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSquash(t *testing.T) {
	in := "Amazon S3   now\n\tsupports tags"
	if got := Squash(in); got != "Amazon S3 now supports tags" {
		t.Fatalf("unexpected squash result %q", got)
	}
}

func TestSquashKeepsCharacters(t *testing.T) {
	in := "10\u00a0m²  per bucket, the ﬁrst Amazon™ service, cafe\u0301"
	want := "10 m² per bucket, the ﬁrst Amazon™ service, caf\u00e9"
	if got := Squash(in); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNAHelpers(t *testing.T) {
	if JoinOrNA(nil) != "N/A" {
		t.Error("expected N/A for empty list")
	}
	if got := JoinOrNA([]string{"Compute", "Storage"}); got != "Compute, Storage" {
		t.Errorf("unexpected join %q", got)
	}
	if OrNA("  ") != "N/A" || OrNA("x") != "x" {
		t.Error("OrNA mismatch")
	}
	if !IsNA("") || !IsNA("N/A") || IsNA("n/a ") {
		t.Error("IsNA mismatch")
	}
}

func TestMarkdownNormalizer(t *testing.T) {
	md, err := New().Normalize("<h2>Details</h2><p>Now <strong>available</strong>.</p><ul><li>One</li><li>Two</li></ul>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"## Details", "**available**", "- One", "- Two"} {
		if !strings.Contains(md, want) {
			t.Errorf("expected markdown to contain %q, got:\n%s", want, md)
		}
	}
}
