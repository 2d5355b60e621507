package pdf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParsePatternsDefaults(t *testing.T) {
	p := testPatterns(t)

	if len(p.Header) != 2 || len(p.Footer) != 1 {
		t.Fatalf("expected 2 header and 1 footer patterns, got %d and %d", len(p.Header), len(p.Footer))
	}
	if p.FirstSection != "APPLIANCES" {
		t.Errorf("expected default first section, got %q", p.FirstSection)
	}
	if len(p.IgnoreSections) != 1 || p.IgnoreSections[0] != "7D" {
		t.Errorf("expected default ignore sections, got %q", p.IgnoreSections)
	}

	anchored, err := ParsePatterns(strings.NewReader("[HEADER]\nh\n[FOOTER]\nf\n[ITEM]\n(SKU\\d+) (\\d+)\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !anchored.Item.MatchString("SKU1 5") {
		t.Error("expected item pattern to match at line start")
	}
	if anchored.Item.MatchString("see SKU1 5") {
		t.Error("item pattern should only match from the start of the line")
	}
}

func TestParsePatternsOptionalSections(t *testing.T) {
	cfg := testConfig + `
[FIRST_SECTION]
CABINETRY
[IGNORE_SECTIONS]
7D
9X
`
	p, err := ParsePatterns(strings.NewReader(cfg))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.FirstSection != "CABINETRY" {
		t.Errorf("expected CABINETRY, got %q", p.FirstSection)
	}
	if len(p.IgnoreSections) != 2 {
		t.Errorf("expected 2 ignore sections, got %q", p.IgnoreSections)
	}
}

func TestParsePatternsMissingSections(t *testing.T) {
	tests := map[string]string{
		"no header": "[FOOTER]\nx\n[ITEM]\n(a) (b)\n",
		"no footer": "[HEADER]\nx\n[ITEM]\n(a) (b)\n",
		"no item":   "[HEADER]\nx\n[FOOTER]\ny\n",
		"empty":     "# nothing here\n",
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePatterns(strings.NewReader(cfg))
			if !errors.Is(err, ErrMissingSection) {
				t.Fatalf("expected ErrMissingSection, got %v", err)
			}
		})
	}
}

func TestParsePatternsRejectsBadItemPattern(t *testing.T) {
	cases := []string{
		"[HEADER]\nx\n[FOOTER]\ny\n[ITEM]\n(only one group)\n",
		"[HEADER]\nx\n[FOOTER]\ny\n[ITEM]\n(unclosed\n",
		"[HEADER]\n(bad\n[FOOTER]\ny\n[ITEM]\n(a) (b)\n",
	}
	for _, cfg := range cases {
		if _, err := ParsePatterns(strings.NewReader(cfg)); err == nil {
			t.Errorf("expected error for config %q", cfg)
		}
	}
}

func TestLoadPatterns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadPatterns(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := LoadPatterns(filepath.Join(dir, "missing.config")); !errors.Is(err, ErrMissingConfig) {
		t.Fatalf("expected ErrMissingConfig, got %v", err)
	}
}

func TestLocateConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.config")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	got, err := LocateConfig(path)
	if err != nil || got != path {
		t.Fatalf("expected explicit path, got %q (%v)", got, err)
	}
	if _, err := LocateConfig(filepath.Join(dir, "nope.config")); !errors.Is(err, ErrMissingConfig) {
		t.Fatalf("expected ErrMissingConfig, got %v", err)
	}
}
