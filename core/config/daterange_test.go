package config

import (
	"errors"
	"testing"
)

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("06/01/2024", "06/30/2024")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !r.Active() {
		t.Error("Expected range to be active")
	}

	unpadded, err := ParseDateRange("6/1/2024", "6/30/2024")
	if err != nil {
		t.Fatalf("Expected unpadded dates to parse, got: %v", err)
	}
	if !unpadded.From.Equal(r.From) || !unpadded.To.Equal(r.To) {
		t.Errorf("Expected %v, got: %v", r, unpadded)
	}

	open, err := ParseDateRange("", "")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if open.Active() {
		t.Error("Expected empty range to be inactive")
	}
}

func TestParseDateRangeInvalid(t *testing.T) {
	tests := []struct{ from, to string }{
		{"2024-06-01", ""},
		{"", "13/45/2024"},
		{"07/01/2024", "06/01/2024"},
	}
	for _, tt := range tests {
		_, err := ParseDateRange(tt.from, tt.to)
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Errorf("ParseDateRange(%q, %q): expected ErrInvalidDateRange, got: %v", tt.from, tt.to, err)
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("ParseDateRange(%q, %q): expected ConfigError, got: %T", tt.from, tt.to, err)
		}
	}
}

func TestDateRangeKeep(t *testing.T) {
	r, err := ParseDateRange("06/01/2024", "06/30/2024")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	tests := []struct {
		date   string
		keep   bool
		usable bool
	}{
		{"06/01/2024", true, true},
		{"06/15/2024", true, true},
		{"06/30/2024", true, true},
		{"05/31/2024", false, true},
		{"07/01/2024", false, true},
		{"N/A", true, false},
		{"", true, false},
		{"Tue, 04 Jun 2024", true, false},
	}
	for _, tt := range tests {
		keep, usable := r.Keep(tt.date)
		if keep != tt.keep || usable != tt.usable {
			t.Errorf("Keep(%q) = (%v, %v), want (%v, %v)", tt.date, keep, usable, tt.keep, tt.usable)
		}
	}

	fromOnly, _ := ParseDateRange("06/01/2024", "")
	if keep, _ := fromOnly.Keep("12/31/2030"); !keep {
		t.Error("Expected open upper bound to keep later dates")
	}
}
