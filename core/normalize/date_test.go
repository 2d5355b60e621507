package normalize

import "testing"

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Mon, 02 Jun 2025 18:00:00 GMT", "06/02/2025"},
		{"Tue, 3 Jun 2025 10:15:00 +0000", "06/03/2025"},
		{"2025-06-02T10:00:00Z", "06/02/2025"},
		{"2025-06-02T23:30:00.123+05:30", "06/02/2025"},
		{"2025-06-02", "06/02/2025"},
		{"June 2, 2025", "06/02/2025"},
		{"December 31, 2024", "12/31/2024"},
		{"02 Jun 2025 18:00:00 +0000", "06/02/2025"},
		{"Wed, 04 Jun 2025 09:30:00 Z", "06/04/2025"},
		{"2 June 2025 18:00:00 +0000", "06/02/2025"},
		{"2025-06-02 10:00:00", "06/02/2025"},
		{"", "N/A"},
		{"N/A", "N/A"},
		{"sometime last week", "sometime last week"},
	}

	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDateKeepsSourceOffset(t *testing.T) {
	// 23:30 at +05:30 is still June 2 locally even though it is 18:00 UTC.
	if got := FormatDate("2025-06-02T23:30:00+05:30"); got != "06/02/2025" {
		t.Fatalf("expected source-local date 06/02/2025, got %q", got)
	}
	// Just after midnight at -08:00 stays on the earlier day.
	if got := FormatDate("Sun, 1 Jun 2025 23:59:00 -0800"); got != "06/01/2025" {
		t.Fatalf("expected 06/01/2025, got %q", got)
	}
}

func TestFormatDateLeavesFormattedDateAlone(t *testing.T) {
	if got := FormatDate("06/02/2025"); got != "06/02/2025" {
		t.Fatalf("expected already formatted date to be returned as is, got %q", got)
	}
}
