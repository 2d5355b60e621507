package normalize

import "testing"

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"in preview", StatusInPreview},
		{"In Preview.", StatusInPreview},
		{"  PREVIEW ", StatusInPreview},
		{"public preview", StatusPublicPreview},
		{"Private Preview", StatusPrivatePreview},
		{"GA", StatusGenerallyAvailable},
		{"generally available", StatusGenerallyAvailable},
		{"Retiring", StatusRetirement},
		{"retired", StatusRetirement},
		{"in development", StatusInDevelopment},
		{"LAUNCHED", StatusLaunched},
		{"", "N/A"},
		{"N/A", "N/A"},
		{"Coming soon", "Coming soon"},
	}

	for _, tt := range tests {
		if got := NormalizeStatus(tt.in); got != tt.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeStatusIsIdempotent(t *testing.T) {
	inputs := []string{"preview", "ga", "retiring", "Coming soon", "", "Launched"}
	for _, in := range inputs {
		once := NormalizeStatus(in)
		if twice := NormalizeStatus(once); twice != once {
			t.Errorf("NormalizeStatus not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestStatusFromTitle(t *testing.T) {
	tests := []struct {
		title  string
		want   string
		wantOK bool
	}{
		{"Generally Available: Azure Container Apps serverless GPUs", StatusGenerallyAvailable, true},
		{"Azure Monitor alerts GA in all regions", StatusGenerallyAvailable, true},
		{"Azure Files is now available in Brazil South", StatusGenerallyAvailable, true},
		{"Public Preview: Azure Functions flex consumption", StatusPublicPreview, true},
		{"Private preview: confidential containers", StatusPrivatePreview, true},
		{"Azure Load Testing in preview", StatusInPreview, true},
		{"Retirement: Basic SKU public IP addresses", StatusRetirement, true},
		{"End of Support for TLS 1.0 on Azure Storage", StatusRetirement, true},
		{"Classic alerts deprecated", StatusRetirement, true},
		{"Launching the new Azure portal experience", StatusLaunched, true},
		{"Introducing Azure Chaos Studio", StatusLaunched, true},
		{"Announcing a new quota API", StatusInDevelopment, true},
		{"Azure SQL update notes", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := StatusFromTitle(tt.title)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("StatusFromTitle(%q) = (%q, %v), want (%q, %v)", tt.title, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestStatusFromTitlePrefersGeneralAvailability(t *testing.T) {
	got, ok := StatusFromTitle("Azure Backup now available in preview for SAP HANA")
	if !ok {
		t.Fatal("expected a status")
	}
	// "available in" matches a GA pattern, which is checked before any preview pattern.
	if got != StatusGenerallyAvailable {
		t.Fatalf("expected %q, got %q", StatusGenerallyAvailable, got)
	}
}
