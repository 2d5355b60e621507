package extract

import "testing"

func TestProductFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		// "S3" is captured but too short, so the known list supplies it.
		{"Amazon S3 now supports conditional writes", "S3"},
		{"AWS Lambda adds support for Python 3.13", "Lambda"},
		{"Amazon EC2 C7g instances now available in Asia Pacific", "EC2 C7g instances"},
		{"Amazon Bedrock announces new guardrails", "Bedrock"},
		{"Amazon CloudWatch Logs, now with field indexing", "CloudWatch Logs"},
		{"New Route 53 resolver rules", "Route 53"},
		{"New console experience for EKS", "EKS"},
		{"Quarterly pricing update", "N/A"},
		{"", "N/A"},
	}

	for _, tt := range tests {
		if got := ProductFromTitle(tt.title); got != tt.want {
			t.Errorf("ProductFromTitle(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
