package feed

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		token      string
		wantBucket Bucket
		wantValue  string
	}{
		{"Generally Available", BucketStatus, "Generally Available"},
		{"In preview", BucketStatus, "In Preview"},
		{"preview", BucketStatus, "In Preview"},
		{"Retiring", BucketStatus, "Retirement"},
		{"Features", BucketUpdateType, "Features"},
		{"Retirements", BucketUpdateType, "Retirements"},
		{"Security", BucketUpdateType, "Security"},
		{"Compute", BucketCategory, "Compute"},
		{"AI + machine learning", BucketCategory, "AI + machine learning"},
		{"Azure Kubernetes Service (AKS)", BucketProduct, "Azure Kubernetes Service (AKS)"},
		{"compute", BucketProduct, "compute"},
	}

	for _, tt := range tests {
		bucket, value := Classify(tt.token)
		if bucket != tt.wantBucket || value != tt.wantValue {
			t.Errorf("Classify(%q) = (%s, %q), want (%s, %q)", tt.token, bucket, value, tt.wantBucket, tt.wantValue)
		}
	}
}

func TestClassifyClosedVocabularies(t *testing.T) {
	for token := range updateTypes {
		if bucket, _ := Classify(token); bucket != BucketUpdateType {
			t.Errorf("expected update type token %q to classify as update_type, got %s", token, bucket)
		}
	}
	for token := range knownCategories {
		if updateTypes[token] {
			continue
		}
		if bucket, _ := Classify(token); bucket != BucketCategory {
			t.Errorf("expected category token %q to classify as category, got %s", token, bucket)
		}
	}
}
