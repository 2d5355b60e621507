package feed

import (
	"strings"

	"github.com/gaurav-prasanna/updatesheet/core/normalize"
)

// Bucket is the Azure metadata field a category token routes into.
type Bucket int

const (
	BucketProduct Bucket = iota
	BucketStatus
	BucketUpdateType
	BucketCategory
)

func (b Bucket) String() string {
	switch b {
	case BucketStatus:
		return "status"
	case BucketUpdateType:
		return "update_type"
	case BucketCategory:
		return "category"
	default:
		return "product"
	}
}

var updateTypes = map[string]bool{
	"Compliance":            true,
	"Features":              true,
	"Gallery":               true,
	"Management":            true,
	"Microsoft Build":       true,
	"Microsoft Connect":     true,
	"Microsoft Ignite":      true,
	"Microsoft Inspire":     true,
	"Open Source":           true,
	"Operating System":      true,
	"Pricing & Offerings":   true,
	"Regions & Datacenters": true,
	"Retirements":           true,
	"SDK and Tools":         true,
	"Security":              true,
	"Services":              true,
}

// Azure solution areas. "Security" also appears in updateTypes, which wins.
var knownCategories = map[string]bool{
	"AI + machine learning":          true,
	"Analytics":                      true,
	"Compute":                        true,
	"Containers":                     true,
	"Databases":                      true,
	"Developer tools":                true,
	"DevOps":                         true,
	"Hybrid + multicloud":            true,
	"Identity":                       true,
	"Integration":                    true,
	"Internet of Things":             true,
	"Management and governance":      true,
	"Media":                          true,
	"Migration":                      true,
	"Mixed reality":                  true,
	"Mobile":                         true,
	"Networking":                     true,
	"Security":                       true,
	"Storage":                        true,
	"Virtual desktop infrastructure": true,
	"Web":                            true,
}

// Classify routes one Azure feed category token. Tiers are tried in order:
// canonical status after normalization, update type, solution-area category,
// a bare preview marker, and finally product as the residual bucket.
// Matching is exact except for the status tier.
func Classify(token string) (Bucket, string) {
	if status := normalize.NormalizeStatus(token); normalize.IsCanonicalStatus(status) {
		return BucketStatus, status
	}
	if updateTypes[token] {
		return BucketUpdateType, token
	}
	if knownCategories[token] {
		return BucketCategory, token
	}
	if lower := strings.ToLower(token); lower == "in preview" || lower == "preview" {
		return BucketStatus, normalize.StatusInPreview
	}
	return BucketProduct, token
}
