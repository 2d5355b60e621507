package normalize

import (
	"regexp"
	"strings"
)

// Canonical Azure status vocabulary.
const (
	StatusInPreview          = "In Preview"
	StatusPublicPreview      = "Public Preview"
	StatusPrivatePreview     = "Private Preview"
	StatusGenerallyAvailable = "Generally Available"
	StatusRetirement         = "Retirement"
	StatusInDevelopment      = "In Development"
	StatusLaunched           = "Launched"
)

var statusAliases = map[string]string{
	"in preview":          StatusInPreview,
	"in preview.":         StatusInPreview,
	"preview":             StatusInPreview,
	"public preview":      StatusPublicPreview,
	"private preview":     StatusPrivatePreview,
	"generally available": StatusGenerallyAvailable,
	"ga":                  StatusGenerallyAvailable,
	"retirement":          StatusRetirement,
	"retiring":            StatusRetirement,
	"retired":             StatusRetirement,
	"in development":      StatusInDevelopment,
	"launched":            StatusLaunched,
}

// NormalizeStatus maps a free-text status phrase to the canonical vocabulary.
// Matching is case-insensitive on the trimmed phrase; unknown phrases pass
// through unchanged and blank input becomes "N/A".
func NormalizeStatus(status string) string {
	if IsNA(status) {
		return "N/A"
	}
	if canonical, ok := statusAliases[strings.ToLower(strings.TrimSpace(status))]; ok {
		return canonical
	}
	return status
}

// IsCanonicalStatus reports whether s is one of the canonical status values.
func IsCanonicalStatus(s string) bool {
	switch s {
	case StatusInPreview, StatusPublicPreview, StatusPrivatePreview,
		StatusGenerallyAvailable, StatusRetirement, StatusInDevelopment, StatusLaunched:
		return true
	}
	return false
}

type titlePattern struct {
	re     *regexp.Regexp
	status string
}

// titlePatterns is ordered: GA phrases precede the bare "available" launch
// pattern so that GA wins on ambiguous titles.
var titlePatterns = []titlePattern{
	{regexp.MustCompile(`(?i)\bGenerally\s+Available\b`), StatusGenerallyAvailable},
	{regexp.MustCompile(`(?i)\bGA\b`), StatusGenerallyAvailable},
	{regexp.MustCompile(`(?i)\b(is\s+)?(now\s+)?available\s+(in|for)\b`), StatusGenerallyAvailable},
	{regexp.MustCompile(`(?i)\b(is\s+)?(now\s+)?(generally\s+)available\b`), StatusGenerallyAvailable},

	{regexp.MustCompile(`(?i)\bPublic\s+Preview\b`), StatusPublicPreview},
	{regexp.MustCompile(`(?i)\bPrivate\s+Preview\b`), StatusPrivatePreview},
	{regexp.MustCompile(`(?i)\bIn\s+Preview\b`), StatusInPreview},
	{regexp.MustCompile(`(?i)\b(now\s+)?(in\s+)?preview\b`), StatusInPreview},
	{regexp.MustCompile(`(?i)\b(now\s+)?(available\s+)?in\s+preview\b`), StatusInPreview},

	{regexp.MustCompile(`(?i)\bRetirement\b`), StatusRetirement},
	{regexp.MustCompile(`(?i)\bRetir(ing|ed|ement)\b`), StatusRetirement},
	{regexp.MustCompile(`(?i)\bEnd(\s+of)?\s+Support\b`), StatusRetirement},
	{regexp.MustCompile(`(?i)\bDeprecated?\b`), StatusRetirement},
	{regexp.MustCompile(`(?i)\bSunset(ing|ted)?\b`), StatusRetirement},

	{regexp.MustCompile(`(?i)\b(now\s+)?Available\b`), StatusLaunched},
	{regexp.MustCompile(`(?i)\bLaunch(ing|ed)?\b`), StatusLaunched},
	{regexp.MustCompile(`(?i)\bIntroduc(ing|ed)\b`), StatusLaunched},
	{regexp.MustCompile(`(?i)\bReleas(ing|ed)\b`), StatusLaunched},
	{regexp.MustCompile(`(?i)\bAnnouncing\b`), StatusInDevelopment},
}

// StatusFromTitle infers a status from an update title. The first matching
// pattern wins. ok is false when nothing matched.
func StatusFromTitle(title string) (status string, ok bool) {
	if title == "" {
		return "", false
	}
	for _, p := range titlePatterns {
		if p.re.MatchString(title) {
			return NormalizeStatus(p.status), true
		}
	}
	return "", false
}
