package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	blankRun     = regexp.MustCompile(`\n\s*\n+`)
	multiNewline = regexp.MustCompile(`\n{3,}`)
)

// CollapseBlankLines folds any run of blank lines into a single newline and
// trims the result.
func CollapseBlankLines(s string) string {
	return strings.TrimSpace(blankRun.ReplaceAllString(s, "\n"))
}

// Squash composes s to NFC and collapses all whitespace, NBSP included, to
// single spaces. Characters themselves are never rewritten.
func Squash(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// JoinOrNA joins values with ", " or returns "N/A" for an empty list.
func JoinOrNA(values []string) string {
	if len(values) == 0 {
		return "N/A"
	}
	return strings.Join(values, ", ")
}

// OrNA returns s, or "N/A" when s is blank.
func OrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// IsNA reports whether s carries no value: empty or the "N/A" sentinel.
func IsNA(s string) bool {
	return s == "" || s == "N/A"
}
