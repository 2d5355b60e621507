package pdf

import (
	"math"
	"strings"
)

// LineThreshold is the vertical distance from a line's first word beyond
// which a word starts a new line.
const LineThreshold = 2.0

// Segment groups words into text lines in a single pass. A word joins the
// current line while its Y stays within LineThreshold of the line's first
// word. Words are never reordered, so they must arrive in reading order.
func Segment(words []Word) []string {
	var (
		lines  []string
		line   []string
		anchor float64
	)
	for i, w := range words {
		if i == 0 {
			anchor = w.Y
		}
		if math.Abs(w.Y-anchor) > LineThreshold {
			if len(line) > 0 {
				lines = append(lines, strings.TrimSpace(strings.Join(line, " ")))
			}
			line = line[:0]
			anchor = w.Y
		}
		line = append(line, w.Text)
	}
	if len(line) > 0 {
		lines = append(lines, strings.TrimSpace(strings.Join(line, " ")))
	}
	return lines
}
