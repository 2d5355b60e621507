package pdf

import (
	"math"
	"strings"
)

const (
	// Glyphs further apart than this horizontally start a new word.
	wordGapTolerance = 3.0
	// Glyphs further apart than this vertically start a new word.
	baselineTolerance = 3.0
)

// Glyph is one positioned text run as decoded from a content stream.
type Glyph struct {
	S    string
	X, Y float64
	W    float64
}

// Word is a run of adjacent glyphs on one baseline. Spaces inside the run are
// kept, so a word may hold a whole phrase.
type Word struct {
	Text string
	X, Y float64
}

// AssembleWords merges glyphs into words in stream order. A word ends at a
// baseline change or a horizontal gap; blank words are dropped.
func AssembleWords(glyphs []Glyph) []Word {
	var (
		words []Word
		buf   strings.Builder
		cur   Word
		end   float64
		open  bool
	)
	flush := func() {
		if open {
			if text := strings.Join(strings.Fields(buf.String()), " "); text != "" {
				cur.Text = text
				words = append(words, cur)
			}
		}
		buf.Reset()
		open = false
	}

	for _, g := range glyphs {
		if open && (math.Abs(g.Y-cur.Y) > baselineTolerance || g.X-end > wordGapTolerance || g.X < cur.X) {
			flush()
		}
		if !open {
			cur = Word{X: g.X, Y: g.Y}
			open = true
		}
		buf.WriteString(g.S)
		end = g.X + g.W
	}
	flush()
	return words
}
