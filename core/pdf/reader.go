// Package pdf turns a price-list PDF into priced items. Pages are read as
// positioned glyphs, assembled into words, segmented into lines, and fed
// through a section/item state machine driven by configured patterns.
package pdf

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// Page is the ordered word stream of one PDF page.
type Page struct {
	Number int
	Words  []Word
}

// ReadPages opens the PDF at path and returns every page's words in content
// stream order. Pages without a page object yield an empty word list.
func ReadPages(path string) (pages []Page, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	reader, err := pdf.NewReader(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF reader: %w", err)
	}

	// The reader panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("reading %s: %v", path, r)
		}
	}()

	count := reader.NumPage()
	pages = make([]Page, 0, count)
	for i := 1; i <= count; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, Page{Number: i})
			continue
		}
		content := page.Content()
		glyphs := make([]Glyph, 0, len(content.Text))
		for _, t := range content.Text {
			glyphs = append(glyphs, Glyph{S: t.S, X: t.X, Y: t.Y, W: t.W})
		}
		pages = append(pages, Page{Number: i, Words: AssembleWords(glyphs)})
	}
	return pages, nil
}
