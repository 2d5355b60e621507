package pdf

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/gaurav-prasanna/updatesheet/core"
)

// CutOffMarker is written to every extracted item.
const CutOffMarker = "A"

// fixedNonSections are uppercase lines that are never section headings.
var fixedNonSections = []string{"A", "TBD", "OPTION SELECTIONS"}

// Machine is the price-list state machine. Before the first section heading
// every line is discarded; afterwards each item line opens a pending item
// that collects description lines until the next item or section.
type Machine struct {
	patterns *Patterns
	logger   *slog.Logger
	skip     map[string]bool

	section     string // empty until the first section is seen
	pending     *core.PriceListItem
	description []string

	items []core.PriceListItem
	raw   []core.RawLine
}

// NewMachine creates a Machine for the given patterns.
func NewMachine(patterns *Patterns, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.Default()
	}
	skip := make(map[string]bool)
	for _, s := range fixedNonSections {
		skip[s] = true
	}
	for _, s := range patterns.IgnoreSections {
		skip[s] = true
	}
	return &Machine{patterns: patterns, logger: logger, skip: skip}
}

// Feed processes one segmented line from page.
func (m *Machine) Feed(page int, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	m.raw = append(m.raw, core.RawLine{Page: page, Line: line})

	if m.ignored(line) {
		return
	}

	if isUpper(line) && !m.skip[line] {
		switch {
		case m.section == "" && line == m.patterns.FirstSection:
			m.section = line
			m.logger.Debug("found first section", "section", line, "page", page)
		case m.section != "":
			m.flush()
			m.section = line
			m.logger.Debug("found section", "section", line, "page", page)
		}
		return
	}

	if m.section == "" {
		return
	}

	if groups := m.patterns.Item.FindStringSubmatch(line); groups != nil {
		m.flush()
		m.pending = &core.PriceListItem{
			Section:   m.section,
			Item:      strings.TrimSpace(groups[1]),
			UnitPrice: strings.TrimSpace(groups[2]),
			CutOff:    CutOffMarker,
		}
		return
	}

	if m.pending != nil {
		m.description = append(m.description, line)
	}
}

// FeedPage segments a page's words and feeds each line.
func (m *Machine) FeedPage(p Page) {
	for _, line := range Segment(p.Words) {
		m.Feed(p.Number, line)
	}
}

// Finish flushes the last pending item and returns everything extracted.
func (m *Machine) Finish() ([]core.PriceListItem, []core.RawLine) {
	m.flush()
	return m.items, m.raw
}

func (m *Machine) ignored(line string) bool {
	for _, re := range m.patterns.Header {
		if re.MatchString(line) {
			return true
		}
	}
	for _, re := range m.patterns.Footer {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func (m *Machine) flush() {
	if m.pending == nil {
		return
	}
	m.pending.Description = strings.Join(m.description, " ")
	m.items = append(m.items, *m.pending)
	m.logger.Debug("saved item", "item", m.pending.Item, "section", m.pending.Section)
	m.pending = nil
	m.description = nil
}

// isUpper reports whether s has at least one cased letter and no lowercase ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
