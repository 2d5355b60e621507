package pdf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ConfigFileName is the pattern file looked up when no path is given.
const ConfigFileName = "pricelist.config"

const (
	defaultFirstSection = "APPLIANCES"
	defaultIgnoreToken  = "7D"
)

var (
	// ErrMissingConfig means no pattern file could be found or opened.
	ErrMissingConfig = errors.New("pattern config not found")
	// ErrMissingSection means a required section is absent or empty.
	ErrMissingSection = errors.New("pattern config section missing")
)

// Patterns drives the price-list state machine.
type Patterns struct {
	Header []*regexp.Regexp
	Footer []*regexp.Regexp
	// Item must have exactly two groups: item text and price. It is
	// anchored at the start of the line.
	Item *regexp.Regexp

	FirstSection   string
	IgnoreSections []string
}

// LocateConfig resolves the pattern file: explicit wins, then the working
// directory, then the directory of the running executable.
func LocateConfig(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("%w: %s", ErrMissingConfig, explicit)
		}
		return explicit, nil
	}

	candidates := []string{ConfigFileName}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), ConfigFileName))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: looked for %s", ErrMissingConfig, strings.Join(candidates, ", "))
}

// LoadPatterns reads and validates the pattern file at path.
func LoadPatterns(path string) (*Patterns, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}
	defer f.Close()

	p, err := ParsePatterns(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return p, nil
}

// ParsePatterns parses the sectioned pattern format. Blank lines and lines
// starting with # are ignored. [HEADER] and [FOOTER] take one regex per line;
// [ITEM] keeps its last line. [FIRST_SECTION] and [IGNORE_SECTIONS] are optional.
func ParsePatterns(r io.Reader) (*Patterns, error) {
	var (
		section                string
		header, footer, ignore []string
		item, first            string
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch line {
		case "[HEADER]", "[FOOTER]", "[ITEM]", "[FIRST_SECTION]", "[IGNORE_SECTIONS]":
			section = line
			continue
		}
		switch section {
		case "[HEADER]":
			header = append(header, line)
		case "[FOOTER]":
			footer = append(footer, line)
		case "[ITEM]":
			item = line
		case "[FIRST_SECTION]":
			first = line
		case "[IGNORE_SECTIONS]":
			ignore = append(ignore, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning pattern config: %w", err)
	}

	if len(header) == 0 {
		return nil, fmt.Errorf("%w: no header patterns", ErrMissingSection)
	}
	if len(footer) == 0 {
		return nil, fmt.Errorf("%w: no footer patterns", ErrMissingSection)
	}
	if item == "" {
		return nil, fmt.Errorf("%w: no item line pattern", ErrMissingSection)
	}

	p := &Patterns{FirstSection: defaultFirstSection, IgnoreSections: []string{defaultIgnoreToken}}
	if first != "" {
		p.FirstSection = first
	}
	if len(ignore) > 0 {
		p.IgnoreSections = ignore
	}

	var err error
	if p.Header, err = compileAll(header); err != nil {
		return nil, fmt.Errorf("header pattern: %w", err)
	}
	if p.Footer, err = compileAll(footer); err != nil {
		return nil, fmt.Errorf("footer pattern: %w", err)
	}
	if p.Item, err = regexp.Compile(`^(?:` + item + `)`); err != nil {
		return nil, fmt.Errorf("item pattern: %w", err)
	}
	if n := p.Item.NumSubexp(); n != 2 {
		return nil, fmt.Errorf("item pattern must have 2 groups (item, price), has %d", n)
	}
	return p, nil
}

func compileAll(exprs []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		re, err := regexp.Compile(e)
		if err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	return out, nil
}
