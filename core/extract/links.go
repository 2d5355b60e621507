package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// linkSet keeps absolute URLs in first-seen order without duplicates.
type linkSet struct {
	items []string
	seen  map[string]bool
}

func newLinkSet() *linkSet {
	return &linkSet{seen: make(map[string]bool)}
}

// Add records u if it has not been seen before.
func (l *linkSet) Add(u string) {
	if u == "" || l.seen[u] {
		return
	}
	l.seen[u] = true
	l.items = append(l.items, u)
}

// String joins the links with commas, or returns "N/A" when empty.
func (l *linkSet) String() string {
	if len(l.items) == 0 {
		return "N/A"
	}
	return strings.Join(l.items, ",")
}

// collectLinks adds every a[href] under container, resolved against pageURL.
func (l *linkSet) collectLinks(container *goquery.Selection, pageURL string) {
	base, err := url.Parse(pageURL)
	if err != nil {
		base = &url.URL{}
	}
	container.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		l.Add(resolveURL(strings.TrimSpace(href), base))
	})
}

// resolveURL resolves a potentially relative URL against a base. Fragments
// and non-HTTP schemes are kept; an href that does not parse is kept as written.
func resolveURL(href string, base *url.URL) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(parsed).String()
}
