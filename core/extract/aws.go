package extract

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/updatesheet/core"
	"github.com/gaurav-prasanna/updatesheet/core/normalize"
)

var (
	awsContentSelectors = []string{"div.wn-body", "div.aws-text-box", "article", "main#main-content"}

	monthDayYear  = regexp.MustCompile(`(\w+ \d{1,2}, \d{4})`)
	postedOnText  = regexp.MustCompile(`(?i)Posted On: \w+ \d{1,2}, \d{4}`)
	leadingDate   = regexp.MustCompile(`^\s*\w+ \d{1,2}, \d{4}`)
	postBodyToken = `"postBody":`
)

const (
	awsBodyBlocks = "p, li, h1, h2, h3, h4, h5, h6"
	awsPageBlocks = "p, li"
)

// awsPostPayload is the embedded JSON shape that carries the post body HTML.
type awsPostPayload struct {
	Data struct {
		Items []struct {
			Fields struct {
				PostBody string `json:"postBody"`
			} `json:"fields"`
		} `json:"items"`
	} `json:"data"`
}

// AWSExtractor builds records from AWS "What's New" detail pages.
type AWSExtractor struct {
	describer describer
	logger    *slog.Logger
}

// NewAWS creates an AWSExtractor. format is FormatText or FormatMarkdown.
func NewAWS(format string, logger *slog.Logger) *AWSExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &AWSExtractor{describer: newDescriber(format), logger: logger}
}

// Extract fuses the detail page with its feed item.
func (e *AWSExtractor) Extract(page *core.FetchResult, item core.FeedItem) (*core.CanonicalRecord, error) {
	doc, err := parseHTML(page.HTML)
	if err != nil {
		return nil, err
	}

	description, links := e.content(doc, item.URL)

	return &core.CanonicalRecord{
		Provider:    core.ProviderAWS,
		Title:       item.Title,
		URL:         item.URL,
		DatePosted:  e.date(doc, item.DatePosted),
		Description: description,
		Links:       links,
		Product:     ProductFromTitle(item.Title),
	}, nil
}

// date prefers an on-page timestamp: the first <time datetime>, then the
// post-date paragraph, then any "Posted On:" text. feedDate is already formatted.
func (e *AWSExtractor) date(doc *goquery.Document, feedDate string) string {
	if dt, ok := doc.Find("time").First().Attr("datetime"); ok && strings.TrimSpace(dt) != "" {
		return normalize.FormatDate(strings.TrimSpace(dt))
	}
	if p := doc.Find("p.wn-post-date").First(); p.Length() > 0 {
		if m := monthDayYear.FindStringSubmatch(p.Text()); m != nil {
			return normalize.FormatDate(m[1])
		}
	}
	if text := findTextNode(doc.Selection, postedOnText); text != "" {
		if m := monthDayYear.FindStringSubmatch(text); m != nil {
			return normalize.FormatDate(m[1])
		}
	}
	return normalize.OrNA(feedDate)
}

// content tries the embedded post body first and then the container cascade.
func (e *AWSExtractor) content(doc *goquery.Document, pageURL string) (string, string) {
	if body, ok := e.postBody(doc); ok {
		if fragment, err := parseHTML(body); err == nil {
			links := newLinkSet()
			links.collectLinks(fragment.Selection, pageURL)
			if text, err := e.describer.describe(fragment.Find("body"), awsBodyBlocks); err == nil {
				return e.finish(text), links.String()
			}
		}
		e.logger.Debug("embedded post body unusable, trying page selectors", "url", pageURL)
	}

	container := firstMatch(doc.Selection, awsContentSelectors)
	if container == nil {
		e.logger.Warn("no content container found", "url", pageURL)
		return core.NA, core.NA
	}
	links := newLinkSet()
	links.collectLinks(container, pageURL)
	text, err := e.describer.describe(container, awsPageBlocks)
	if err != nil {
		e.logger.Warn("describing content failed", "url", pageURL, "error", err)
		return core.NA, links.String()
	}
	return e.finish(text), links.String()
}

// postBody returns the post body HTML from the first JSON script that has one.
func (e *AWSExtractor) postBody(doc *goquery.Document) (string, bool) {
	var body string
	doc.Find(`script[type="application/json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := s.Text()
		if !strings.Contains(raw, postBodyToken) {
			return true
		}
		var payload awsPostPayload
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			e.logger.Debug("skipping malformed JSON script", "error", err)
			return true
		}
		if len(payload.Data.Items) > 0 && payload.Data.Items[0].Fields.PostBody != "" {
			body = payload.Data.Items[0].Fields.PostBody
			return false
		}
		return true
	})
	return body, body != ""
}

// finish collapses blank lines and strips a leading "Posted On:" line that is
// followed by a date line.
func (e *AWSExtractor) finish(text string) string {
	if e.describer.format == FormatText {
		text = normalize.CollapseBlankLines(text)
		if strings.HasPrefix(strings.ToLower(text), "posted on:") && strings.Contains(text, "\n") {
			lines := strings.SplitN(text, "\n", 3)
			if leadingDate.MatchString(strings.TrimSpace(lines[1])) {
				text = ""
				if len(lines) > 2 {
					text = strings.TrimSpace(lines[2])
				}
			}
		}
	}
	return normalize.OrNA(text)
}

// findTextNode returns the first text node under root that pattern matches.
func findTextNode(root *goquery.Selection, pattern *regexp.Regexp) string {
	var found string
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.TextNode && pattern.MatchString(n.Data) {
			found = n.Data
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	for _, n := range root.Nodes {
		if walk(n) {
			break
		}
	}
	return found
}
