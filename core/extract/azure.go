package extract

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/updatesheet/core"
	"github.com/gaurav-prasanna/updatesheet/core/normalize"
)

var (
	azureContentSelectors = []string{
		"div.html-content",
		"section[aria-label='article body']",
		"div.article-details",
		"div.content-area",
		"div.main-content",
		"article.content-body",
		"article",
		"div.row > div.column.medium-9",
		"div.row > div.col-md-9",
		"div.ocr-faq-item__body",
		"div.accordion-item.col-xl-8",
		"div[role='main']",
	}

	azureNoiseClass = regexp.MustCompile(`social|share|rating|feedback|related`)
	dateClass       = regexp.MustCompile(`(?i)date|time|published|updated`)
	labeledDate     = regexp.MustCompile(`(?i)(?:Published|Updated):\s*(\w+\s+\d{1,2},\s+\d{4}|\d{4}-\d{2}-\d{2})`)
)

const (
	azureBlocks       = "p, li"
	maxDateLabelChars = 100
)

// AzureExtractor builds records from Azure update pages, reconciling page
// metadata with what the feed already supplied.
type AzureExtractor struct {
	describer describer
	logger    *slog.Logger
}

// NewAzure creates an AzureExtractor. format is FormatText or FormatMarkdown.
func NewAzure(format string, logger *slog.Logger) *AzureExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &AzureExtractor{describer: newDescriber(format), logger: logger}
}

// Extract fuses the detail page with its feed item.
func (e *AzureExtractor) Extract(page *core.FetchResult, item core.FeedItem) (*core.CanonicalRecord, error) {
	doc, err := parseHTML(page.HTML)
	if err != nil {
		return nil, err
	}

	fromJSON := e.jsonMetadata(doc)
	date := item.DatePosted
	if normalize.IsNA(date) {
		date = pageDate(doc)
	}
	// Metadata is read before the content container is pruned.
	fromHTML := htmlMetadata(doc)
	description, links := e.content(doc, item.URL)
	meta := reconcile(fromHTML, fromJSON, item.Metadata())

	return &core.CanonicalRecord{
		Provider:    core.ProviderAzure,
		Title:       item.Title,
		URL:         item.URL,
		DatePosted:  date,
		Description: description,
		Links:       links,
		Status:      meta.Status,
		UpdateType:  meta.UpdateType,
		ProductList: meta.ProductList,
		Categories:  meta.Categories,
	}, nil
}

// jsonMetadata reads props.pageProps.pageData from the first embedded JSON
// script that has it, including the __NEXT_DATA__ block.
func (e *AzureExtractor) jsonMetadata(doc *goquery.Document) core.Metadata {
	scripts := doc.Find(`script[type="application/json"]`).AddSelection(doc.Find("script#__NEXT_DATA__"))

	var meta core.Metadata
	scripts.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return true
		}
		var root map[string]any
		if err := json.Unmarshal([]byte(raw), &root); err != nil {
			e.logger.Debug("skipping malformed JSON script", "error", err)
			return true
		}
		pageData, ok := dig(root, "props", "pageProps", "pageData").(map[string]any)
		if !ok || len(pageData) == 0 {
			return true
		}
		meta = core.Metadata{
			Status:      asText(pageData["status"]),
			UpdateType:  asText(pageData["updateType"]),
			ProductList: asList(pageData["services"]),
			Categories:  asList(pageData["categories"]),
		}
		return false
	})
	return meta
}

// content extracts the description and links from the first matching container.
func (e *AzureExtractor) content(doc *goquery.Document, pageURL string) (string, string) {
	container := firstMatch(doc.Selection, azureContentSelectors)
	if container == nil {
		e.logger.Warn("description element not found", "url", pageURL)
		return core.NA, core.NA
	}
	removeByClass(container, azureNoiseClass)

	links := newLinkSet()
	links.collectLinks(container, pageURL)

	text, err := e.describer.describe(container, azureBlocks)
	if err != nil {
		e.logger.Warn("describing content failed", "url", pageURL, "error", err)
		return core.NA, links.String()
	}
	return normalize.OrNA(text), links.String()
}

// pageDate looks for a publication date on the page: the article meta tag,
// then an element with a date-like class, then a short "Published:" or
// "Updated:" label.
func pageDate(doc *goquery.Document) string {
	if content, ok := doc.Find(`meta[property="article:published_time"]`).First().Attr("content"); ok && content != "" {
		return normalize.FormatDate(content)
	}

	dated := doc.Find("time, span, p, div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return dateClass.MatchString(class)
	}).First()
	if dated.Length() > 0 {
		var raw string
		if goquery.NodeName(dated) == "time" {
			raw, _ = dated.Attr("datetime")
		}
		if raw == "" {
			raw = normalize.Squash(dated.Text())
		}
		if raw != "" {
			return normalize.FormatDate(raw)
		}
	}

	label := doc.Find("p, div, span").FilterFunction(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		return (strings.Contains(text, "Published:") || strings.Contains(text, "Updated:")) &&
			utf8.RuneCountInString(text) < maxDateLabelChars
	}).First()
	if label.Length() > 0 {
		if m := labeledDate.FindStringSubmatch(label.Text()); m != nil {
			return normalize.FormatDate(m[1])
		}
	}
	return core.NA
}

func dig(v any, keys ...string) any {
	for _, k := range keys {
		m, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		v = m[k]
	}
	return v
}

// asText accepts a string or a list of strings.
func asText(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return asList(v)
}

// asList joins the string elements of a JSON array with ", ".
func asList(v any) string {
	list, ok := v.([]any)
	if !ok {
		return ""
	}
	var out []string
	for _, item := range list {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return strings.Join(out, ", ")
}
