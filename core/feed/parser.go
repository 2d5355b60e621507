// Package feed parses the AWS and Azure update feeds into feed items.
package feed

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/gaurav-prasanna/updatesheet/core"
	"github.com/gaurav-prasanna/updatesheet/core/normalize"
)

// Parser turns raw feed documents into FeedItems.
type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Load fetches the feed at url with fetcher and parses it for provider.
func (p *Parser) Load(ctx context.Context, fetcher core.Fetcher, provider core.Provider, url string) ([]core.FeedItem, error) {
	result, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s feed: %w", provider, err)
	}
	return p.Parse(provider, result.HTML)
}

// Parse parses a feed document. Missing item fields degrade to "N/A".
func (p *Parser) Parse(provider core.Provider, data string) ([]core.FeedItem, error) {
	parsed, err := p.gofeedParser.ParseString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s feed: %w", provider, err)
	}

	items := make([]core.FeedItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		if it == nil {
			continue
		}
		switch provider {
		case core.ProviderAzure:
			items = append(items, azureItem(it))
		default:
			items = append(items, awsItem(it))
		}
	}
	return items, nil
}

func awsItem(it *gofeed.Item) core.FeedItem {
	return core.FeedItem{
		Title:      normalize.OrNA(strings.TrimSpace(it.Title)),
		URL:        normalize.OrNA(strings.TrimSpace(it.Link)),
		DatePosted: normalize.FormatDate(strings.TrimSpace(it.Published)),
	}
}

// azureItem prefers the per-item lastBuildDate, which tracks the latest
// revision of an update, over pubDate.
func azureItem(it *gofeed.Item) core.FeedItem {
	title := normalize.OrNA(strings.TrimSpace(it.Title))

	date := strings.TrimSpace(it.Custom["lastBuildDate"])
	if date == "" {
		date = strings.TrimSpace(it.Published)
	}

	status := core.NA
	var updateTypes, products, categories []string
	for _, raw := range it.Categories {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		bucket, value := Classify(token)
		switch bucket {
		case BucketStatus:
			status = value
		case BucketUpdateType:
			updateTypes = append(updateTypes, value)
		case BucketCategory:
			categories = append(categories, value)
		default:
			products = append(products, value)
		}
	}

	if status == core.NA {
		if fromTitle, ok := normalize.StatusFromTitle(title); ok {
			status = fromTitle
		}
	}

	return core.FeedItem{
		Title:       title,
		URL:         normalize.OrNA(strings.TrimSpace(it.Link)),
		DatePosted:  normalize.FormatDate(date),
		Status:      normalize.NormalizeStatus(status),
		UpdateType:  normalize.JoinOrNA(updateTypes),
		ProductList: normalize.JoinOrNA(products),
		Categories:  normalize.JoinOrNA(categories),
	}
}
