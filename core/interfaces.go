// Package core defines the data model and pipeline interfaces for updatesheet.
// Feed items and price-list lines flow through small, testable stages that
// end in a tabular sink.
package core

import "context"

// NA marks a field that intentionally has no value.
const NA = "N/A"

// Provider identifies the cloud vendor an update came from.
type Provider string

const (
	ProviderAWS   Provider = "AWS"
	ProviderAzure Provider = "Azure"
)

// FeedItem is one entry from a syndication feed, with provisional metadata.
// The Azure-only fields stay empty for AWS items.
type FeedItem struct {
	Title      string
	URL        string
	DatePosted string // MM/DD/YYYY, the raw source value, or NA

	Status      string // single canonical phrase or NA
	UpdateType  string // comma-joined, or NA
	ProductList string // comma-joined, or NA
	Categories  string // comma-joined, or NA
}

// Metadata returns the Azure metadata carried by the feed item.
func (i FeedItem) Metadata() Metadata {
	return Metadata{
		Status:      i.Status,
		UpdateType:  i.UpdateType,
		ProductList: i.ProductList,
		Categories:  i.Categories,
	}
}

// Metadata holds the four Azure metadata fields from one source.
// An empty string means the source had nothing for that field.
type Metadata struct {
	Status      string `json:"status"`
	UpdateType  string `json:"update_type"`
	ProductList string `json:"product_list"`
	Categories  string `json:"categories"`
}

// CanonicalRecord is the fused representation of one update, ready for the sink.
// Every field is always set; missing data is NA.
type CanonicalRecord struct {
	Provider    Provider `json:"provider"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	DatePosted  string   `json:"date_posted"`
	Description string   `json:"description"`
	Links       string   `json:"links"`

	// AWS
	Product string `json:"product,omitempty"`

	// Azure
	Status      string `json:"status,omitempty"`
	UpdateType  string `json:"update_type,omitempty"`
	ProductList string `json:"product_list,omitempty"`
	Categories  string `json:"categories,omitempty"`
}

// PriceListItem is one priced line of the PDF price list.
type PriceListItem struct {
	Section     string `json:"section"`
	Item        string `json:"item"`
	Description string `json:"description"`
	UnitPrice   string `json:"unit_price"`
	CutOff      string `json:"cut_off"`
}

// RawLine is a segmented PDF line kept for the debug sheet.
type RawLine struct {
	Page int
	Line string
}

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
	Rendered   bool // true when the HTML came from the render collaborator
}

// Fetcher retrieves HTML for a detail page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Renderer loads a URL in a headless browser and returns the final HTML.
// An empty readySelector means wait a fixed time instead.
type Renderer interface {
	Render(ctx context.Context, url string, readySelector string) (string, error)
}

// Extractor turns a fetched detail page plus its feed item into a record.
type Extractor interface {
	Extract(page *FetchResult, item FeedItem) (*CanonicalRecord, error)
}

// Sink accepts ordered records and persists them under a stable header schema.
type Sink interface {
	Append(record map[string]string) error
	Flush() error
}
