package extract

import (
	"strings"
	"testing"

	"github.com/gaurav-prasanna/updatesheet/core"
)

func TestReconcileFeedOverridesEachField(t *testing.T) {
	fromHTML := core.Metadata{Status: "Retiring", UpdateType: "Features", ProductList: "Azure SQL", Categories: "Databases"}
	fromJSON := core.Metadata{Status: "Launched", UpdateType: "Security", ProductList: "Azure SQL Database", Categories: "Analytics"}

	tests := []struct {
		name string
		feed core.Metadata
		want core.Metadata
	}{
		{
			name: "feed empty",
			feed: core.Metadata{Status: core.NA, UpdateType: core.NA, ProductList: core.NA, Categories: core.NA},
			want: core.Metadata{Status: "Launched", UpdateType: "Security", ProductList: "Azure SQL Database", Categories: "Analytics"},
		},
		{
			name: "update type from feed",
			feed: core.Metadata{Status: core.NA, UpdateType: "Retirements", ProductList: core.NA, Categories: core.NA},
			want: core.Metadata{Status: "Launched", UpdateType: "Retirements", ProductList: "Azure SQL Database", Categories: "Analytics"},
		},
		{
			name: "products from feed",
			feed: core.Metadata{Status: core.NA, UpdateType: core.NA, ProductList: "Azure Cosmos DB", Categories: core.NA},
			want: core.Metadata{Status: "Launched", UpdateType: "Security", ProductList: "Azure Cosmos DB", Categories: "Analytics"},
		},
		{
			name: "categories from feed",
			feed: core.Metadata{Status: core.NA, UpdateType: core.NA, ProductList: core.NA, Categories: "Compute"},
			want: core.Metadata{Status: "Launched", UpdateType: "Security", ProductList: "Azure SQL Database", Categories: "Compute"},
		},
		{
			name: "status from feed is normalized",
			feed: core.Metadata{Status: "ga", UpdateType: core.NA, ProductList: core.NA, Categories: core.NA},
			want: core.Metadata{Status: "Generally Available", UpdateType: "Security", ProductList: "Azure SQL Database", Categories: "Analytics"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reconcile(fromHTML, fromJSON, tt.feed); got != tt.want {
				t.Fatalf("reconcile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReconcileFallsBackToHTMLThenNA(t *testing.T) {
	got := reconcile(core.Metadata{Status: "retiring", ProductList: "Azure SQL"}, core.Metadata{}, core.Metadata{})
	want := core.Metadata{Status: "Retirement", UpdateType: core.NA, ProductList: "Azure SQL", Categories: core.NA}
	if got != want {
		t.Fatalf("reconcile() = %+v, want %+v", got, want)
	}
}

func TestLabeledValueSources(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		label string
		want  string
	}{
		{
			name:  "list sibling of heading",
			html:  `<div class="box"><h3>Categories</h3><ul><li>Compute</li><li>Containers</li></ul></div>`,
			label: "Categories",
			want:  "Compute, Containers",
		},
		{
			name:  "spans skip the heading wrapper",
			html:  `<div class="pair"><span><strong>Update type</strong></span><span>Features</span><span>Security</span></div>`,
			label: "Update type",
			want:  "Features, Security",
		},
		{
			name:  "heading case is ignored",
			html:  `<div class="item"><div class="label"><h4>STATUS</h4></div><div class="value">Retiring</div></div>`,
			label: "Status",
			want:  "Retiring",
		},
		{
			name:  "climbs past wrappers",
			html:  `<div class="outer"><div class="mid"><div class="inner"><h4>Products</h4></div></div><ul><li>Azure Monitor</li></ul></div>`,
			label: "Products",
			want:  "Azure Monitor",
		},
		{
			name:  "missing heading",
			html:  `<div class="item"><h4>Region</h4><p>West US</p></div>`,
			label: "Products",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parseHTML("<html><body>" + tt.html + "</body></html>")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := labeledValue(doc.Selection, tt.label); got != tt.want {
				t.Fatalf("labeledValue(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestLinkSet(t *testing.T) {
	doc, err := parseHTML(`<html><body>
<a href="/a">a</a><a href="https://example.com/a#x">frag</a><a href="#top">top</a><a href="/a">dup</a>
<a href="javascript:void(0)">js</a><a href="tel:123">tel</a><a href="b?q=1">b</a>
</body></html>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	links := newLinkSet()
	links.collectLinks(doc.Selection, "https://example.com/dir/page")
	got := links.String()
	want := "https://example.com/a,https://example.com/a#x,https://example.com/dir/page#top," +
		"javascript:void(0),tel:123,https://example.com/dir/b?q=1"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if strings.Contains(got, " ") {
		t.Fatal("links must be joined without spaces")
	}
	if newLinkSet().String() != core.NA {
		t.Fatal("expected N/A for an empty set")
	}
}
