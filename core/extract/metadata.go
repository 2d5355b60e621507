package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/updatesheet/core"
	"github.com/gaurav-prasanna/updatesheet/core/normalize"
)

const (
	headingTags   = "h3, h4, strong"
	maxClimbLevel = 3
)

var metadataContainerSelectors = []string{
	"div.row.metadata-tags",
	"div.pzl-aside-bg-grey",
	"aside[aria-label='article metadata']",
	"div[data-bi-area='sidebar']",
	"div.column.medium-3",
	"div.col-md-3",
	"div.statusBoxes",
	"div.cloudInstance.section",
	"div.platforms.section",
}

// htmlMetadata reads the sidebar metadata of an Azure update page. Fields that
// could not be found are left empty.
func htmlMetadata(doc *goquery.Document) core.Metadata {
	section := firstMatch(doc.Selection, metadataContainerSelectors)
	if section == nil {
		section = doc.Selection
	}

	status := labeledValue(section, "Status")
	if status != "" {
		status = normalize.NormalizeStatus(status)
	}
	return core.Metadata{
		Status:      status,
		UpdateType:  labeledValue(section, "Update type"),
		ProductList: firstLabeled(section, "Products", "Services", "Product"),
		Categories:  firstLabeled(section, "Categories", "Category"),
	}
}

func firstLabeled(section *goquery.Selection, labels ...string) string {
	for _, label := range labels {
		if v := labeledValue(section, label); v != "" {
			return v
		}
	}
	return ""
}

// labeledValue finds the heading whose text equals label and reads the values
// shown next to it. Up to three ancestors are tried; at each level the value
// container is the parent's next ul/div sibling, else the grandparent's, else
// the parent itself.
func labeledValue(section *goquery.Selection, label string) string {
	heading := section.Find(headingTags).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.EqualFold(strings.TrimSpace(s.Text()), label)
	}).First()
	if heading.Length() == 0 {
		return ""
	}

	current := heading
	for level := 0; level < maxClimbLevel; level++ {
		parent := current.Parent()
		if parent.Length() == 0 {
			break
		}

		container := parent.NextAllFiltered("ul, div").First()
		if container.Length() == 0 {
			if grand := parent.Parent(); grand.Length() > 0 {
				container = grand.NextAllFiltered("ul, div").First()
			}
		}
		if container.Length() == 0 {
			container = parent
		}

		if values := containerValues(container, label); len(values) > 0 {
			return strings.Join(values, ", ")
		}

		current = parent
		if goquery.NodeName(current) == "body" {
			break
		}
	}
	return ""
}

// containerValues reads values in preference order: link text, list items,
// spans that do not wrap a heading, then the text of a simple leaf div or p.
func containerValues(container *goquery.Selection, label string) []string {
	if v := texts(container.Find("a[href]"), nil); len(v) > 0 {
		return v
	}
	if v := texts(container.Find("li"), nil); len(v) > 0 {
		return v
	}
	wrapsHeading := func(s *goquery.Selection) bool { return s.Find(headingTags).Length() > 0 }
	if v := texts(container.Find("span"), wrapsHeading); len(v) > 0 {
		return v
	}

	name := goquery.NodeName(container)
	if (name == "div" || name == "p") && container.Find("div, ul, p, h3, h4, strong").Length() == 0 {
		if text := normalize.Squash(container.Text()); text != "" && !strings.EqualFold(text, label) {
			return []string{text}
		}
	}
	return nil
}

// texts returns the squashed, non-empty text of each element not rejected by skip.
func texts(sel *goquery.Selection, skip func(*goquery.Selection) bool) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if skip != nil && skip(s) {
			return
		}
		if t := normalize.Squash(s.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}

// reconcile resolves each metadata field from three sources in ascending
// priority: page HTML, embedded JSON, then the feed. Feed values only count
// when present and not "N/A". Status is normalized last.
func reconcile(fromHTML, fromJSON, fromFeed core.Metadata) core.Metadata {
	pick := func(h, j, f string) string {
		v := core.NA
		if h != "" {
			v = h
		}
		if j != "" {
			v = j
		}
		if !normalize.IsNA(f) {
			v = f
		}
		return v
	}
	return core.Metadata{
		Status:      normalize.NormalizeStatus(pick(fromHTML.Status, fromJSON.Status, fromFeed.Status)),
		UpdateType:  pick(fromHTML.UpdateType, fromJSON.UpdateType, fromFeed.UpdateType),
		ProductList: pick(fromHTML.ProductList, fromJSON.ProductList, fromFeed.ProductList),
		Categories:  pick(fromHTML.Categories, fromJSON.Categories, fromFeed.Categories),
	}
}
