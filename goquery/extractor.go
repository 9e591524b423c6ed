// Package goquery provides a fallback HTML extractor built on CSS
// selectors. It is cruder than the trafilatura extractor but works on
// pages where boilerplate detection finds nothing.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/edugen"
)

// Ensure Extractor implements edugen.Extractor at compile time.
var _ edugen.Extractor = (*Extractor)(nil)

// contentSelectors are tried in order; the first match wins.
var contentSelectors = []string{
	"main",
	"article",
	"[role=main]",
	"#content",
	".content",
	"body",
}

// Extractor extracts page content using CSS selectors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and the HTML of the first matching
// content region.
func (e *Extractor) Extract(html string) (*edugen.ExtractResult, error) {
	if html == "" {
		return nil, edugen.Errorf(edugen.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, edugen.Errorf(edugen.EINVALID, "parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	var contentHTML string
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if strings.TrimSpace(sel.Text()) == "" {
			continue
		}
		contentHTML, err = goquery.OuterHtml(sel)
		if err != nil {
			return nil, edugen.Errorf(edugen.EINTERNAL, "render selection: %v", err)
		}
		break
	}

	return &edugen.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}
