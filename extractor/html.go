package extractor

import (
	"strings"

	"github.com/PageLabs/godelta"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// IgnoredTags contains HTML tags whose content is invisible to readers and
// therefore excluded from comparison.
var IgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"head":     true,
	"noscript": true,
	"template": true,
	"textarea": true,
}

// HTMLExtractor flattens HTML page snapshots into plain text. Older pages
// store their content as rendered HTML rather than a structured document;
// this extractor lets those versions participate in comparisons.
type HTMLExtractor struct {
	ignoredTags map[string]bool
}

// NewHTMLExtractor creates a new HTML extractor with default ignored tags.
func NewHTMLExtractor() *HTMLExtractor {
	return &HTMLExtractor{
		ignoredTags: IgnoredTags,
	}
}

// NewHTMLExtractorWithIgnoredTags creates a new HTML extractor with custom
// ignored tags.
func NewHTMLExtractorWithIgnoredTags(tags []string) *HTMLExtractor {
	ignored := make(map[string]bool)
	for _, tag := range tags {
		ignored[strings.ToLower(tag)] = true
	}
	return &HTMLExtractor{
		ignoredTags: ignored,
	}
}

// Extract parses HTML and returns the visible text, one text segment per
// line. It never fails: the parser is forgiving, and anything unparseable
// degrades to the literal input string.
func (p *HTMLExtractor) Extract(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content, nil
	}

	var parts []string

	// Walk the DOM tree collecting visible text nodes.
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && p.ignoredTags[strings.ToLower(n.Data)] {
			return
		}

		if n.Type == html.TextNode {
			if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	doc.Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})

	return strings.Join(parts, "\n"), nil
}

// ContentType returns "html".
func (p *HTMLExtractor) ContentType() string {
	return godelta.ContentTypeHTML
}

// Verify HTMLExtractor implements Extractor
var _ Extractor = (*HTMLExtractor)(nil)
