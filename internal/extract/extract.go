// Package extract pulls title, email and research-interest fields out of
// parsed faculty profile pages. Absent matches are normal and come back as
// empty values, never as errors.
package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Strategy selects how interest items are pulled from the markup around a
// matched heading.
type Strategy string

const (
	// ListAfterHeading takes the items of the first <ul> following the heading.
	ListAfterHeading Strategy = "list_after_heading"
	// NextSibling takes the element immediately following the heading, any tag.
	NextSibling Strategy = "next_sibling"
)

// InterestRule maps a heading label to an extraction strategy. Department
// page templates differ, so the rule set is data rather than inline literals.
type InterestRule struct {
	Heading  string   `yaml:"heading"`
	Levels   []string `yaml:"levels"`
	Strategy Strategy `yaml:"strategy"`
}

// DefaultRules covers the two heading variants seen on PSU department pages.
func DefaultRules() []InterestRule {
	return []InterestRule{
		{Heading: "Areas of Interest", Levels: []string{"h2"}, Strategy: ListAfterHeading},
		{Heading: "Research Interests", Levels: []string{"h2", "h3"}, Strategy: NextSibling},
	}
}

var (
	spaceRe = regexp.MustCompile(`\s+`)
	titleRe = regexp.MustCompile(`(?:Distinguished|Liberal Arts|Roy C\.|Arnold S\.|James P\.)?\s*(?:Associate\s+)?Professor[^\n\r]{0,120}`)
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@psu\.edu`)
)

// Extraction is the result of running the full pipeline over one document.
type Extraction struct {
	FullText  string
	Title     string
	Email     string
	Interests []string
}

// Extract runs the whole per-profile pipeline: text normalization, pattern
// extraction and the structural interest queries.
func Extract(doc *goquery.Document, rules []InterestRule) Extraction {
	text := FullText(doc)
	return Extraction{
		FullText:  text,
		Title:     Title(text),
		Email:     Email(text),
		Interests: Interests(doc, rules),
	}
}

// NormalizeSpace collapses any run of whitespace to a single space and trims.
func NormalizeSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// FullText joins every text node under <body> with single spaces.
func FullText(doc *goquery.Document) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			parts = append(parts, n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Find("body").Nodes {
		walk(n)
	}
	return NormalizeSpace(strings.Join(parts, " "))
}

// Title returns the first job-title line matching the honorific/rank pattern,
// or "" when the page has none.
func Title(text string) string {
	return strings.TrimSpace(titleRe.FindString(text))
}

// Email returns the first PSU email address in the text, or "".
func Email(text string) string {
	return emailRe.FindString(text)
}

// Interests evaluates each rule in order and concatenates the results.
// Headings match on normalized text; raw text nodes are trimmed individually
// and empty ones dropped.
func Interests(doc *goquery.Document, rules []InterestRule) []string {
	items := []string{}
	for _, rule := range rules {
		items = append(items, applyRule(doc, rule)...)
	}
	return items
}

func applyRule(doc *goquery.Document, rule InterestRule) []string {
	var items []string
	selector := strings.Join(rule.Levels, ", ")
	if selector == "" {
		return nil
	}
	// goquery returns matches for grouped selectors in document order, so
	// h2 and h3 hits merge the way the page lays them out.
	doc.Find(selector).Each(func(_ int, heading *goquery.Selection) {
		if NormalizeSpace(heading.Text()) != rule.Heading {
			return
		}
		switch rule.Strategy {
		case ListAfterHeading:
			list := heading.NextAllFiltered("ul").First()
			items = append(items, textNodes(list.Find("li"))...)
		case NextSibling:
			items = append(items, textNodes(heading.Next())...)
		}
	})
	return items
}

// textNodes collects each text node under the selection, trimmed, in
// document order, skipping whitespace-only nodes.
func textNodes(sel *goquery.Selection) []string {
	var out []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				out = append(out, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return out
}
