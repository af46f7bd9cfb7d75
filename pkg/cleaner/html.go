package cleaner

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// tagExpr matches an opening, closing, comment or doctype tag. A bare '<'
// ("a<b") is not markup.
var tagExpr = regexp.MustCompile(`<[a-zA-Z/!][^>]*>`)

// HTMLTextCleaner extracts the text of messages that were scraped with
// markup or HTML entities in them (&amp;, <br>, <a href=...>).
type HTMLTextCleaner struct{}

// NewHTMLText creates a markup stripping stage.
func NewHTMLText() *HTMLTextCleaner {
	return &HTMLTextCleaner{}
}

// Clean returns the text content of text. Only text containing a tag is
// parsed as an HTML fragment; otherwise entities are decoded and everything
// else, including a bare '<' or '&', is kept.
func (c *HTMLTextCleaner) Clean(text string) (string, error) {
	if !strings.ContainsAny(text, "<&") {
		return text, nil
	}
	if !tagExpr.MatchString(text) {
		return html.UnescapeString(text), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return "", fmt.Errorf("parsing markup: %w", err)
	}

	doc.Find("script, style").Remove()
	// Line breaks separate words in the rendered message.
	doc.Find("br").ReplaceWithHtml(" ")

	return doc.Text(), nil
}

// Name returns the cleaner type.
func (c *HTMLTextCleaner) Name() string {
	return "html-text"
}
