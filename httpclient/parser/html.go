package parser

import (
	"bytes"
	"context"

	"github.com/PuerkitoBio/goquery"
)

// HTML parses HTML documents into a *goquery.Document.
type HTML struct{}

// Name returns "html".
func (HTML) Name() string { return "html" }

// CanHandle implements Parser.
func (HTML) CanHandle(contentType string) bool {
	switch MediaType(contentType) {
	case "text/html", "application/xhtml+xml":
		return true
	}
	return false
}

// Parse implements Parser.
func (HTML) Parse(_ context.Context, raw []byte) (any, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return doc, nil
}
