package httpclient

import "github.com/kbukum/gofetch/httpclient/parser"

// Parser decodes a raw response body. See parser.Parser.
type Parser = parser.Parser

// Resolver picks the parser for a content type. See parser.Resolver.
type Resolver = parser.Resolver

// NewResolver creates a resolver that consults parsers in order and falls
// back to the text parser.
func NewResolver(parsers ...Parser) *Resolver {
	return parser.NewResolver(parsers...)
}

// MediaType returns the lower-cased media type of a Content-Type value.
func MediaType(contentType string) string {
	return parser.MediaType(contentType)
}
