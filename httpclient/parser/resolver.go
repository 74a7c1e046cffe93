package parser

import (
	"context"
	"mime"
	"strings"
)

// Parser decodes a raw response body.
type Parser interface {
	// CanHandle reports whether the parser accepts the given Content-Type
	// header value. The value may carry parameters (charset, boundary).
	CanHandle(contentType string) bool
	// Parse decodes raw into a value.
	Parse(ctx context.Context, raw []byte) (any, error)
}

// Resolver selects a parser for a content type.
type Resolver struct {
	parsers  []Parser
	fallback Parser
}

// NewResolver creates a resolver over parsers, consulted in the given order.
func NewResolver(parsers ...Parser) *Resolver {
	list := make([]Parser, 0, len(parsers))
	for _, p := range parsers {
		if p != nil {
			list = append(list, p)
		}
	}
	return &Resolver{parsers: list, fallback: Text{}}
}

// Resolve returns the first registered parser whose CanHandle accepts
// contentType, or the Text parser when none does.
func (r *Resolver) Resolve(contentType string) Parser {
	if r == nil {
		return Text{}
	}
	for _, p := range r.parsers {
		if p.CanHandle(contentType) {
			return p
		}
	}
	return r.fallback
}

// Parsers returns a copy of the registered parsers in resolution order.
func (r *Resolver) Parsers() []Parser {
	if r == nil {
		return nil
	}
	out := make([]Parser, len(r.parsers))
	copy(out, r.parsers)
	return out
}

// MediaType returns the lower-cased media type of a Content-Type header value
// with parameters stripped. An empty or unparsable value yields the best
// effort prefix before ";".
func MediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		return mt
	}
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}

// Text is the default parser. It returns the body as a string and accepts
// text/* and an empty content type.
type Text struct{}

// Name returns "text".
func (Text) Name() string { return "text" }

// CanHandle implements Parser.
func (Text) CanHandle(contentType string) bool {
	mt := MediaType(contentType)
	return mt == "" || strings.HasPrefix(mt, "text/")
}

// Parse implements Parser.
func (Text) Parse(_ context.Context, raw []byte) (any, error) {
	return string(raw), nil
}

// Func adapts a match function and a decode function into a Parser.
type Func struct {
	// Label names the parser in logs.
	Label string
	// Match reports whether the parser accepts a content type.
	Match func(contentType string) bool
	// Decode decodes the raw body.
	Decode func(ctx context.Context, raw []byte) (any, error)
}

// Name returns the label.
func (f Func) Name() string { return f.Label }

// CanHandle implements Parser.
func (f Func) CanHandle(contentType string) bool {
	return f.Match != nil && f.Match(contentType)
}

// Parse implements Parser.
func (f Func) Parse(ctx context.Context, raw []byte) (any, error) {
	if f.Decode == nil {
		return string(raw), nil
	}
	return f.Decode(ctx, raw)
}

// Name returns a parser's name when it exposes one.
func Name(p Parser) string {
	if n, ok := p.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "custom"
}
