// Package parser resolves response bodies by content type.
//
// A Resolver holds an ordered list of parsers and returns the first one whose
// CanHandle accepts the response's Content-Type. When none match, the
// built-in Text parser is used, so every body decodes to something.
//
//	r := parser.NewResolver(parser.JSON{}, parser.YAML{})
//	p := r.Resolve(resp.Header.Get("Content-Type"))
//	body, err := p.Parse(ctx, raw)
//
// Registration order is significant: if two parsers claim the same media
// type, the one registered first wins.
package parser
