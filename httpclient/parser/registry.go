package parser

import (
	"fmt"
	"strings"
)

// Names lists the parser names accepted by ByName.
var Names = []string{"json", "json5", "yaml", "html", "sse", "ndjson", "binary", "text"}

// Default returns the built-in parsers in resolution order. Text is not
// included; resolvers fall back to it.
func Default() []Parser {
	return []Parser{JSON{}, JSON5{}, YAML{}, HTML{}, SSE{}, NDJSON{}, Binary{}}
}

// ByName builds a parser list from configuration names, preserving order.
func ByName(names ...string) ([]Parser, error) {
	out := make([]Parser, 0, len(names))
	for _, n := range names {
		p, err := lookup(n)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func lookup(name string) (Parser, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON{}, nil
	case "json5":
		return JSON5{}, nil
	case "yaml", "yml":
		return YAML{}, nil
	case "html":
		return HTML{}, nil
	case "sse":
		return SSE{}, nil
	case "ndjson", "jsonl":
		return NDJSON{}, nil
	case "binary":
		return Binary{}, nil
	case "text":
		return Text{}, nil
	}
	return nil, fmt.Errorf("unknown parser %q (valid: %s)", name, strings.Join(Names, ", "))
}
