package parser

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	json5 "github.com/yosuke-furukawa/json5/encoding/json5"
)

// JSON decodes application/json and structured-syntax "+json" bodies.
// An empty body decodes to nil.
type JSON struct{}

// Name returns "json".
func (JSON) Name() string { return "json" }

// CanHandle implements Parser.
func (JSON) CanHandle(contentType string) bool {
	mt := MediaType(contentType)
	return mt == "application/json" || mt == "text/json" || strings.HasSuffix(mt, "+json")
}

// Parse implements Parser.
func (JSON) Parse(_ context.Context, raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// JSON5 decodes application/json5 bodies.
type JSON5 struct{}

// Name returns "json5".
func (JSON5) Name() string { return "json5" }

// CanHandle implements Parser.
func (JSON5) CanHandle(contentType string) bool {
	return MediaType(contentType) == "application/json5"
}

// Parse implements Parser.
func (JSON5) Parse(_ context.Context, raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var v any
	if err := json5.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// NDJSON decodes newline-delimited JSON into a []any, one element per
// non-blank line.
type NDJSON struct{}

// Name returns "ndjson".
func (NDJSON) Name() string { return "ndjson" }

// CanHandle implements Parser.
func (NDJSON) CanHandle(contentType string) bool {
	switch MediaType(contentType) {
	case "application/x-ndjson", "application/ndjson", "application/jsonl", "application/x-jsonlines":
		return true
	}
	return false
}

// Parse implements Parser.
func (NDJSON) Parse(ctx context.Context, raw []byte) (any, error) {
	s := bufio.NewScanner(bytes.NewReader(raw))
	s.Buffer(make([]byte, 0, 4096), len(raw)+1)
	out := make([]any, 0)
	line := 0
	for s.Scan() {
		line++
		b := bytes.TrimSpace(s.Bytes())
		if len(b) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var v any
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, v)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
