package parser

import (
	"bytes"
	"context"

	"gopkg.in/yaml.v3"
)

// YAML decodes YAML bodies. An empty body decodes to nil.
type YAML struct{}

// Name returns "yaml".
func (YAML) Name() string { return "yaml" }

// CanHandle implements Parser.
func (YAML) CanHandle(contentType string) bool {
	switch MediaType(contentType) {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return true
	}
	return false
}

// Parse implements Parser.
func (YAML) Parse(_ context.Context, raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
