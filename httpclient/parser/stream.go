package parser

import (
	"bytes"
	"context"
	"strings"

	"github.com/kbukum/gofetch/httpclient/sse"
)

// SSE decodes a buffered text/event-stream body into []sse.Event.
type SSE struct{}

// Name returns "sse".
func (SSE) Name() string { return "sse" }

// CanHandle implements Parser.
func (SSE) CanHandle(contentType string) bool {
	return MediaType(contentType) == "text/event-stream"
}

// Parse implements Parser.
func (SSE) Parse(ctx context.Context, raw []byte) (any, error) {
	return sse.ReadAll(ctx, bytes.NewReader(raw))
}

// Binary returns a copy of the raw bytes for non-textual media.
type Binary struct{}

// Name returns "binary".
func (Binary) Name() string { return "binary" }

// CanHandle implements Parser.
func (Binary) CanHandle(contentType string) bool {
	mt := MediaType(contentType)
	switch {
	case mt == "application/octet-stream", mt == "application/pdf", mt == "application/zip":
		return true
	case strings.HasPrefix(mt, "image/"), strings.HasPrefix(mt, "audio/"), strings.HasPrefix(mt, "video/"):
		return true
	}
	return false
}

// Parse implements Parser.
func (Binary) Parse(_ context.Context, raw []byte) (any, error) {
	return bytes.Clone(raw), nil
}
