package httpclient

import (
	"net/http"
	"net/url"
	"time"
)

// MethodGet is the only verb the pipeline issues.
const MethodGet = http.MethodGet

// Standard metadata keys stamped by the built-in interceptors.
const (
	MetaSequenceNumber    = "sequenceNumber"
	MetaTimestamp         = "timestamp"
	MetaResponseTimeMs    = "responseTimeMs"
	MetaResponseTimeStart = "responseTimeStart"
	MetaRequestID         = "requestId"
)

// Metadata is an open key/value bag carried by requests and responses.
// Values are treated as immutable: With and Merge always return a copy.
type Metadata map[string]any

// With returns a copy of m with key set to value.
func (m Metadata) With(key string, value any) Metadata {
	out := make(Metadata, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[key] = value
	return out
}

// Merge returns a copy of m overlaid with other. Keys in other win.
func (m Metadata) Merge(other Metadata) Metadata {
	out := make(Metadata, len(m)+len(other))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Has reports whether key is present.
func (m Metadata) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Int64 returns the value for key as an int64.
func (m Metadata) Int64(key string) (int64, bool) {
	switch v := m[key].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	}
	return 0, false
}

// Float64 returns the value for key as a float64.
func (m Metadata) Float64(key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

// Time returns the value for key as a time.Time.
func (m Metadata) Time(key string) (time.Time, bool) {
	t, ok := m[key].(time.Time)
	return t, ok
}

// String returns the value for key as a string.
func (m Metadata) String(key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

// SequenceNumber returns the stamped sequence number, if any.
func (m Metadata) SequenceNumber() (int64, bool) { return m.Int64(MetaSequenceNumber) }

// Timestamp returns the stamped wall-clock time, if any.
func (m Metadata) Timestamp() (time.Time, bool) { return m.Time(MetaTimestamp) }

// ResponseTimeMs returns the measured response time in milliseconds, if any.
func (m Metadata) ResponseTimeMs() (float64, bool) { return m.Float64(MetaResponseTimeMs) }

// RequestID returns the stamped request id, if any.
func (m Metadata) RequestID() (string, bool) { return m.String(MetaRequestID) }

// Request describes an outbound GET request as it moves through the
// interceptor chain. Values are passed by copy; use the With* helpers to
// derive a modified request.
type Request struct {
	// URL is the absolute request URL.
	URL string
	// OriginalURL is the URL built by Client.Get before any interceptor ran.
	// Errors report it. Empty means URL.
	OriginalURL string
	// Query holds parameters added to URL when the request is sent. They
	// stay out of URL, so errors, logs and spans never carry them.
	Query url.Values
	// Method is always GET.
	Method string
	// Header holds outbound headers set by interceptors (auth, tracing).
	Header http.Header
	// Body is unused for GET and kept for interceptors that inspect it.
	Body any
	// Metadata is the per-call bag interceptors stamp fields into.
	Metadata Metadata
}

// WithMetadata returns a copy of r with key set in its metadata.
func (r Request) WithMetadata(key string, value any) Request {
	r.Metadata = r.Metadata.With(key, value)
	return r
}

// WithHeader returns a copy of r with header key set to value.
func (r Request) WithHeader(key, value string) Request {
	h := r.Header.Clone()
	if h == nil {
		h = make(http.Header)
	}
	h.Set(key, value)
	r.Header = h
	return r
}

// WithURL returns a copy of r addressed to u.
func (r Request) WithURL(u string) Request {
	r.URL = u
	return r
}

// WithQuery returns a copy of r with query parameter key set to value.
func (r Request) WithQuery(key, value string) Request {
	q := make(url.Values, len(r.Query)+1)
	for k, vs := range r.Query {
		q[k] = append([]string(nil), vs...)
	}
	q.Set(key, value)
	r.Query = q
	return r
}

// reportURL is the URL errors carry.
func (r Request) reportURL() string {
	if r.OriginalURL != "" {
		return r.OriginalURL
	}
	return r.URL
}

// Response is the decoded result of a request.
type Response struct {
	// URL is the final URL, which differs from the request URL after redirects.
	URL string
	// Status is the HTTP status code. 4xx and 5xx are ordinary responses.
	Status int
	// StatusText is the reason phrase, e.g. "Not Found".
	StatusText string
	// Header holds the response headers.
	Header http.Header
	// Body is the value produced by the resolved parser.
	Body any
	// Metadata carries fields stamped by interceptors.
	Metadata Metadata
}

// WithMetadata returns a copy of r with key set in its metadata.
func (r Response) WithMetadata(key string, value any) Response {
	r.Metadata = r.Metadata.With(key, value)
	return r
}

// IsSuccess returns true if the status code is 2xx.
func (r Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r Response) IsError() bool {
	return r.Status >= 400
}
