package errors

import (
	"fmt"
	"reflect"
)

// AppError is the single error type surfaced by the pipeline.
type AppError struct {
	// Code classifies the failure.
	Code ErrorCode `json:"code"`
	// URL is the request URL, or the raw input for construction failures.
	URL string `json:"url,omitempty"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the original failure: an error, a string, or any other value
	// the transport rejected with.
	Cause any `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.URL != "" {
		return fmt.Sprintf("%s: %s (url: %s)", e.Code, e.Message, e.URL)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the cause when it is an error, enabling errors.Is/As
// through the taxonomy (for example errors.Is(err, context.Canceled)).
func (e *AppError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// Kind returns the kind name of the error, e.g. "PayloadError".
func (e *AppError) Kind() string { return e.Code.Kind() }

// WithDetail returns a shallow copy of e with one extra key/value in Details.
// The receiver is not modified.
func (e *AppError) WithDetail(key string, value any) *AppError {
	cp := *e
	m := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		m[k] = v
	}
	m[key] = value
	cp.Details = m
	return &cp
}

// New creates an AppError with the given code and message.
func New(code ErrorCode, url, message string) *AppError {
	return &AppError{Code: code, URL: url, Message: message}
}

// --- Constructors ---

// Aborted creates an AbortError for a cancelled call.
func Aborted(url string, cause any) *AppError {
	return &AppError{
		Code: ErrCodeAborted, URL: url,
		Message: "The request was aborted.",
		Cause:   cause,
	}
}

// Network creates a NetworkError. The description is derived from the cause
// with Describe.
func Network(url string, cause any) *AppError {
	return &AppError{
		Code: ErrCodeNetwork, URL: url,
		Message: Describe(cause),
		Cause:   cause,
	}
}

// Payload creates a PayloadError for a body the resolved parser rejected.
func Payload(url, contentType string, cause error) *AppError {
	msg := "Failed to parse response body."
	if cause != nil {
		msg = fmt.Sprintf("Failed to parse response body: %v", cause)
	}
	e := &AppError{
		Code: ErrCodePayload, URL: url,
		Message: msg,
		Cause:   cause,
	}
	if contentType != "" {
		e.Details = map[string]any{"content_type": contentType}
	}
	return e
}

// InvalidURL creates an InvalidUrlError for a rejected base URL.
func InvalidURL(raw, reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidURL, URL: raw,
		Message: fmt.Sprintf("Invalid URL: %s", reason),
		Details: map[string]any{"input": raw},
	}
}

// InvalidPath creates an InvalidPathError for a rejected request path.
func InvalidPath(raw, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidPath,
		Message: fmt.Sprintf("Invalid path: %s", reason),
		Details: map[string]any{"input": raw},
	}
}

// InvalidConfig creates an error for configuration that failed validation.
func InvalidConfig(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidConfig, Message: message}
}

// --- Cause description ---

// UnknownError is the description used when a cause carries no message.
const UnknownError = "Unknown error"

type messager interface {
	Message() string
}

// Describe extracts a human description from an arbitrary failure value.
// Precedence: a string is used as-is; an error yields Error(); a value with a
// Message() method, a map with a string "message" entry or a struct with an
// exported string Message field yields that message; anything else yields
// "Unknown error".
func Describe(cause any) string {
	switch v := cause.(type) {
	case nil:
		return UnknownError
	case string:
		return v
	case error:
		return v.Error()
	case messager:
		return v.Message()
	case map[string]any:
		if msg, ok := v["message"].(string); ok {
			return msg
		}
	case map[string]string:
		if msg, ok := v["message"]; ok {
			return msg
		}
	}
	if msg, ok := messageField(cause); ok {
		return msg
	}
	return UnknownError
}

func messageField(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return "", false
	}
	f, ok := rv.Type().FieldByName("Message")
	if !ok || !f.IsExported() || f.Type.Kind() != reflect.String {
		return "", false
	}
	fv, err := rv.FieldByIndexErr(f.Index)
	if err != nil {
		return "", false
	}
	return fv.String(), true
}
