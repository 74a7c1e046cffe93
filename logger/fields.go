package logger

import (
	"time"
)

// Standard field key constants for structured logging.
const (
	FieldService        = "service"
	FieldComponent      = "component"
	FieldTraceID        = "trace_id"
	FieldSpanID         = "span_id"
	FieldRequestID      = "request_id"
	FieldMethod         = "method"
	FieldURL            = "url"
	FieldStatus         = "status"
	FieldSequenceNumber = "sequence_number"
	FieldTimestamp      = "timestamp"
	FieldResponseTimeMs = "response_time_ms"
	FieldErrorKind      = "error_kind"
	FieldError          = "error"
	FieldDuration       = "duration_ms"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("done", logger.Fields("url", u, "status", 200))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for a failed call.
func ErrorFields(url string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldURL:   url,
		FieldError: err.Error(),
	}
}

// DurationFields creates fields for a timed call.
func DurationFields(url string, d time.Duration) map[string]interface{} {
	return map[string]interface{}{
		FieldURL:      url,
		FieldDuration: d.Milliseconds(),
	}
}

// MergeWithError adds an error field to an existing map.
func MergeWithError(fields map[string]interface{}, err error) map[string]interface{} {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields[FieldError] = err.Error()
	return fields
}

// MergeWithDuration adds a duration field to an existing map.
func MergeWithDuration(fields map[string]interface{}, d time.Duration) map[string]interface{} {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields[FieldDuration] = d.Milliseconds()
	return fields
}
