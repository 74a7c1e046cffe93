package errors

import (
	stderrors "errors"
)

// ErrorResponse is the JSON structure used when an error is rendered for a
// caller, following RFC 7807.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody contains the rendered error details.
type ErrorBody struct {
	Code    ErrorCode      `json:"code"`
	Kind    string         `json:"kind"`
	URL     string         `json:"url,omitempty"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ToResponse converts an AppError to an ErrorResponse for JSON serialization.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{
		Error: ErrorBody{
			Code:    e.Code,
			Kind:    e.Kind(),
			URL:     e.URL,
			Message: e.Message,
			Details: e.Details,
		},
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func hasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// IsAborted reports whether err is an AbortError.
func IsAborted(err error) bool { return hasCode(err, ErrCodeAborted) }

// IsNetwork reports whether err is a NetworkError.
func IsNetwork(err error) bool { return hasCode(err, ErrCodeNetwork) }

// IsPayload reports whether err is a PayloadError.
func IsPayload(err error) bool { return hasCode(err, ErrCodePayload) }

// IsInvalidURL reports whether err is an InvalidUrlError.
func IsInvalidURL(err error) bool { return hasCode(err, ErrCodeInvalidURL) }

// IsInvalidPath reports whether err is an InvalidPathError.
func IsInvalidPath(err error) bool { return hasCode(err, ErrCodeInvalidPath) }
