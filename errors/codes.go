package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Request-time failures
const (
	// ErrCodeAborted indicates the call was cancelled before it completed.
	ErrCodeAborted ErrorCode = "ABORTED"
	// ErrCodeNetwork indicates a transport-level failure (DNS, refused connection, TLS).
	ErrCodeNetwork ErrorCode = "NETWORK_ERROR"
	// ErrCodePayload indicates the response body could not be decoded.
	ErrCodePayload ErrorCode = "PAYLOAD_ERROR"
)

// Construction-time failures
const (
	// ErrCodeInvalidURL indicates a base URL that is not an absolute http(s) URL.
	ErrCodeInvalidURL ErrorCode = "INVALID_URL"
	// ErrCodeInvalidPath indicates a malformed request path.
	ErrCodeInvalidPath ErrorCode = "INVALID_PATH"
)

// Configuration failures
const (
	// ErrCodeInvalidConfig indicates configuration that failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

var codeKinds = map[ErrorCode]string{
	ErrCodeAborted:       "AbortError",
	ErrCodeNetwork:       "NetworkError",
	ErrCodePayload:       "PayloadError",
	ErrCodeInvalidURL:    "InvalidUrlError",
	ErrCodeInvalidPath:   "InvalidPathError",
	ErrCodeInvalidConfig: "InvalidConfigError",
}

// Kind returns the error kind name for the code, e.g. "NetworkError".
func (c ErrorCode) Kind() string {
	if k, ok := codeKinds[c]; ok {
		return k
	}
	return "UnknownError"
}

// IsRequestCode reports whether the code is raised while a request is in
// flight, as opposed to at construction time.
func IsRequestCode(code ErrorCode) bool {
	switch code {
	case ErrCodeAborted, ErrCodeNetwork, ErrCodePayload:
		return true
	default:
		return false
	}
}
