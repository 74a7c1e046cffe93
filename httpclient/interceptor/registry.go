package interceptor

import (
	"fmt"
	"strings"

	"github.com/kbukum/gofetch/errors"
	"github.com/kbukum/gofetch/httpclient"
	"github.com/kbukum/gofetch/logger"
)

// Names of the standard interceptors, as accepted by FromNames.
const (
	NameSequence     = "sequence"
	NameTimestamp    = "timestamp"
	NameResponseTime = "response-time"
	NameLogger       = "logger"
	NameRequestID    = "request-id"
)

// Names lists every name FromNames accepts. httpclient.Config validates
// its Interceptors field against the same set.
var Names = []string{NameSequence, NameTimestamp, NameResponseTime, NameLogger, NameRequestID}

// Deps carries what the standard interceptors need when built by name.
// Zero values fall back to a fresh Sequence, the system clock and a no-op
// logger.
type Deps struct {
	Sequence *Sequence
	Clock    Clock
	Logger   *logger.Logger
}

// FromNames builds interceptors in the given order. Names are matched
// case-insensitively; an unknown name is an INVALID_CONFIG error.
func FromNames(names []string, deps Deps) ([]httpclient.Interceptor, error) {
	if deps.Sequence == nil {
		deps.Sequence = NewSequence()
	}
	deps.Clock = orSystem(deps.Clock)

	out := make([]httpclient.Interceptor, 0, len(names))
	for _, raw := range names {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case NameSequence:
			out = append(out, deps.Sequence.Interceptor())
		case NameTimestamp:
			out = append(out, Timestamp(deps.Clock))
		case NameResponseTime:
			out = append(out, ResponseTime(deps.Clock))
		case NameLogger:
			out = append(out, Logger(deps.Logger))
		case NameRequestID:
			out = append(out, RequestID())
		default:
			return nil, errors.InvalidConfig(fmt.Sprintf("unknown interceptor %q", raw))
		}
	}
	return out, nil
}
