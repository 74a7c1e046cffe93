package httpclient

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/gofetch/errors"
	"github.com/kbukum/gofetch/logger"
	"github.com/kbukum/gofetch/observability"
)

// ExecutorMiddleware wraps an Executor with cross-cutting behavior.
type ExecutorMiddleware func(Executor) Executor

// ChainExecutor composes middlewares. The first middleware is outermost:
// ChainExecutor(a, b)(e) is a(b(e)).
func ChainExecutor(middlewares ...ExecutorMiddleware) ExecutorMiddleware {
	return func(inner Executor) Executor {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}

// WithLogging logs each execution: debug on success, warn on abort and
// error on any other failure.
func WithLogging(log *logger.Logger) ExecutorMiddleware {
	return func(inner Executor) Executor {
		return ExecutorFunc(func(ctx context.Context, req Request) (Response, error) {
			start := time.Now()
			resp, err := inner.Execute(ctx, req)

			fields := logger.Fields(
				logger.FieldMethod, methodOf(req),
				logger.FieldURL, req.URL,
				logger.FieldDuration, time.Since(start).Milliseconds(),
			)
			l := log.WithContext(ctx)
			switch {
			case err == nil:
				fields[logger.FieldStatus] = resp.Status
				l.Debug("http execute ok", fields)
			case errors.IsAborted(err):
				l.Warn("http execute aborted", fields)
			default:
				fields[logger.FieldError] = err.Error()
				fields[logger.FieldErrorKind] = errorKind(err)
				l.Error("http execute failed", fields)
			}
			return resp, err
		})
	}
}

// WithTracing opens a client span around each execution and propagates the
// trace context in the outbound headers.
func WithTracing(serviceName string) ExecutorMiddleware {
	return func(inner Executor) Executor {
		return ExecutorFunc(func(ctx context.Context, req Request) (Response, error) {
			ctx, span := observability.StartSpan(ctx, observability.SpanHTTPRequest,
				trace.WithSpanKind(trace.SpanKindClient))
			defer span.End()

			observability.SetSpanAttribute(ctx, observability.AttrServiceName, serviceName)
			observability.SetSpanAttribute(ctx, observability.AttrHTTPMethod, methodOf(req))
			observability.SetSpanAttribute(ctx, observability.AttrURLFull, req.URL)
			observability.SetSpanAttribute(ctx, observability.AttrServerAddress, hostOf(req.URL))
			if id, ok := req.Metadata.RequestID(); ok {
				observability.SetSpanAttribute(ctx, observability.AttrRequestID, id)
			}

			h := req.Header.Clone()
			if h == nil {
				h = make(http.Header)
			}
			observability.InjectHeaders(ctx, h)
			req.Header = h

			resp, err := inner.Execute(ctx, req)
			if err != nil {
				observability.SetSpanAttribute(ctx, observability.AttrErrorType, errorKind(err))
				observability.SetSpanError(ctx, err)
				return resp, err
			}
			observability.SetSpanAttribute(ctx, observability.AttrHTTPStatusCode, resp.Status)
			return resp, nil
		})
	}
}

// WithMetrics records request count, duration, in-flight gauge and error
// kinds on m.
func WithMetrics(m *observability.Metrics) ExecutorMiddleware {
	return func(inner Executor) Executor {
		return ExecutorFunc(func(ctx context.Context, req Request) (Response, error) {
			host := hostOf(req.URL)
			start := time.Now()
			m.RecordRequestStart(ctx, host)

			resp, err := inner.Execute(ctx, req)

			outcome := "error"
			if err != nil {
				m.RecordError(ctx, errorKind(err), host)
			} else {
				outcome = observability.StatusClass(resp.Status)
			}
			m.RecordRequestEnd(ctx, host, methodOf(req), outcome, time.Since(start))
			return resp, err
		})
	}
}

func methodOf(req Request) string {
	if req.Method == "" {
		return MethodGet
	}
	return req.Method
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}

func errorKind(err error) string {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.Kind()
	}
	return "UnknownError"
}
