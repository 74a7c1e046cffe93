package httpclient

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kbukum/gofetch/errors"
)

// ErrBodyTooLarge is the cause of the PayloadError returned when a body
// exceeds the limit set with WithMaxBodyBytes.
var ErrBodyTooLarge = stderrors.New("response body too large")

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Executor performs a single request and returns the decoded response.
type Executor interface {
	Execute(ctx context.Context, req Request) (Response, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, req Request) (Response, error)

// Execute calls f(ctx, req).
func (f ExecutorFunc) Execute(ctx context.Context, req Request) (Response, error) {
	return f(ctx, req)
}

// HTTPExecutor sends requests over a Doer and decodes bodies with a Resolver.
// It performs exactly one attempt per call and never inspects the status
// code: 4xx and 5xx responses are returned like any other.
type HTTPExecutor struct {
	transport    Doer
	resolver     *Resolver
	maxBodyBytes int64
}

// ExecutorOption configures an HTTPExecutor.
type ExecutorOption func(*HTTPExecutor)

// WithMaxBodyBytes caps the body size. A longer body fails with a
// PayloadError wrapping ErrBodyTooLarge instead of being truncated. Zero
// means no limit.
func WithMaxBodyBytes(n int64) ExecutorOption {
	return func(e *HTTPExecutor) { e.maxBodyBytes = n }
}

// NewExecutor creates an executor. A nil transport uses http.DefaultClient;
// a nil resolver decodes every body as text.
func NewExecutor(transport Doer, resolver *Resolver, opts ...ExecutorOption) *HTTPExecutor {
	if transport == nil {
		transport = http.DefaultClient
	}
	if resolver == nil {
		resolver = NewResolver()
	}
	e := &HTTPExecutor{transport: transport, resolver: resolver}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolver returns the executor's parser resolver.
func (e *HTTPExecutor) Resolver() *Resolver { return e.resolver }

// Execute implements Executor.
//
// Failures are classified as follows: a done context or a cancelled
// transport call yields an AbortError; any other transport or body read
// failure yields a NetworkError; a body the resolved parser rejects, or one
// longer than the configured cap, yields a PayloadError. Errors carry the
// request's OriginalURL when set.
func (e *HTTPExecutor) Execute(ctx context.Context, req Request) (Response, error) {
	method := req.Method
	if method == "" {
		method = MethodGet
	}
	reportURL := req.reportURL()

	target, err := withQuery(req.URL, req.Query)
	if err != nil {
		return Response{}, errors.Network(reportURL, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, http.NoBody)
	if err != nil {
		return Response{}, errors.Network(reportURL, err)
	}
	for k, vs := range req.Header {
		httpReq.Header[k] = append([]string(nil), vs...)
	}

	resp, failure := e.send(httpReq)
	if failure != nil {
		return Response{}, classify(ctx, reportURL, failure)
	}
	if resp == nil {
		return Response{}, errors.Network(reportURL, nil)
	}

	body := resp.Body
	if body == nil {
		body = http.NoBody
	}
	defer body.Close()

	contentType := resp.Header.Get("Content-Type")
	raw, err := e.readBody(body)
	if err != nil {
		if stderrors.Is(err, ErrBodyTooLarge) {
			return Response{}, errors.Payload(reportURL, contentType, err).
				WithDetail("max_body_bytes", e.maxBodyBytes)
		}
		return Response{}, classify(ctx, reportURL, err)
	}

	value, err := e.resolver.Resolve(contentType).Parse(ctx, raw)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Response{}, errors.Aborted(reportURL, ctxErr)
		}
		return Response{}, errors.Payload(reportURL, contentType, err)
	}

	return Response{
		URL:        finalURL(req, httpReq.URL.String(), resp),
		Status:     resp.StatusCode,
		StatusText: statusText(resp),
		Header:     resp.Header.Clone(),
		Body:       value,
	}, nil
}

// readBody reads the whole body, or fails with ErrBodyTooLarge once more
// than maxBodyBytes arrive.
func (e *HTTPExecutor) readBody(body io.Reader) ([]byte, error) {
	if e.maxBodyBytes <= 0 {
		return io.ReadAll(body)
	}
	raw, err := io.ReadAll(io.LimitReader(body, e.maxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(raw)) > e.maxBodyBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, e.maxBodyBytes)
	}
	return raw, nil
}

// send invokes the transport. A panicking transport is reported as a
// failure carrying the panic value.
func (e *HTTPExecutor) send(req *http.Request) (resp *http.Response, failure any) {
	defer func() {
		if r := recover(); r != nil {
			resp, failure = nil, r
		}
	}()
	resp, err := e.transport.Do(req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func classify(ctx context.Context, rawURL string, failure any) *errors.AppError {
	// *url.Error repeats the method and the sent URL, which may hold query
	// credentials; the AppError already carries the URL.
	var uerr *url.Error
	if err, ok := failure.(error); ok && stderrors.As(err, &uerr) && uerr.Err != nil {
		failure = uerr.Err
	}
	err, isErr := failure.(error)
	if ctxErr := ctx.Err(); ctxErr != nil {
		if isErr && stderrors.Is(err, ctxErr) {
			return errors.Aborted(rawURL, err)
		}
		return errors.Aborted(rawURL, ctxErr)
	}
	if !isErr {
		return errors.Network(rawURL, failure)
	}
	if stderrors.Is(err, context.Canceled) {
		return errors.Aborted(rawURL, err)
	}
	return errors.Network(rawURL, err)
}

// withQuery returns raw with extra merged into its query string.
func withQuery(raw string, extra url.Values) (string, error) {
	if len(extra) == 0 {
		return raw, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, vs := range extra {
		q[k] = vs
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// finalURL reports where the response came from. Without a redirect that is
// req.URL; after one, parameters from req.Query are removed.
func finalURL(req Request, sent string, resp *http.Response) string {
	if resp.Request == nil || resp.Request.URL == nil {
		return req.URL
	}
	final := resp.Request.URL
	if final.String() == sent {
		return req.URL
	}
	if len(req.Query) == 0 {
		return final.String()
	}
	u := *final
	q := u.Query()
	for k := range req.Query {
		q.Del(k)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func statusText(resp *http.Response) string {
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

